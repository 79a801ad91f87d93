package core

import (
	"fmt"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// ErrOutOfBounds is returned for queries outside the grid extents.
// It signals a programming error in the caller; movement code must
// bound-check before querying.
var ErrOutOfBounds = fmt.Errorf("core: position out of maze bounds")

// LevelMeta is the per-level metadata carried by a maze.
type LevelMeta struct {
	ID        string  // Level identifier for display and score storage
	Style     string  // Visual theme hint for the renderer
	Countdown float64 // Seconds before the level is lost on timeout
}

// DefaultRows and DefaultCols are the grid dimensions of the original
// levels.
const (
	DefaultRows = 13
	DefaultCols = 15
)

// Maze owns the fixed-size tile grid and every entity in it. The
// spatial index maps each cell to the entities whose bounding box
// overlaps it and is kept consistent on every add, move and remove
// within the same tick.
//
// A Maze is exclusively owned by one Round for its lifetime and is
// recreated when a level restarts. Observers only ever see snapshots.
type Maze struct {
	rows, cols int
	meta       LevelMeta

	entities []Entity // insertion order doubles as spawn order
	index    map[geom.Cell][]Entity
	spawns   map[int]geom.Vec // player id -> spawn position

	nextID ID
}

// NewMaze creates an empty maze with the given grid dimensions.
func NewMaze(rows, cols int) *Maze {
	return &Maze{
		rows:   rows,
		cols:   cols,
		index:  make(map[geom.Cell][]Entity),
		spawns: make(map[int]geom.Vec),
	}
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Meta returns the level metadata.
func (m *Maze) Meta() LevelMeta { return m.meta }

// SetMeta sets the level metadata. Called by the level loader.
func (m *Maze) SetMeta(meta LevelMeta) { m.meta = meta }

// Bounds returns the rectangle covering the whole grid.
func (m *Maze) Bounds() geom.Rect {
	return geom.R(geom.V(0, 0), float64(m.rows), float64(m.cols))
}

// InBounds reports whether r lies entirely inside the grid.
func (m *Maze) InBounds(r geom.Rect) bool {
	return m.Bounds().Contains(r)
}

// SetSpawn records the spawn position for the given player id.
func (m *Maze) SetSpawn(player int, pos geom.Vec) {
	m.spawns[player] = pos
}

// SpawnPoints returns a copy of the player spawn positions.
func (m *Maze) SpawnPoints() map[int]geom.Vec {
	out := make(map[int]geom.Vec, len(m.spawns))
	for id, pos := range m.spawns {
		out[id] = pos
	}
	return out
}

// Add registers an entity, assigns its ID and indexes it under every
// cell its bounding box overlaps.
func (m *Maze) Add(e Entity) {
	m.nextID++
	e.setID(m.nextID)
	m.entities = append(m.entities, e)
	m.indexEntity(e)
}

// Remove unregisters an entity and drops all its index entries.
// Removal is immediate: the entity is gone from queries in the same
// tick.
func (m *Maze) Remove(e Entity) {
	for i, other := range m.entities {
		if other.ID() == e.ID() {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			break
		}
	}
	m.unindexEntity(e)
}

// MoveTo relocates an entity and updates its index entries.
func (m *Maze) MoveTo(e Entity, pos geom.Vec) {
	m.unindexEntity(e)
	e.setPos(pos)
	m.indexEntity(e)
}

func (m *Maze) indexEntity(e Entity) {
	for _, c := range e.Bounds().Cells() {
		m.index[c] = append(m.index[c], e)
	}
}

func (m *Maze) unindexEntity(e Entity) {
	for _, c := range e.Bounds().Cells() {
		bucket := m.index[c]
		for i, other := range bucket {
			if other.ID() == e.ID() {
				m.index[c] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(m.index[c]) == 0 {
			delete(m.index, c)
		}
	}
}

// QueryCell returns the entities whose bounding box overlaps the given
// cell. Querying outside the grid fails with ErrOutOfBounds.
func (m *Maze) QueryCell(c geom.Cell) ([]Entity, error) {
	if c.Row < 0 || c.Row >= m.rows || c.Col < 0 || c.Col >= m.cols {
		return nil, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	bucket := m.index[c]
	out := make([]Entity, len(bucket))
	copy(out, bucket)
	return out, nil
}

// Collide returns every entity whose bounding box intersects r and
// satisfies the filter. A nil filter accepts everything. Results are
// in deterministic cell-then-insertion order with duplicates removed.
func (m *Maze) Collide(r geom.Rect, filter func(Entity) bool) []Entity {
	var out []Entity
	seen := make(map[ID]bool)
	for _, c := range r.Cells() {
		for _, e := range m.index[c] {
			if seen[e.ID()] {
				continue
			}
			if !r.Intersects(e.Bounds()) {
				continue
			}
			if filter != nil && !filter(e) {
				continue
			}
			seen[e.ID()] = true
			out = append(out, e)
		}
	}
	return out
}

// IsPassable reports whether the rectangle is inside the grid and free
// of solid entities. The moving entity itself never blocks, and a
// solid entity already overlapping the mover's current bounds does not
// block either, so an entity can step off a bomb it just placed.
// The result depends only on maze state: repeated queries without
// mutation return the same answer.
func (m *Maze) IsPassable(r geom.Rect, mover Entity) bool {
	if !m.InBounds(r) {
		return false
	}
	cur := mover.Bounds()
	for _, e := range m.Collide(r, nil) {
		if e.ID() == mover.ID() {
			continue
		}
		if !e.Kind().Solid() {
			continue
		}
		if cur.Intersects(e.Bounds()) {
			continue
		}
		return false
	}
	return true
}

// EntitiesOfKind returns all entities of the given kind in spawn
// order, for AI target queries and win condition checks.
func (m *Maze) EntitiesOfKind(k Kind) []Entity {
	var out []Entity
	for _, e := range m.entities {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

// Entities returns all entities in spawn order. Callers must not
// retain the slice across ticks.
func (m *Maze) Entities() []Entity {
	out := make([]Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// checkIndex verifies the index/position consistency invariant: every
// entity is indexed under exactly the cells its bounding box overlaps.
// Used by tests.
func (m *Maze) checkIndex() error {
	for _, e := range m.entities {
		want := make(map[geom.Cell]bool)
		for _, c := range e.Bounds().Cells() {
			want[c] = true
			found := false
			for _, other := range m.index[c] {
				if other.ID() == e.ID() {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("entity %d (%s) missing from index cell (%d,%d)", e.ID(), e.Kind(), c.Row, c.Col)
			}
		}
		for c, bucket := range m.index {
			for _, other := range bucket {
				if other.ID() == e.ID() && !want[c] {
					return fmt.Errorf("entity %d (%s) indexed under stale cell (%d,%d)", e.ID(), e.Kind(), c.Row, c.Col)
				}
			}
		}
	}
	return nil
}
