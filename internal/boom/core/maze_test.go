package core

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

func TestMazeIndexConsistency(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)

	w := NewSolidWall(geom.V(5, 5))
	c := NewCoin(geom.V(2, 3))
	p := NewPlayer(1)
	m.Add(w)
	m.Add(c)
	m.Add(p)

	if err := m.checkIndex(); err != nil {
		t.Fatalf("index broken after Add: %v", err)
	}

	// A misaligned move straddles four cells; all must be indexed.
	m.MoveTo(p, geom.V(4.5, 6.5))
	if err := m.checkIndex(); err != nil {
		t.Fatalf("index broken after MoveTo: %v", err)
	}

	m.Remove(c)
	if err := m.checkIndex(); err != nil {
		t.Fatalf("index broken after Remove: %v", err)
	}
	if got := len(m.EntitiesOfKind(KindCoin)); got != 0 {
		t.Errorf("removed coin still listed, got %d", got)
	}
}

func TestMazeIDsNeverReused(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)

	a := NewCoin(geom.V(1, 1))
	m.Add(a)
	m.Remove(a)

	b := NewCoin(geom.V(1, 1))
	m.Add(b)

	if b.ID() == a.ID() {
		t.Errorf("ID %d was reused after removal", a.ID())
	}
}

func TestMazeQueryCellOutOfBounds(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)

	if _, err := m.QueryCell(geom.C(-1, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("QueryCell(-1,0) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := m.QueryCell(geom.C(0, DefaultCols)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("QueryCell past right edge error = %v, want ErrOutOfBounds", err)
	}
	if _, err := m.QueryCell(geom.C(0, 0)); err != nil {
		t.Errorf("QueryCell(0,0) on empty maze failed: %v", err)
	}
}

func TestMazeCollide(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	w := NewSolidWall(geom.V(5, 5))
	c := NewCoin(geom.V(5, 6))
	m.Add(w)
	m.Add(c)

	// A rect straddling both cells finds both, each exactly once.
	got := m.Collide(geom.R(geom.V(5, 5.5), 1, 1), nil)
	if len(got) != 2 {
		t.Fatalf("Collide found %d entities, want 2", len(got))
	}

	// Filter narrows the result.
	got = m.Collide(geom.R(geom.V(5, 5.5), 1, 1), func(e Entity) bool {
		return e.Kind() == KindCoin
	})
	if len(got) != 1 || got[0].ID() != c.ID() {
		t.Errorf("filtered Collide = %v, want just the coin", got)
	}

	// Edge adjacency is not a collision.
	got = m.Collide(geom.R(geom.V(5, 4), 1, 1), nil)
	if len(got) != 0 {
		t.Errorf("edge-adjacent Collide found %d entities, want 0", len(got))
	}
}

func TestMazeIsPassable(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	m.Add(NewSolidWall(geom.V(5, 5)))
	p := NewPlayer(1)
	m.Add(p)
	m.MoveTo(p, geom.V(5, 3))

	if !m.IsPassable(geom.R(geom.V(5, 4), 1, 1), p) {
		t.Error("free tile should be passable")
	}
	if m.IsPassable(geom.R(geom.V(5, 4.5), 1, 1), p) {
		t.Error("rect overlapping a solid wall should not be passable")
	}
	if m.IsPassable(geom.R(geom.V(-0.5, 3), 1, 1), p) {
		t.Error("rect leaving the grid should not be passable")
	}

	// Repeated queries without mutation agree.
	r := geom.R(geom.V(5, 4), 1, 1)
	if m.IsPassable(r, p) != m.IsPassable(r, p) {
		t.Error("IsPassable is not stable across repeated queries")
	}
}

func TestMazeIsPassableOverlappingSolid(t *testing.T) {
	// A solid entity already overlapping the mover does not block, so
	// a player can step off the bomb it is standing on but not back
	// onto it.
	m := NewMaze(DefaultRows, DefaultCols)
	p := NewPlayer(1)
	m.Add(p)
	m.MoveTo(p, geom.V(5, 4))

	bomb := &Bomb{base: newBase(KindBomb, geom.V(5, 4), 1, 1, 0)}
	m.Add(bomb)

	if !m.IsPassable(geom.R(geom.V(5, 4.2), 1, 1), p) {
		t.Error("stepping off an overlapped bomb should be passable")
	}

	m.MoveTo(p, geom.V(5, 6))
	if m.IsPassable(geom.R(geom.V(5, 4.8), 1, 1), p) {
		t.Error("stepping back onto the bomb should be blocked")
	}
}

func TestMazeSpawnPointsCopied(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	m.SetSpawn(1, geom.V(1, 1))

	pts := m.SpawnPoints()
	pts[1] = geom.V(9, 9)

	if got := m.SpawnPoints()[1]; got != geom.V(1, 1) {
		t.Errorf("SpawnPoints leaked internal map, spawn moved to %v", got)
	}
}
