package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// BombState is the bomb lifecycle: armed until the fuse expires or a
// chained explosion triggers it, then exploding. Removal happens in
// the same pass as the transition to exploding.
type BombState int

const (
	BombArmed BombState = iota
	BombExploding
)

const (
	bombFuse        = 5.0
	bombFastFuse    = 2.0
	explosionLife   = 0.4
	explosionDamage = 13
)

// Bomb is placed by a player, stationary, and solid. Its blast range
// is fixed at placement from the player's current inventory.
type Bomb struct {
	base
	owner  *Player
	radius int
	fuse   Timer
	state  BombState
}

func newBomb(owner *Player, pos geom.Vec) *Bomb {
	b := &Bomb{
		base:   newBase(KindBomb, pos, 1, 1, 0),
		owner:  owner,
		radius: owner.BombRadius(),
	}
	if owner.fastBomb {
		b.fuse.Start(bombFastFuse)
	} else {
		b.fuse.Start(bombFuse)
	}
	return b
}

// Radius returns the blast range in tiles.
func (b *Bomb) Radius() int { return b.radius }

// FuseFrac returns the elapsed fraction of the fuse, for renderers.
func (b *Bomb) FuseFrac() float64 { return b.fuse.Frac() }

// Explosion is one transient damaging segment on a single tile. All
// segments of one detonation share a blast id and a hit set, so any
// entity takes damage at most once per explosion instance.
type Explosion struct {
	base
	life      Timer
	blast     uint64
	hits      map[ID]bool
	collector *Player // credited with kills from this blast
}

// Blast returns the detonation id this segment belongs to.
func (x *Explosion) Blast() uint64 { return x.blast }

// placeBomb handles a player's place-bomb intent. Placement with an
// exhausted inventory or during cooldown is silently rejected; so is
// placing onto a tile that already holds a bomb.
func (r *Round) placeBomb(p *Player) {
	if !p.canPlaceBomb() {
		return
	}
	cell := p.Bounds().Center().Cell()
	rect := geom.R(cell.Vec(), 1, 1)
	for _, e := range r.maze.Collide(rect, nil) {
		if e.Kind() == KindBomb {
			return
		}
	}
	b := newBomb(p, cell.Vec())
	r.spawn(b)
	p.bombPlaced()
}

// updateBombs advances fuses and detonates expired bombs.
func (r *Round) updateBombs() {
	for _, e := range r.maze.EntitiesOfKind(KindBomb) {
		b := e.(*Bomb)
		if b.state == BombArmed && b.fuse.Tick(r.dt()) {
			r.detonate(b)
		}
	}
}

// detonate explodes a bomb and every bomb its blast reaches, in one
// worklist pass. Each bomb transitions to exploding at most once, so a
// finite set of N armed bombs yields at most N detonations and the
// chain always terminates.
func (r *Round) detonate(first *Bomb) {
	queue := []*Bomb{first}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if b.state != BombArmed {
			continue
		}
		b.state = BombExploding
		b.owner.bombResolved()
		r.despawn(b)
		queue = append(queue, r.propagate(b)...)
	}
}

// propagate spawns the explosion segments of one detonation: the
// center tile, then outward along the four cardinal directions up to
// the blast range. A solid wall stops a direction before its tile; a
// breakable wall is destroyed and stops the direction at its tile.
// Armed bombs overlapped by new segments are returned for chaining.
func (r *Round) propagate(b *Bomb) []*Bomb {
	r.blastSeq++
	blast := r.blastSeq
	hits := make(map[ID]bool)
	var chained []*Bomb

	center := b.Pos().Cell()
	chained = append(chained, r.spawnSegment(center, blast, hits, b.owner)...)

	for _, dir := range geom.Cardinals {
		step := dir.Vec()
		for dist := 1; dist <= b.radius; dist++ {
			cell := geom.C(
				center.Row+int(step.Row)*dist,
				center.Col+int(step.Col)*dist,
			)
			occupants, err := r.maze.QueryCell(cell)
			if err != nil {
				break // past the maze edge
			}
			solid := false
			var breakable *Wall
			for _, e := range occupants {
				switch e.Kind() {
				case KindSolidWall:
					solid = true
				case KindBreakableWall:
					breakable = e.(*Wall)
				}
			}
			if solid {
				break
			}
			// The segment's own damage pass destroys a breakable wall
			// on this tile; the direction still halts here (inclusive).
			chained = append(chained, r.spawnSegment(cell, blast, hits, b.owner)...)
			if breakable != nil {
				break
			}
		}
	}
	return chained
}

// spawnSegment creates one explosion segment, applies its damage
// immediately, and reports any armed bombs it overlaps.
func (r *Round) spawnSegment(cell geom.Cell, blast uint64, hits map[ID]bool, collector *Player) []*Bomb {
	x := &Explosion{
		base:      newBase(KindExplosion, cell.Vec(), 1, 1, 0),
		blast:     blast,
		hits:      hits,
		collector: collector,
	}
	x.life.Start(explosionLife)
	r.spawn(x)
	return r.applyExplosion(x)
}

// updateExplosions ages segments, applies damage to entities that move
// into an active segment, and removes expired segments.
func (r *Round) updateExplosions() {
	for _, e := range r.maze.EntitiesOfKind(KindExplosion) {
		x := e.(*Explosion)
		if x.life.Tick(r.dt()) {
			r.despawn(x)
			continue
		}
		for _, b := range r.applyExplosion(x) {
			r.detonate(b)
		}
	}
}

// applyExplosion damages everything overlapping the segment, at most
// once per blast per entity, and collects armed bombs for chaining.
func (r *Round) applyExplosion(x *Explosion) []*Bomb {
	var chained []*Bomb
	for _, e := range r.maze.Collide(x.Bounds(), nil) {
		if !e.Kind().Destructible() || x.hits[e.ID()] {
			continue
		}
		switch other := e.(type) {
		case *Player:
			if r.damagePlayer(other, explosionDamage) {
				x.hits[e.ID()] = true
			}
		case *Enemy:
			x.hits[e.ID()] = true
			r.killEnemy(other, x.collector)
		case *Boss:
			x.hits[e.ID()] = true
			r.damageBoss(other, x.blast, explosionDamage, x.collector)
		case *Wall:
			x.hits[e.ID()] = true
			r.destroyWall(other, x.collector)
		case *Bomb:
			if other.state == BombArmed {
				x.hits[e.ID()] = true
				chained = append(chained, other)
			}
		}
	}
	return chained
}

// destroyWall removes a breakable wall, credits the collector and
// rolls the bonus drop table.
func (r *Round) destroyWall(w *Wall, collector *Player) {
	if w.Kind() != KindBreakableWall {
		return
	}
	r.despawn(w)
	if collector != nil {
		r.addScore(collector, 10)
	}
	if kind, ok := rollBonus(r.rng); ok {
		r.spawn(NewBonus(w.Pos(), kind))
	}
}
