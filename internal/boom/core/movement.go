package core

import (
	"math"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// blocks reports whether other blocks mover's movement. Players block
// each other and so do enemies; projectiles pass over everything and
// handle their own impacts.
func blocks(mover, other Entity) bool {
	if other.ID() == mover.ID() {
		return false
	}
	if other.Kind().Solid() {
		return true
	}
	switch mover.Kind() {
	case KindPlayer:
		return other.Kind() == KindPlayer && !other.Dying()
	case KindEnemy:
		return other.Kind() == KindEnemy && !other.Dying()
	}
	return false
}

// passableFor reports whether the mover may occupy rect. A blocking
// entity that already overlaps the mover's current bounds does not
// count, so entities can always separate: a player steps off the bomb
// it just placed, and overlapping enemies never lock each other in
// place.
func (r *Round) passableFor(e Entity, rect geom.Rect) bool {
	if !r.maze.InBounds(rect) {
		return false
	}
	cur := e.Bounds()
	for _, other := range r.maze.Collide(rect, nil) {
		if !blocks(e, other) {
			continue
		}
		if cur.Intersects(other.Bounds()) {
			continue
		}
		return false
	}
	return true
}

// candidateRect is the mover's bounding box displaced by disp and
// clamped to the maze bounds.
func (r *Round) candidateRect(e Entity, disp geom.Vec) geom.Rect {
	size := e.Size()
	pos := e.Pos().Add(disp)
	pos.Row = geom.ClampF(pos.Row, 0, float64(r.maze.Rows())-size.Row)
	pos.Col = geom.ClampF(pos.Col, 0, float64(r.maze.Cols())-size.Col)
	return geom.R(pos, size.Row, size.Col)
}

// gridAligned reports whether the entity sits close enough to an exact
// tile position to turn without clipping a corner. The tolerance is
// one tick's worth of travel.
func (r *Round) gridAligned(e Entity) bool {
	tol := playerSpeed * 2 * r.dt()
	pos := e.Pos()
	dr := math.Abs(pos.Row - math.Round(pos.Row))
	dc := math.Abs(pos.Col - math.Round(pos.Col))
	return dr < tol && dc < tol
}

// moveMobile advances one mobile entity by the desired displacement.
// When the full displacement collides it is decomposed per axis: the
// entity slides along whichever axis is clear instead of stopping
// dead, which is what makes diagonal corridor navigation feel right.
func (r *Round) moveMobile(e Entity, disp geom.Vec) {
	if disp.IsZero() {
		return
	}
	candidates := []geom.Vec{disp}
	if disp.Row != 0 && disp.Col != 0 {
		// Larger component first so exact-corner cases resolve
		// deterministically.
		rowOnly := geom.V(disp.Row, 0)
		colOnly := geom.V(0, disp.Col)
		if math.Abs(disp.Row) >= math.Abs(disp.Col) {
			candidates = append(candidates, rowOnly, colOnly)
		} else {
			candidates = append(candidates, colOnly, rowOnly)
		}
	} else if disp.Row != 0 {
		candidates = append(candidates, geom.V(disp.Row, 0))
	} else {
		candidates = append(candidates, geom.V(0, disp.Col))
	}

	from := e.Pos()
	for _, d := range candidates {
		rect := r.candidateRect(e, d)
		if rect.Pos == from {
			continue
		}
		if r.passableFor(e, rect) {
			r.maze.MoveTo(e, rect.Pos)
			r.emit(EntityMovedEvent{ID: e.ID(), From: from, To: rect.Pos})
			return
		}
	}
}

// applyOverlaps triggers the side effects of the mover's post-move
// overlaps: collection, teleportation and contact damage. Each
// interaction pair fires at most once per tick.
func (r *Round) applyOverlaps(e Entity, seen map[pairKey]bool) {
	for _, other := range r.maze.Collide(e.Bounds(), nil) {
		if other.ID() == e.ID() {
			continue
		}
		key := pair(e.ID(), other.ID())
		if seen[key] {
			continue
		}

		switch {
		case e.Kind() == KindPlayer && other.Kind().Collectible():
			seen[key] = true
			r.collect(e.(*Player), other.(*Pickup))

		case other.Kind() == KindTeleporter:
			if r.teleportThrough(e, other.(*Teleporter)) {
				seen[key] = true
				// Teleporting discards any remaining interactions at
				// the origin this tick.
				return
			}

		case e.Kind() == KindPlayer && other.Kind() == KindEnemy:
			en := other.(*Enemy)
			if !en.Dying() && en.contactDamage() > 0 {
				seen[key] = true
				r.damagePlayer(e.(*Player), en.contactDamage())
			}
		}
	}
}

// teleportThrough relocates a mover standing on an available
// teleporter to the next available exit in the chain. The mover's
// pending displacement for the tick is discarded.
func (r *Round) teleportThrough(e Entity, t *Teleporter) bool {
	if !e.Kind().Mobile() || e.Kind() == KindProjectile {
		return false
	}
	if e.Bounds().Center().Cell() != t.Pos().Cell() {
		return false
	}
	if !t.available() {
		return false
	}
	dest := t.destination()
	if dest == nil || r.occupied(dest, e.ID()) {
		return false
	}
	from := e.Pos()
	r.maze.MoveTo(e, dest.Pos())
	t.use()
	dest.use()
	r.emit(TeleportedEvent{ID: e.ID(), From: from, To: dest.Pos()})
	return true
}

// occupied reports whether some player or enemy other than the mover
// is standing on the teleporter, which makes it unavailable as an
// exit.
func (r *Round) occupied(t *Teleporter, mover ID) bool {
	for _, e := range r.maze.Collide(t.Bounds(), nil) {
		if e.ID() == mover {
			continue
		}
		if e.Kind() == KindPlayer || e.Kind() == KindEnemy {
			return true
		}
	}
	return false
}

// moveProjectile advances a projectile along its direction and
// resolves impacts. Projectiles do not slide: they are removed on wall
// impact, player hit, range expiry, or leaving the maze. Missiles fly
// over walls and stop only on actors.
func (r *Round) moveProjectile(pr *Projectile) {
	prof := pr.pkind.profile()
	from := pr.Pos()
	next := from.Add(pr.dir.Scale(prof.speed * r.dt()))
	rect := geom.R(next, pr.Size().Row, pr.Size().Col)
	if !r.maze.InBounds(rect) {
		r.despawn(pr)
		return
	}
	r.maze.MoveTo(pr, next)
	r.emit(EntityMovedEvent{ID: pr.ID(), From: from, To: next})

	if pr.traveled() > prof.maxRange {
		r.despawn(pr)
		return
	}
	for _, e := range r.maze.Collide(rect, nil) {
		switch e.Kind() {
		case KindSolidWall, KindBreakableWall:
			if !prof.flies {
				r.despawn(pr)
				return
			}
		case KindPlayer:
			p := e.(*Player)
			if r.damagePlayer(p, prof.damage) {
				r.despawn(pr)
				return
			}
		case KindEnemy, KindBoss:
			if e.ID() != pr.owner && !e.Dying() {
				r.despawn(pr)
				return
			}
		}
	}
}
