// Package core implements the maze simulation engine: the entity
// model, continuous movement and collision over a discrete tile grid,
// bomb and explosion propagation, enemy behavior and the round
// controller. It contains pure game logic with no UI dependencies;
// the platform layer drives it one fixed tick at a time and observes
// the resulting snapshots and events.
package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// ID uniquely identifies an entity within one maze. IDs are assigned
// by the maze when an entity is added and are never reused.
type ID uint64

// Kind is the closed set of entity variants. Capability queries on
// Kind replace open-ended type hierarchies: behavior that depends on
// the variant dispatches on Kind or on the concrete type.
type Kind int

const (
	KindSolidWall Kind = iota
	KindBreakableWall
	KindCoin
	KindExtraLetter
	KindBonus
	KindTeleporter
	KindPlayer
	KindEnemy
	KindBoss
	KindBomb
	KindExplosion
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSolidWall:
		return "SolidWall"
	case KindBreakableWall:
		return "BreakableWall"
	case KindCoin:
		return "Coin"
	case KindExtraLetter:
		return "ExtraLetter"
	case KindBonus:
		return "Bonus"
	case KindTeleporter:
		return "Teleporter"
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindBoss:
		return "Boss"
	case KindBomb:
		return "Bomb"
	case KindExplosion:
		return "Explosion"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// Solid reports whether the kind blocks movement. Bombs are solid once
// placed; the entity that is still standing on one may walk off it.
func (k Kind) Solid() bool {
	switch k {
	case KindSolidWall, KindBreakableWall, KindBomb, KindBoss:
		return true
	}
	return false
}

// Mobile reports whether the kind moves under the collision resolver.
func (k Kind) Mobile() bool {
	switch k {
	case KindPlayer, KindEnemy, KindProjectile:
		return true
	}
	return false
}

// Destructible reports whether the kind can take explosion damage.
func (k Kind) Destructible() bool {
	switch k {
	case KindBreakableWall, KindPlayer, KindEnemy, KindBoss, KindBomb:
		return true
	}
	return false
}

// Collectible reports whether a player overlap collects the entity.
func (k Kind) Collectible() bool {
	switch k {
	case KindCoin, KindExtraLetter, KindBonus:
		return true
	}
	return false
}

// Damaging reports whether overlapping the kind hurts a player.
func (k Kind) Damaging() bool {
	switch k {
	case KindEnemy, KindBoss, KindExplosion, KindProjectile:
		return true
	}
	return false
}

// Entity is anything that lives inside the maze. All variants embed
// base; the maze owns every entity and locates it through the spatial
// index, which is a derived structure, never an ownership edge.
type Entity interface {
	ID() ID
	Kind() Kind
	Pos() geom.Vec
	Size() geom.Vec
	Bounds() geom.Rect
	// Dying reports whether the entity is in its removal delay: it is
	// still visible but no longer takes damage or acts.
	Dying() bool

	setID(ID)
	setPos(geom.Vec)
}

// base carries the state shared by every entity variant. Position is
// the top-left corner of the bounding box in tile units.
type base struct {
	id     ID
	kind   Kind
	pos    geom.Vec
	size   geom.Vec
	health int
	dying  Timer
}

func newBase(kind Kind, pos geom.Vec, rows, cols float64, health int) base {
	return base{kind: kind, pos: pos, size: geom.V(rows, cols), health: health}
}

func (b *base) ID() ID            { return b.id }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) Pos() geom.Vec     { return b.pos }
func (b *base) Size() geom.Vec    { return b.size }
func (b *base) Dying() bool       { return b.dying.Active() }
func (b *base) setID(id ID)       { b.id = id }
func (b *base) setPos(p geom.Vec) { b.pos = p }

func (b *base) Bounds() geom.Rect {
	return geom.R(b.pos, b.size.Row, b.size.Col)
}

// Health returns the remaining hit points.
func (b *base) Health() int { return b.health }

// pairKey identifies an unordered entity pair for once-per-tick
// interaction bookkeeping.
type pairKey struct {
	a, b ID
}

func pair(x, y ID) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}
