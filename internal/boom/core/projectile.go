package core

import (
	"math"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// ProjectileKind enumerates the enemy weapons. Each kind has its own
// speed, damage, size and range profile.
type ProjectileKind int

const (
	ProjShot ProjectileKind = iota
	ProjFireball
	ProjMGShot
	ProjLightbolt
	ProjFlame
	ProjPlasma
	ProjMagma
	ProjMissile
)

type projProfile struct {
	name     string
	speed    float64 // tiles per second
	damage   int
	size     float64 // square bounding box side
	maxRange float64 // removed past this travel distance
	flies    bool    // missiles fly over walls
}

var projProfiles = [...]projProfile{
	ProjShot:      {name: "Shot", speed: 5.0, damage: 1, size: 0.25, maxRange: math.Inf(1)},
	ProjFireball:  {name: "Fireball", speed: 4.0, damage: 2, size: 0.4, maxRange: math.Inf(1)},
	ProjMGShot:    {name: "MGShot", speed: 7.0, damage: 1, size: 0.3, maxRange: math.Inf(1)},
	ProjLightbolt: {name: "Lightbolt", speed: 5.0, damage: 2, size: 0.4, maxRange: math.Inf(1)},
	ProjFlame:     {name: "Flame", speed: 3.0, damage: 2, size: 0.4, maxRange: 3.5},
	ProjPlasma:    {name: "Plasma", speed: 7.0, damage: 3, size: 0.4, maxRange: math.Inf(1)},
	ProjMagma:     {name: "Magma", speed: 5.0, damage: 4, size: 0.8, maxRange: math.Inf(1)},
	ProjMissile:   {name: "Missile", speed: 3.5, damage: 4, size: 0.6, maxRange: math.Inf(1), flies: true},
}

// String returns a human-readable name for the projectile kind.
func (k ProjectileKind) String() string {
	if k < 0 || int(k) >= len(projProfiles) {
		return "Unknown"
	}
	return projProfiles[k].name
}

func (k ProjectileKind) profile() projProfile {
	return projProfiles[k]
}

// Projectile is a mobile damaging entity spawned by an enemy attack.
// It travels along a fixed direction vector (boss missiles aim freely,
// not just along the grid axes) until it hits a player, hits a wall,
// exceeds its range, or leaves the maze.
type Projectile struct {
	base
	pkind  ProjectileKind
	dir    geom.Vec // unit direction
	origin geom.Vec
	owner  ID
}

// newProjectile spawns a projectile centered on from, offset half a
// tile along its direction so it clears the shooter.
func newProjectile(kind ProjectileKind, from geom.Vec, dir geom.Vec, owner ID) *Projectile {
	p := kind.profile()
	dir = dir.Norm()
	center := from.Add(dir.Scale(0.5))
	pos := center.Sub(geom.V(p.size/2, p.size/2))
	pr := &Projectile{
		base:   newBase(KindProjectile, pos, p.size, p.size, 0),
		pkind:  kind,
		dir:    dir,
		origin: pos,
		owner:  owner,
	}
	return pr
}

// Projectile returns the weapon kind.
func (p *Projectile) Projectile() ProjectileKind { return p.pkind }

// Dir returns the unit travel direction.
func (p *Projectile) Dir() geom.Vec { return p.dir }

// traveled returns the distance covered since spawning.
func (p *Projectile) traveled() float64 {
	return p.pos.Dist(p.origin)
}
