package core

import (
	"math"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// EnemyKind enumerates the ten enemy variants.
type EnemyKind int

const (
	EnemySoldier EnemyKind = iota
	EnemySarge
	EnemyLizzy
	EnemyTaur
	EnemyGunner
	EnemyThing
	EnemyGhost
	EnemySmoulder
	EnemySkully
	EnemyGiggler
)

// EnemyState is the shared behavior state machine. Every kind follows
// the same contract: one desired displacement per tick, plus an attack
// action when in Attack state and off cooldown.
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyPursue
	EnemyAttack
	EnemyDying
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "Patrol"
	case EnemyPursue:
		return "Pursue"
	case EnemyAttack:
		return "Attack"
	case EnemyDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

type enemyProfile struct {
	name    string
	speed   float64
	erratic bool // may reverse at junctions
	chase   bool // pursues the nearest visible player
	contact int  // damage dealt on overlap
	weapon  ProjectileKind
	melee   bool    // no projectile; attacks by contact or sprint
	reload  float64 // seconds between attacks
	scope   float64 // max attack distance in tiles
	score   int
}

// enemyProfiles carries the per-kind balance from the original level
// data: speed in tiles per second, contact damage, weapon, cooldown
// and point value.
var enemyProfiles = [...]enemyProfile{
	EnemySoldier:  {name: "Soldier", speed: 2.0, erratic: true, contact: 1, weapon: ProjShot, reload: 1.0, scope: math.Inf(1), score: 200},
	EnemySarge:    {name: "Sarge", speed: 2.0, erratic: true, contact: 1, weapon: ProjShot, reload: 0.75, scope: math.Inf(1), score: 300},
	EnemyLizzy:    {name: "Lizzy", speed: 2.0, contact: 1, weapon: ProjFireball, reload: 1.0, scope: math.Inf(1), score: 400},
	EnemyTaur:     {name: "Taur", speed: 4.0, chase: true, contact: 2, melee: true, reload: 0.4, scope: 1.0, score: 500},
	EnemyGunner:   {name: "Gunner", speed: 2.0, contact: 1, weapon: ProjMGShot, reload: 0.125, scope: math.Inf(1), score: 600},
	EnemyThing:    {name: "Thing", speed: 2.0, chase: true, contact: 2, weapon: ProjLightbolt, reload: 1.0, scope: math.Inf(1), score: 700},
	EnemyGhost:    {name: "Ghost", speed: 2.0, chase: true, contact: 2, melee: true, reload: 1.5, scope: math.Inf(1), score: 800},
	EnemySmoulder: {name: "Smoulder", speed: 2.0, chase: true, contact: 2, weapon: ProjFlame, reload: 0.2, scope: 3.5, score: 900},
	EnemySkully:   {name: "Skully", speed: 2.0, chase: true, contact: 2, weapon: ProjPlasma, reload: 0.15, scope: math.Inf(1), score: 1000},
	EnemyGiggler:  {name: "Giggler", speed: 4.0, chase: true, contact: 4, weapon: ProjMagma, reload: 1.2, scope: math.Inf(1), score: 1000},
}

// String returns a human-readable name for the enemy kind.
func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyProfiles) {
		return "Unknown"
	}
	return enemyProfiles[k].name
}

func (k EnemyKind) profile() enemyProfile {
	return enemyProfiles[k]
}

// Ghost sprint speed when charging a visible player.
const ghostSprint = 7.0

const enemyDyingDelay = 0.6

// Enemy is a mobile hostile entity driven by a per-kind state machine
// once per tick.
type Enemy struct {
	base
	ekind EnemyKind
	state EnemyState

	dir    geom.Dir
	reload Timer // attack cooldown
	sprint Timer // ghost charge window

	enraged bool // hurry-up: everything twice as fast
	alien   bool // extra game: harmless, drops a letter on death
}

// NewEnemy creates an enemy of the given kind. Enemies die to a single
// explosion hit.
func NewEnemy(kind EnemyKind, pos geom.Vec) *Enemy {
	return &Enemy{
		base:  newBase(KindEnemy, pos, 1, 1, 1),
		ekind: kind,
	}
}

// Enemy returns the enemy kind.
func (e *Enemy) Enemy() EnemyKind { return e.ekind }

// State returns the current behavior state.
func (e *Enemy) State() EnemyState { return e.state }

// Dir returns the current heading.
func (e *Enemy) Dir() geom.Dir { return e.dir }

// Alien reports whether the enemy is in extra-game alien form.
func (e *Enemy) Alien() bool { return e.alien }

// currentSpeed accounts for hurry-up rage and ghost sprints.
func (e *Enemy) currentSpeed() float64 {
	speed := e.ekind.profile().speed
	if e.sprint.Active() {
		speed = ghostSprint
	}
	if e.enraged {
		speed *= 2
	}
	return speed
}

// contactDamage is zero for aliens, which cannot hurt anyone.
func (e *Enemy) contactDamage() int {
	if e.alien {
		return 0
	}
	return e.ekind.profile().contact
}

// setExtraGame toggles alien form. Aliens stop attacking and their
// cooldowns are cleared.
func (e *Enemy) setExtraGame(active bool) {
	e.alien = active
	e.reload.Reset()
	e.sprint.Reset()
	if e.state == EnemyAttack {
		e.state = EnemyPatrol
	}
}

// updateEnemy runs one tick of the enemy state machine: timers, then
// direction choice, then the attack decision. The desired displacement
// is applied later by the movement resolver in deterministic order.
func (r *Round) updateEnemy(e *Enemy) {
	dt := r.dt()
	if e.enraged {
		dt *= 2
	}
	e.reload.Tick(dt)
	e.sprint.Tick(dt)

	if e.state == EnemyDying {
		return
	}

	prof := e.ekind.profile()

	// Only turn when roughly grid-aligned, so enemies track corridors
	// instead of clipping corners.
	if r.gridAligned(e) {
		r.steerEnemy(e, prof)
	} else if !r.maze.IsPassable(r.candidateRect(e, e.dir.Vec().Scale(0.1)), e) {
		// Mid-tile and blocked (a bomb dropped in front, say): allow an
		// immediate rethink.
		r.steerEnemy(e, prof)
	}

	if e.alien {
		return
	}

	// Attack decision: a visible player along the current heading,
	// within scope, while off cooldown.
	if e.dir == geom.DirNone || e.reload.Active() {
		return
	}
	dist, target := r.lineOfSight(e.Bounds().Center(), e.dir)
	if target == nil || dist > prof.scope {
		if e.state == EnemyAttack {
			e.state = EnemyPatrol
		}
		return
	}
	e.state = EnemyAttack
	r.enemyAttack(e, prof)
}

// steerEnemy picks the next heading. Chase kinds prefer the direction
// with the closest visible player; otherwise a seeded-random choice
// among the open directions, avoiding an immediate reversal unless the
// kind is erratic or the corridor is a dead end.
func (r *Round) steerEnemy(e *Enemy, prof enemyProfile) {
	origin := e.Pos()
	var open []geom.Dir
	for _, d := range geom.Cardinals {
		if r.maze.IsPassable(r.candidateRect(e, d.Vec().Scale(0.5)), e) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		e.dir = geom.DirNone
		if e.state == EnemyPursue {
			e.state = EnemyPatrol
		}
		return
	}

	if prof.chase {
		best := geom.DirNone
		bestDist := math.Inf(1)
		for _, d := range open {
			if dist, target := r.lineOfSight(geom.R(origin, 1, 1).Center(), d); target != nil && dist < bestDist {
				bestDist = dist
				best = d
			}
		}
		if best != geom.DirNone {
			e.dir = best
			e.state = EnemyPursue
			return
		}
		if e.state == EnemyPursue {
			e.state = EnemyPatrol
		}
	}

	// Patrol: keep going when possible, otherwise turn.
	candidates := open
	if !prof.erratic && len(open) > 1 {
		trimmed := make([]geom.Dir, 0, len(open))
		for _, d := range open {
			if d != e.dir.Opposite() {
				trimmed = append(trimmed, d)
			}
		}
		if len(trimmed) > 0 {
			candidates = trimmed
		}
	}
	e.dir = candidates[r.rng.Intn(len(candidates))]
}

// enemyAttack performs the kind-specific attack action.
func (r *Round) enemyAttack(e *Enemy, prof enemyProfile) {
	e.reload.Start(prof.reload)
	if prof.melee {
		// Taur lunges only point blank; Ghost sprints down the corridor.
		if e.ekind == EnemyGhost {
			e.sprint.Start(1.0)
		}
		return
	}
	pr := newProjectile(prof.weapon, e.Bounds().Center(), e.dir.Vec(), e.ID())
	r.spawn(pr)
}

// lineOfSight walks the grid from a position along a cardinal
// direction. It returns the distance to the first living player
// encountered before any wall, or nil when the corridor is empty.
func (r *Round) lineOfSight(from geom.Vec, dir geom.Dir) (float64, *Player) {
	step := dir.Vec()
	if step.IsZero() {
		return 0, nil
	}
	pos := from
	for dist := 0.0; ; dist++ {
		rect := geom.R(geom.V(pos.Row-0.5, pos.Col-0.5), 1, 1)
		if !r.maze.InBounds(rect) {
			return 0, nil
		}
		for _, other := range r.maze.Collide(rect, nil) {
			switch other.Kind() {
			case KindSolidWall, KindBreakableWall:
				return 0, nil
			case KindPlayer:
				p := other.(*Player)
				if p.Alive() && !p.Dying() {
					return dist, p
				}
			}
		}
		pos = pos.Add(step)
	}
}

// kill puts the enemy into its dying state. Aliens drop an EXTRA
// letter where they fell.
func (r *Round) killEnemy(e *Enemy, collector *Player) {
	if e.state == EnemyDying {
		return
	}
	e.state = EnemyDying
	e.dying.Start(enemyDyingDelay)
	if collector != nil {
		r.addScore(collector, e.ekind.profile().score)
	}
	if e.alien {
		letter := r.rng.Intn(5)
		cell := e.Pos().Cell()
		r.spawn(NewExtraLetter(cell.Vec(), letter))
	}
}
