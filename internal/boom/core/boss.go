package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// BossStage is the staged Head encounter: a reveal phase before it can
// act or be hurt, an attack-pattern phase firing missile volleys, and
// a defeat phase that feeds the win condition.
type BossStage int

const (
	BossReveal BossStage = iota
	BossAttacking
	BossDefeated
)

// String returns a human-readable name for the stage.
func (s BossStage) String() string {
	switch s {
	case BossReveal:
		return "Reveal"
	case BossAttacking:
		return "Attacking"
	case BossDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// Head boss balance, from the original level data.
const (
	bossHealth      = 200
	bossDamage      = 20  // contact damage
	bossScope       = 9.0 // missile targeting range
	bossReload      = 3.6 // seconds between volleys
	bossVolleyGap   = 1.2 // second shot of a volley follows after this
	bossRevealDelay = 2.0
	bossDyingDelay  = 2.0
	bossScore       = 5000
)

// Boss is the Head: a stationary 3x3 area boss. Its two eyes fire
// missiles aimed at any player within scope. Each explosion hurts it
// at most once regardless of how many segments overlap it.
type Boss struct {
	base
	stage  BossStage
	reveal Timer
	reload Timer
	volley Timer

	hitBy map[uint64]bool // blast ids that already damaged it
}

// NewBoss creates the Head at the given top-left position.
func NewBoss(pos geom.Vec) *Boss {
	b := &Boss{
		base:  newBase(KindBoss, pos, 3, 3, bossHealth),
		hitBy: make(map[uint64]bool),
	}
	b.reveal.Start(bossRevealDelay)
	return b
}

// Stage returns the current encounter stage.
func (b *Boss) Stage() BossStage { return b.stage }

// eyes returns the two positions missiles are fired from.
func (b *Boss) eyes() [2]geom.Vec {
	return [2]geom.Vec{
		b.pos.Add(geom.V(0.7, 0.6)),
		b.pos.Add(geom.V(0.7, 2.4)),
	}
}

// updateBoss runs one tick of the boss state machine.
func (r *Round) updateBoss(b *Boss) {
	dt := r.dt()

	switch b.stage {
	case BossReveal:
		if b.reveal.Tick(dt) {
			b.stage = BossAttacking
			b.reload.Start(bossReload)
		}

	case BossAttacking:
		// Contact damage to anyone overlapping the body.
		for _, other := range r.maze.Collide(b.Bounds(), nil) {
			if p, ok := other.(*Player); ok {
				r.damagePlayer(p, bossDamage)
			}
		}
		if b.reload.Tick(dt) {
			r.bossVolley(b)
			b.volley.Start(bossVolleyGap)
			b.reload.Start(bossReload)
		}
		if b.volley.Tick(dt) {
			r.bossVolley(b)
		}

	case BossDefeated:
		// Removal handled by the shared dying timer.
	}
}

// bossVolley fires one missile per eye at the nearest player within
// scope.
func (r *Round) bossVolley(b *Boss) {
	for _, eye := range b.eyes() {
		var target *Player
		best := bossScope
		for _, p := range r.players {
			if !p.Alive() || p.Dying() {
				continue
			}
			if d := p.Bounds().Center().Dist(eye); d < best {
				best = d
				target = p
			}
		}
		if target == nil {
			continue
		}
		dir := target.Bounds().Center().Sub(eye).Norm()
		r.spawn(newProjectile(ProjMissile, eye, dir, b.ID()))
	}
}

// damageBoss applies one explosion hit. The reveal stage is
// invulnerable; each blast counts once.
func (r *Round) damageBoss(b *Boss, blast uint64, damage int, collector *Player) {
	if b.stage != BossAttacking || b.hitBy[blast] {
		return
	}
	b.hitBy[blast] = true
	b.health -= damage
	if b.health > 0 {
		return
	}
	b.stage = BossDefeated
	b.dying.Start(bossDyingDelay)
	if collector != nil {
		r.addScore(collector, bossScore)
	}
}
