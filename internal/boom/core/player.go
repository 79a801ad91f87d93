package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// Player defaults, carried over from the original game balance.
const (
	playerHealth     = 16
	playerLives      = 3
	playerSpeed      = 4.0 // tiles per second
	playerBombCap    = 5
	playerBombRadius = 2
	bombCooldown     = 0.2 // min seconds between two placements
	hitShield        = 1.0 // immunity window after taking a hit
	respawnShield    = 5.0 // immunity window after losing a life
	speedBonusTime   = 20.0
	shieldBonusTime  = 23.0
	playerDyingDelay = 1.0
)

// Player is one of the two controllable entities. It carries lives,
// health under each life, bomb inventory and the collected EXTRA
// letters. A recent-damage shield makes it temporarily invulnerable.
type Player struct {
	base
	player int // 1 or 2

	lives int
	score int

	shield  Timer
	speedup Timer
	speed   float64

	bombCap  int
	bombRad  int
	fastBomb bool
	bombCD   Timer
	bombsOut int

	letters [5]bool
	spawn   geom.Vec
	facing  geom.Dir
}

// NewPlayer creates a player entity with default inventory. It is
// positioned when attached to a maze.
func NewPlayer(id int) *Player {
	p := &Player{
		base:    newBase(KindPlayer, geom.V(0, 0), 1, 1, playerHealth),
		player:  id,
		lives:   playerLives,
		speed:   playerSpeed,
		bombCap: playerBombCap,
		bombRad: playerBombRadius,
		facing:  geom.DirDown,
	}
	return p
}

// Player returns the player id (1 or 2).
func (p *Player) Player() int { return p.player }

// Lives returns the remaining life counter.
func (p *Player) Lives() int { return p.lives }

// Score returns the accumulated score.
func (p *Player) Score() int { return p.score }

// Shielded reports whether the player is currently invulnerable.
func (p *Player) Shielded() bool { return p.shield.Active() }

// BombCapacity returns how many bombs may be armed at once.
func (p *Player) BombCapacity() int { return p.bombCap }

// BombRadius returns the blast range of newly placed bombs.
func (p *Player) BombRadius() int { return p.bombRad }

// Letters returns which of the five EXTRA letters are held.
func (p *Player) Letters() [5]bool { return p.letters }

// Facing returns the last movement direction, used by renderers.
func (p *Player) Facing() geom.Dir { return p.facing }

// Alive reports whether the player still participates in the round.
func (p *Player) Alive() bool { return p.lives > 0 }

// canPlaceBomb checks inventory and cooldown. Exhausted inventory is
// not an error: placement is silently rejected with no state change.
func (p *Player) canPlaceBomb() bool {
	if p.Dying() || !p.Alive() {
		return false
	}
	if p.bombsOut >= p.bombCap {
		return false
	}
	return !p.bombCD.Active()
}

// bombPlaced books a new armed bomb against the inventory.
func (p *Player) bombPlaced() {
	p.bombsOut++
	p.bombCD.Start(bombCooldown)
}

// bombResolved releases an inventory slot after a bomb detonates.
func (p *Player) bombResolved() {
	if p.bombsOut > 0 {
		p.bombsOut--
	}
}

// takeDamage applies damage, honoring the immunity window. It reports
// whether the hit landed and whether it cost a life. A landed non
// lethal hit starts the short hit shield.
func (p *Player) takeDamage(damage int) (hit, lifeLost bool) {
	if p.shield.Active() || p.Dying() || !p.Alive() {
		return false, false
	}
	p.health -= damage
	if p.health > 0 {
		p.shield.Start(hitShield)
		return true, false
	}
	p.lives--
	if p.lives > 0 {
		p.newLife()
	} else {
		p.dying.Start(playerDyingDelay)
	}
	return true, true
}

// newLife restores health and default inventory after a lost life and
// grants the respawn immunity window.
func (p *Player) newLife() {
	p.health = playerHealth
	p.speed = playerSpeed
	p.speedup.Reset()
	p.bombCap = playerBombCap
	p.bombRad = playerBombRadius
	p.fastBomb = false
	p.shield.Start(respawnShield)
}

// addLetter records a collected EXTRA letter. Completing all five
// resets the set and reports an extra life grant.
func (p *Player) addLetter(letter int) bool {
	p.letters[letter%5] = true
	for _, have := range p.letters {
		if !have {
			return false
		}
	}
	p.letters = [5]bool{}
	p.lives++
	return true
}

// applyBonus applies a collected bonus to the player's inventory.
// Lightbolt and Skull act on the maze and are handled by the round.
func (p *Player) applyBonus(kind BonusKind) {
	switch kind {
	case BonusBombCapacity:
		if p.bombCap < 8 {
			p.bombCap++
		}
	case BonusBombRadius:
		if p.bombRad < 4 {
			p.bombRad++
		}
	case BonusFastBomb:
		p.fastBomb = true
	case BonusHeart:
		p.health = min(playerHealth, p.health+2)
	case BonusFullHeart:
		p.health = playerHealth
	case BonusShield:
		p.shield.Start(shieldBonusTime)
	case BonusSpeed:
		p.speedup.Start(speedBonusTime)
		p.speed = playerSpeed * 2
	}
}

// tickTimers advances the player's private timers by dt.
func (p *Player) tickTimers(dt float64) {
	p.shield.Tick(dt)
	p.bombCD.Tick(dt)
	if p.speedup.Tick(dt) {
		p.speed = playerSpeed
	}
}
