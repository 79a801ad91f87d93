package core

import (
	"math/rand"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// Wall is a stationary tile-sized obstacle. Breakable walls are
// destroyed by explosions and may drop a bonus.
type Wall struct {
	base
}

// NewSolidWall creates an indestructible wall at the given position.
func NewSolidWall(pos geom.Vec) *Wall {
	w := &Wall{base: newBase(KindSolidWall, pos, 1, 1, 0)}
	return w
}

// NewBreakableWall creates a destructible wall at the given position.
func NewBreakableWall(pos geom.Vec) *Wall {
	w := &Wall{base: newBase(KindBreakableWall, pos, 1, 1, 0)}
	return w
}

// BonusKind enumerates the pickups a breakable wall can drop.
type BonusKind int

const (
	BonusBombCapacity BonusKind = iota // one more simultaneous bomb
	BonusBombRadius                    // larger blast range
	BonusFastBomb                      // shorter fuse
	BonusHeart                         // heal 2
	BonusFullHeart                     // full heal
	BonusShield                        // temporary invulnerability
	BonusSpeed                         // temporary double speed
	BonusLightbolt                     // clears all breakable walls
	BonusSkull                         // kills all enemies
)

// String returns a human-readable name for the bonus kind.
func (b BonusKind) String() string {
	switch b {
	case BonusBombCapacity:
		return "BombCapacity"
	case BonusBombRadius:
		return "BombRadius"
	case BonusFastBomb:
		return "FastBomb"
	case BonusHeart:
		return "Heart"
	case BonusFullHeart:
		return "FullHeart"
	case BonusShield:
		return "Shield"
	case BonusSpeed:
		return "Speed"
	case BonusLightbolt:
		return "Lightbolt"
	case BonusSkull:
		return "Skull"
	default:
		return "Unknown"
	}
}

// bonusWeights is the drop table used when a breakable wall is
// destroyed, matching the original game's rates.
var bonusWeights = []struct {
	kind   BonusKind
	weight float64
}{
	{BonusBombCapacity, 0.15},
	{BonusBombRadius, 0.15},
	{BonusFastBomb, 0.10},
	{BonusHeart, 0.15},
	{BonusFullHeart, 0.10},
	{BonusShield, 0.15},
	{BonusSpeed, 0.15},
	{BonusLightbolt, 0.05},
	{BonusSkull, 0.03},
}

// bonusDropRate is the chance a destroyed breakable wall drops any
// bonus at all.
const bonusDropRate = 0.1

// rollBonus returns the bonus dropped by a destroyed wall, or false.
// Driven by the round's seeded generator for reproducibility.
func rollBonus(rng *rand.Rand) (BonusKind, bool) {
	if rng.Float64() > bonusDropRate {
		return 0, false
	}
	total := 0.0
	for _, w := range bonusWeights {
		total += w.weight
	}
	pick := rng.Float64() * total
	for _, w := range bonusWeights {
		pick -= w.weight
		if pick <= 0 {
			return w.kind, true
		}
	}
	return bonusWeights[len(bonusWeights)-1].kind, true
}

// Pickup is a stationary collectible: a coin, a cycling EXTRA letter
// or a timed bonus.
type Pickup struct {
	base
	bonus  BonusKind
	letter int   // 0..4, index into "EXTRA"
	expire Timer // bonuses vanish if not collected
	cycle  Timer // letters change every cycle
}

// Letter pickups cycle through the five EXTRA letters on this period.
const letterCyclePeriod = 2.0

// Bonuses stay on the ground this long before vanishing.
const bonusLifetime = 7.0

// NewCoin creates a coin pickup.
func NewCoin(pos geom.Vec) *Pickup {
	return &Pickup{base: newBase(KindCoin, pos, 1, 1, 0)}
}

// NewBonus creates a timed bonus pickup of the given kind.
func NewBonus(pos geom.Vec, kind BonusKind) *Pickup {
	p := &Pickup{base: newBase(KindBonus, pos, 1, 1, 0), bonus: kind}
	p.expire.Start(bonusLifetime)
	return p
}

// NewExtraLetter creates a letter pickup starting at the given letter.
func NewExtraLetter(pos geom.Vec, letter int) *Pickup {
	p := &Pickup{base: newBase(KindExtraLetter, pos, 1, 1, 0), letter: letter % 5}
	p.cycle.Start(letterCyclePeriod)
	return p
}

// Bonus returns the bonus kind of a KindBonus pickup.
func (p *Pickup) Bonus() BonusKind { return p.bonus }

// Letter returns the current letter index of a KindExtraLetter pickup.
func (p *Pickup) Letter() int { return p.letter }

// Teleporter relocates mobile entities to its partner. After use it
// reloads for a short delay during which nothing can exit from it.
// Teleporters are chained in parse order: when a partner is busy, the
// next available one in the chain is chosen deterministically.
type Teleporter struct {
	base
	partner *Teleporter
	reload  Timer
}

// Teleporter reload delay in seconds.
const teleporterReload = 0.8

// NewTeleporter creates an unpaired teleporter. The level loader pairs
// them after parsing.
func NewTeleporter(pos geom.Vec) *Teleporter {
	return &Teleporter{base: newBase(KindTeleporter, pos, 1, 1, 0)}
}

// Pair links this teleporter to the next one in the chain.
func (t *Teleporter) Pair(next *Teleporter) { t.partner = next }

// available reports whether an entity may exit from this teleporter.
func (t *Teleporter) available() bool {
	return !t.reload.Active()
}

// destination walks the partner chain for the first available exit,
// skipping reloading teleporters. Returns nil when no exit exists.
func (t *Teleporter) destination() *Teleporter {
	for next := t.partner; next != nil && next != t; next = next.partner {
		if next.available() {
			return next
		}
	}
	return nil
}

// use puts the teleporter into its reload delay.
func (t *Teleporter) use() {
	t.reload.Start(teleporterReload)
}
