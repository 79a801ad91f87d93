package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// EntitySnapshot is a read-only copy of one entity's renderable state.
// Kind-specific fields are zero for other kinds.
type EntitySnapshot struct {
	ID   ID
	Kind Kind
	Pos  geom.Vec
	Size geom.Vec

	Dying bool

	// Player
	Player int
	Facing geom.Dir
	Shield bool

	// Enemy
	Enemy      EnemyKind
	EnemyState EnemyState
	Alien      bool

	// Boss
	Stage      BossStage
	HealthFrac float64

	// Bomb
	FuseFrac float64

	// Projectile
	Weapon ProjectileKind

	// Pickups
	Bonus  BonusKind
	Letter int
}

// PlayerSnapshot is the HUD view of one player.
type PlayerSnapshot struct {
	Player  int
	Alive   bool
	Lives   int
	Health  int
	MaxHP   int
	Score   int
	Bombs   int // bombs still placeable
	Letters [5]bool
	Shield  bool
}

// Snapshot is a complete read-only copy of the round state, safe to
// hand to a renderer while the simulation keeps ticking.
type Snapshot struct {
	Tick      uint64
	State     RoundState
	Rows      int
	Cols      int
	TimeLeft  float64
	HurryUp   bool
	ExtraGame bool
	Entities  []EntitySnapshot
	Players   []PlayerSnapshot
}

// Snapshot captures the current round state. Entities appear in spawn
// order, so renderers draw older entities first.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      r.tick,
		State:     r.state,
		Rows:      r.maze.Rows(),
		Cols:      r.maze.Cols(),
		TimeLeft:  r.countdown.Remaining(),
		HurryUp:   r.hurry,
		ExtraGame: r.extraGame.Active(),
	}

	for _, e := range r.maze.Entities() {
		es := EntitySnapshot{
			ID:    e.ID(),
			Kind:  e.Kind(),
			Pos:   e.Pos(),
			Size:  e.Size(),
			Dying: e.Dying(),
		}
		switch v := e.(type) {
		case *Player:
			es.Player = v.Player()
			es.Facing = v.Facing()
			es.Shield = v.Shielded()
		case *Enemy:
			es.Enemy = v.Enemy()
			es.EnemyState = v.State()
			es.Alien = v.Alien()
		case *Boss:
			es.Stage = v.Stage()
			es.HealthFrac = float64(v.health) / bossHealth
		case *Bomb:
			es.FuseFrac = v.FuseFrac()
		case *Projectile:
			es.Weapon = v.Projectile()
		case *Pickup:
			es.Bonus = v.Bonus()
			es.Letter = v.Letter()
		}
		s.Entities = append(s.Entities, es)
	}

	for _, p := range r.players {
		s.Players = append(s.Players, PlayerSnapshot{
			Player:  p.Player(),
			Alive:   p.Alive(),
			Lives:   p.Lives(),
			Health:  p.health,
			MaxHP:   playerHealth,
			Score:   p.Score(),
			Bombs:   p.bombCap - p.bombsOut,
			Letters: p.Letters(),
			Shield:  p.Shielded(),
		})
	}
	return s
}
