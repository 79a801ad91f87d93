package core

import "github.com/vovakirdan/tui-boom/internal/geom"

// Event is a discrete simulation occurrence collected during one tick.
// Collaborators (renderer, audio, score persistence) consume the event
// stream from TickResult; they never mutate simulation state.
type Event interface {
	event()
}

// EntityCreatedEvent is emitted when an entity enters the maze.
type EntityCreatedEvent struct {
	ID   ID
	Kind Kind
	Pos  geom.Vec
}

func (EntityCreatedEvent) event() {}

// EntityRemovedEvent is emitted when an entity leaves the maze.
type EntityRemovedEvent struct {
	ID   ID
	Kind Kind
	Pos  geom.Vec
}

func (EntityRemovedEvent) event() {}

// EntityMovedEvent carries a position delta for rendering
// interpolation.
type EntityMovedEvent struct {
	ID   ID
	From geom.Vec
	To   geom.Vec
}

func (EntityMovedEvent) event() {}

// ScoreChangedEvent is emitted when a player earns points.
type ScoreChangedEvent struct {
	Player int
	Delta  int
	Total  int
}

func (ScoreChangedEvent) event() {}

// PlayerDamagedEvent is emitted when a hit lands on a player.
type PlayerDamagedEvent struct {
	Player   int
	Damage   int
	Health   int
	Lives    int
	LifeLost bool
}

func (PlayerDamagedEvent) event() {}

// TeleportedEvent is emitted when a teleporter relocates an entity.
type TeleportedEvent struct {
	ID   ID
	From geom.Vec
	To   geom.Vec
}

func (TeleportedEvent) event() {}

// HurryUpEvent is emitted once when the countdown nears zero and all
// enemies become enraged.
type HurryUpEvent struct{}

func (HurryUpEvent) event() {}

// ExtraGameEvent marks the start or end of the extra game window.
type ExtraGameEvent struct {
	Active bool
}

func (ExtraGameEvent) event() {}

// ExtraLifeEvent is emitted when a player completes the EXTRA letters.
type ExtraLifeEvent struct {
	Player int
}

func (ExtraLifeEvent) event() {}

// LevelWonEvent is emitted in the tick the last enemy (and boss, if
// present) is removed.
type LevelWonEvent struct{}

func (LevelWonEvent) event() {}

// LoseReason describes why a round was lost.
type LoseReason int

const (
	LoseAllPlayersDead LoseReason = iota
	LoseTimeUp
)

// String returns a human-readable name for the reason.
func (r LoseReason) String() string {
	switch r {
	case LoseAllPlayersDead:
		return "AllPlayersDead"
	case LoseTimeUp:
		return "TimeUp"
	default:
		return "Unknown"
	}
}

// LevelLostEvent is emitted when the lose condition is met.
type LevelLostEvent struct {
	Reason LoseReason
}

func (LevelLostEvent) event() {}
