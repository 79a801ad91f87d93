package core

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// RoundState is the lifecycle phase of one level run.
type RoundState int

const (
	RoundLoading RoundState = iota
	RoundRunning
	RoundWon
	RoundLost
	RoundTerminated
)

// String returns the state name for logs and tests.
func (s RoundState) String() string {
	switch s {
	case RoundLoading:
		return "loading"
	case RoundRunning:
		return "running"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	case RoundTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const (
	defaultTickRate = 30
	hurryUpTime     = 30.0 // seconds left when enemies enrage
	extraGameTime   = 30.0 // duration of the alien bonus phase
	presentDelay    = 3.0  // outcome shown before termination
	coinScore       = 150
	letterScore     = 100
)

// ErrNoSpawn is returned when the maze lacks a spawn point for a
// requested player.
var ErrNoSpawn = fmt.Errorf("core: maze has no spawn point for player")

// Intent is one player's input for a single tick.
type Intent struct {
	Move      geom.Dir
	PlaceBomb bool
}

// Input maps player id (1 or 2) to that player's intent for the tick.
type Input map[int]Intent

// TickResult is what one call to Tick hands back to the caller: the
// tick counter, the state after the tick and every event the tick
// produced, in emission order.
type TickResult struct {
	Tick   uint64
	State  RoundState
	Events []Event
}

// Options configures a round. The zero value gets sensible defaults.
type Options struct {
	Players  int   // 1 or 2, default 1
	TickRate int   // simulation ticks per second, default 30
	Seed     int64 // rng seed, 0 keeps runs reproducible at seed 0
	Logger   *log.Logger
}

// Round drives one level from loading to termination: it owns the
// maze, the players, the seeded rng and the per-tick event buffer. All
// methods must be called from a single goroutine; the round itself
// never spawns any.
type Round struct {
	maze    *Maze
	players []*Player
	rng     *rand.Rand
	log     *log.Logger

	state    RoundState
	tick     uint64
	tickRate int

	countdown Timer
	hurry     bool
	extraGame Timer
	present   Timer

	blastSeq uint64
	events   []Event
}

// NewRound builds a round over a loaded maze. Players are attached at
// the maze's spawn points; a missing spawn point is an error. The
// round starts in the loading state: call Start to begin simulating.
func NewRound(m *Maze, opts Options) (*Round, error) {
	if opts.Players <= 0 {
		opts.Players = 1
	}
	if opts.Players > 2 {
		return nil, fmt.Errorf("core: at most 2 players, got %d", opts.Players)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = defaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	r := &Round{
		maze:     m,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		log:      opts.Logger,
		state:    RoundLoading,
		tickRate: opts.TickRate,
	}

	spawns := m.SpawnPoints()
	for id := 1; id <= opts.Players; id++ {
		pos, ok := spawns[id]
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrNoSpawn, id)
		}
		p := NewPlayer(id)
		p.spawn = pos
		m.Add(p)
		m.MoveTo(p, pos)
		r.players = append(r.players, p)
	}
	sort.Slice(r.players, func(i, j int) bool {
		return r.players[i].Player() < r.players[j].Player()
	})
	return r, nil
}

// Maze exposes the underlying maze for read-only inspection.
func (r *Round) Maze() *Maze { return r.maze }

// State returns the current lifecycle state.
func (r *Round) State() RoundState { return r.state }

// Players returns the attached players in id order.
func (r *Round) Players() []*Player { return r.players }

// TimeLeft returns the remaining level countdown in seconds.
func (r *Round) TimeLeft() float64 { return r.countdown.Remaining() }

// ExtraGame reports whether the alien bonus phase is active.
func (r *Round) ExtraGame() bool { return r.extraGame.Active() }

// transition moves the round to a new state. Invalid transitions are
// absorbed with a warning rather than corrupting the lifecycle.
func (r *Round) transition(to RoundState) {
	valid := false
	switch r.state {
	case RoundLoading:
		valid = to == RoundRunning
	case RoundRunning:
		valid = to == RoundWon || to == RoundLost
	case RoundWon, RoundLost:
		valid = to == RoundTerminated
	}
	if !valid {
		r.log.Warn("invalid round transition", "from", r.state, "to", to)
		return
	}
	r.state = to
}

// Start begins the simulation and arms the level countdown.
func (r *Round) Start() {
	r.transition(RoundRunning)
	if r.state != RoundRunning {
		return
	}
	countdown := r.maze.Meta().Countdown
	if countdown <= 0 {
		countdown = 120
	}
	r.countdown.Start(countdown)
}

// Terminate forces the round into its terminal state, for example when
// the user quits mid-run.
func (r *Round) Terminate() {
	if r.state == RoundRunning {
		// Quitting a live round counts as a loss.
		r.transition(RoundLost)
	}
	if r.state == RoundWon || r.state == RoundLost {
		r.transition(RoundTerminated)
	}
}

// dt is the fixed simulation step in seconds.
func (r *Round) dt() float64 { return 1.0 / float64(r.tickRate) }

// emit appends an event to the tick's buffer.
func (r *Round) emit(ev Event) { r.events = append(r.events, ev) }

// spawn adds an entity to the maze and announces it.
func (r *Round) spawn(e Entity) {
	r.maze.Add(e)
	r.emit(EntityCreatedEvent{ID: e.ID(), Kind: e.Kind(), Pos: e.Pos()})
}

// despawn removes an entity from the maze and announces it.
func (r *Round) despawn(e Entity) {
	r.maze.Remove(e)
	r.emit(EntityRemovedEvent{ID: e.ID(), Kind: e.Kind(), Pos: e.Pos()})
}

// addScore credits points to a player and announces the new total.
func (r *Round) addScore(p *Player, points int) {
	if p == nil || points == 0 {
		return
	}
	p.score += points
	r.emit(ScoreChangedEvent{Player: p.Player(), Delta: points, Total: p.score})
}

// damagePlayer applies damage to a player, honoring the immunity
// shield, and reports whether the hit landed.
func (r *Round) damagePlayer(p *Player, damage int) bool {
	hit, lifeLost := p.takeDamage(damage)
	if !hit {
		return false
	}
	r.emit(PlayerDamagedEvent{
		Player:   p.Player(),
		Damage:   damage,
		Health:   p.health,
		Lives:    p.lives,
		LifeLost: lifeLost,
	})
	return true
}

// Tick advances the simulation by one fixed step and returns the tick
// outcome. The phase order is fixed: player intents and movement,
// bombs and explosions, enemy and boss AI, timers and expiry, then the
// win/lose check. Calling Tick outside the running state only advances
// the outcome presentation timer.
func (r *Round) Tick(in Input) TickResult {
	r.events = r.events[:0]

	switch r.state {
	case RoundWon, RoundLost:
		if r.present.Tick(r.dt()) {
			r.transition(RoundTerminated)
		}
		return r.result()
	case RoundLoading, RoundTerminated:
		return r.result()
	}

	r.tick++

	r.stepPlayers(in)
	r.updateBombs()
	r.updateExplosions()
	r.stepEnemies()
	r.stepProjectiles()
	r.stepTimers()
	r.checkOutcome()

	return r.result()
}

func (r *Round) result() TickResult {
	evs := make([]Event, len(r.events))
	copy(evs, r.events)
	return TickResult{Tick: r.tick, State: r.state, Events: evs}
}

// stepPlayers applies each player's intent in player-id order, then
// resolves the post-move overlaps.
func (r *Round) stepPlayers(in Input) {
	seen := make(map[pairKey]bool)
	for _, p := range r.players {
		if !p.Alive() || p.Dying() {
			continue
		}
		intent := in[p.Player()]
		if intent.PlaceBomb {
			r.placeBomb(p)
		}
		if intent.Move != geom.DirNone {
			p.facing = intent.Move
			r.moveMobile(p, intent.Move.Vec().Scale(p.speed*r.dt()))
		}
		r.applyOverlaps(p, seen)
	}
}

// stepEnemies runs the AI state machines and moves enemies and the
// boss, in spawn order.
func (r *Round) stepEnemies() {
	seen := make(map[pairKey]bool)
	for _, e := range r.maze.EntitiesOfKind(KindEnemy) {
		en := e.(*Enemy)
		r.updateEnemy(en)
		if en.state == EnemyDying {
			continue
		}
		if en.dir != geom.DirNone {
			r.moveMobile(en, en.dir.Vec().Scale(en.currentSpeed()*r.dt()))
		}
		r.applyOverlaps(en, seen)
	}
	for _, e := range r.maze.EntitiesOfKind(KindBoss) {
		r.updateBoss(e.(*Boss))
	}
}

// stepProjectiles moves every live projectile and resolves impacts.
func (r *Round) stepProjectiles() {
	for _, e := range r.maze.EntitiesOfKind(KindProjectile) {
		r.moveProjectile(e.(*Projectile))
	}
}

// stepTimers advances per-entity and level timers: player shields and
// cooldowns, dying delays, pickup expiry, letter cycling, the level
// countdown with its hurry-up threshold and the extra-game window.
func (r *Round) stepTimers() {
	dt := r.dt()

	for _, p := range r.players {
		p.tickTimers(dt)
		if p.dying.Tick(dt) {
			r.despawn(p)
		}
	}

	for _, e := range r.maze.EntitiesOfKind(KindEnemy) {
		en := e.(*Enemy)
		if en.state == EnemyDying && en.dying.Tick(dt) {
			r.despawn(en)
		}
	}
	for _, e := range r.maze.EntitiesOfKind(KindBoss) {
		b := e.(*Boss)
		if b.stage == BossDefeated && b.dying.Tick(dt) {
			r.despawn(b)
		}
	}

	for _, e := range r.maze.EntitiesOfKind(KindBonus) {
		pk := e.(*Pickup)
		if pk.expire.Tick(dt) {
			r.despawn(pk)
		}
	}
	for _, e := range r.maze.EntitiesOfKind(KindExtraLetter) {
		pk := e.(*Pickup)
		if pk.cycle.Tick(dt) {
			pk.letter = (pk.letter + 1) % 5
			pk.cycle.Start(letterCyclePeriod)
		}
	}
	for _, e := range r.maze.EntitiesOfKind(KindTeleporter) {
		e.(*Teleporter).reload.Tick(dt)
	}

	if r.extraGame.Tick(dt) {
		r.setExtraGame(false)
	}

	if !r.hurry && r.countdown.Active() && r.countdown.Remaining() <= hurryUpTime {
		r.hurry = true
		r.emit(HurryUpEvent{})
		for _, e := range r.maze.EntitiesOfKind(KindEnemy) {
			e.(*Enemy).enraged = true
		}
	}
	if r.countdown.Tick(dt) {
		r.lose(LoseTimeUp)
	}
}

// collect resolves a player walking over a pickup.
func (r *Round) collect(p *Player, pk *Pickup) {
	switch pk.Kind() {
	case KindCoin:
		r.despawn(pk)
		r.addScore(p, coinScore)
		if len(r.maze.EntitiesOfKind(KindCoin)) == 0 {
			r.setExtraGame(true)
		}
	case KindExtraLetter:
		r.despawn(pk)
		r.addScore(p, letterScore)
		if p.addLetter(pk.letter) {
			r.emit(ExtraLifeEvent{Player: p.Player()})
		}
	case KindBonus:
		r.despawn(pk)
		r.addScore(p, 50)
		switch pk.bonus {
		case BonusLightbolt:
			for _, e := range r.maze.EntitiesOfKind(KindBreakableWall) {
				r.destroyWall(e.(*Wall), p)
			}
		case BonusSkull:
			for _, e := range r.maze.EntitiesOfKind(KindEnemy) {
				r.killEnemy(e.(*Enemy), p)
			}
		default:
			p.applyBonus(pk.bonus)
		}
	}
}

// setExtraGame toggles the alien bonus phase: enemies turn into
// harmless aliens that drop EXTRA letters when killed, and revert when
// the window closes.
func (r *Round) setExtraGame(active bool) {
	if active {
		r.extraGame.Start(extraGameTime)
	} else {
		r.extraGame.Reset()
	}
	for _, e := range r.maze.EntitiesOfKind(KindEnemy) {
		e.(*Enemy).setExtraGame(active)
	}
	r.emit(ExtraGameEvent{Active: active})
}

// lose moves the round to the lost state and arms the presentation
// delay.
func (r *Round) lose(reason LoseReason) {
	if r.state != RoundRunning {
		return
	}
	r.transition(RoundLost)
	r.present.Start(presentDelay)
	r.emit(LevelLostEvent{Reason: reason})
}

// checkOutcome resolves the end of a round. Losing takes priority:
// when the last player dies on the same tick the last enemy does, the
// round is lost.
func (r *Round) checkOutcome() {
	if r.state != RoundRunning {
		return
	}

	anyAlive := false
	for _, p := range r.players {
		if p.Alive() {
			anyAlive = true
			break
		}
	}
	if !anyAlive {
		r.lose(LoseAllPlayersDead)
		return
	}

	if len(r.maze.EntitiesOfKind(KindEnemy)) == 0 &&
		len(r.maze.EntitiesOfKind(KindBoss)) == 0 {
		r.transition(RoundWon)
		r.present.Start(presentDelay)
		r.emit(LevelWonEvent{})
	}
}
