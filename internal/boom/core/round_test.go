package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

// newTestRound builds a running single-player round on an empty
// default-size maze with the player spawned at (1,1).
func newTestRound(t *testing.T) *Round {
	t.Helper()
	m := NewMaze(DefaultRows, DefaultCols)
	m.SetSpawn(1, geom.V(1, 1))
	r, err := NewRound(m, Options{Players: 1, Seed: 1})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	r.Start()
	return r
}

// penEnemy walls an enemy into a cell so it cannot move or see
// anyone. Used to keep the win condition from firing mid-test.
func penEnemy(m *Maze, cell geom.Cell) *Enemy {
	for _, d := range geom.Cardinals {
		step := d.Vec()
		m.Add(NewSolidWall(geom.V(
			float64(cell.Row)+step.Row,
			float64(cell.Col)+step.Col,
		)))
	}
	e := NewEnemy(EnemySoldier, cell.Vec())
	m.Add(e)
	return e
}

func findEvent[E Event](evs []Event) (E, bool) {
	for _, ev := range evs {
		if e, ok := ev.(E); ok {
			return e, true
		}
	}
	var zero E
	return zero, false
}

func TestNewRoundRequiresSpawn(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	if _, err := NewRound(m, Options{Players: 1}); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("NewRound without spawn: err = %v, want ErrNoSpawn", err)
	}

	m.SetSpawn(1, geom.V(1, 1))
	if _, err := NewRound(m, Options{Players: 2}); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("NewRound with one spawn for two players: err = %v, want ErrNoSpawn", err)
	}

	if _, err := NewRound(m, Options{Players: 3}); err == nil {
		t.Error("NewRound should reject more than 2 players")
	}
}

func TestRoundLifecycle(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	m.SetSpawn(1, geom.V(1, 1))
	r, err := NewRound(m, Options{Players: 1, Seed: 1})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}

	if r.State() != RoundLoading {
		t.Fatalf("initial state = %v, want Loading", r.State())
	}

	// Ticks before Start are inert.
	res := r.Tick(nil)
	if res.Tick != 0 || r.State() != RoundLoading {
		t.Errorf("Tick before Start advanced the round: tick=%d state=%v", res.Tick, r.State())
	}

	r.Start()
	if r.State() != RoundRunning {
		t.Fatalf("state after Start = %v, want Running", r.State())
	}
	if r.TimeLeft() != 120 {
		t.Errorf("default countdown = %v, want 120", r.TimeLeft())
	}

	// An illegal jump back to running is absorbed, not applied.
	r.transition(RoundRunning)
	if r.State() != RoundRunning {
		t.Errorf("state after invalid transition = %v", r.State())
	}

	r.Terminate()
	if r.State() != RoundTerminated {
		t.Errorf("state after Terminate = %v, want Terminated", r.State())
	}
}

func TestRoundWinWhenMazeCleared(t *testing.T) {
	r := newTestRound(t)

	// No enemies and no boss: the first tick resolves the win.
	res := r.Tick(nil)
	if res.State != RoundWon {
		t.Fatalf("state = %v, want Won", res.State)
	}
	if _, ok := findEvent[LevelWonEvent](res.Events); !ok {
		t.Error("no LevelWonEvent emitted on win")
	}

	// The outcome is presented for a few seconds, then the round
	// terminates on its own.
	for i := 0; i < 3*defaultTickRate+5; i++ {
		res = r.Tick(nil)
	}
	if res.State != RoundTerminated {
		t.Errorf("state after presentation delay = %v, want Terminated", res.State)
	}
}

func TestRoundNoWinWhileEnemyAlive(t *testing.T) {
	r := newTestRound(t)
	penEnemy(r.Maze(), geom.C(11, 13))

	res := r.Tick(nil)
	if res.State != RoundRunning {
		t.Errorf("state = %v, want Running while an enemy lives", res.State)
	}
}

func TestRoundLossWhenAllPlayersDead(t *testing.T) {
	r := newTestRound(t)
	penEnemy(r.Maze(), geom.C(11, 13))

	p := r.Players()[0]
	p.lives = 1
	r.damagePlayer(p, playerHealth)

	res := r.Tick(nil)
	if res.State != RoundLost {
		t.Fatalf("state = %v, want Lost", res.State)
	}
	lost, ok := findEvent[LevelLostEvent](res.Events)
	if !ok {
		t.Fatal("no LevelLostEvent emitted on loss")
	}
	if lost.Reason != LoseAllPlayersDead {
		t.Errorf("lose reason = %v, want AllPlayersDead", lost.Reason)
	}
}

func TestRoundLossBeatsWinOnSameTick(t *testing.T) {
	// The last player and the last enemy go down on the same tick:
	// the round is lost, not won.
	r := newTestRound(t)
	e := penEnemy(r.Maze(), geom.C(11, 13))

	p := r.Players()[0]
	p.lives = 1
	r.damagePlayer(p, playerHealth)
	r.maze.Remove(e)

	res := r.Tick(nil)
	if res.State != RoundLost {
		t.Errorf("state = %v, want Lost to take priority over Won", res.State)
	}
}

func TestRoundTimeUp(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	m.SetSpawn(1, geom.V(1, 1))
	m.SetMeta(LevelMeta{Countdown: 0.1})
	penEnemy(m, geom.C(11, 13))
	r, err := NewRound(m, Options{Players: 1, Seed: 1})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	r.Start()

	var res TickResult
	for i := 0; i < defaultTickRate && r.State() == RoundRunning; i++ {
		res = r.Tick(nil)
	}
	if res.State != RoundLost {
		t.Fatalf("state after countdown expiry = %v, want Lost", res.State)
	}
	lost, _ := findEvent[LevelLostEvent](res.Events)
	if lost.Reason != LoseTimeUp {
		t.Errorf("lose reason = %v, want TimeUp", lost.Reason)
	}
}

func TestRoundHurryUpEnragesEnemies(t *testing.T) {
	m := NewMaze(DefaultRows, DefaultCols)
	m.SetSpawn(1, geom.V(1, 1))
	m.SetMeta(LevelMeta{Countdown: hurryUpTime + 0.5})
	e := penEnemy(m, geom.C(11, 13))
	r, err := NewRound(m, Options{Players: 1, Seed: 1})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	r.Start()

	base := e.currentSpeed()
	hurried := false
	for i := 0; i < defaultTickRate; i++ {
		res := r.Tick(nil)
		if _, ok := findEvent[HurryUpEvent](res.Events); ok {
			hurried = true
			break
		}
	}
	if !hurried {
		t.Fatal("no HurryUpEvent as the countdown crossed the threshold")
	}
	if e.currentSpeed() != base*2 {
		t.Errorf("enraged speed = %v, want %v", e.currentSpeed(), base*2)
	}
}

func TestRoundLastCoinStartsExtraGame(t *testing.T) {
	r := newTestRound(t)
	e := penEnemy(r.Maze(), geom.C(11, 13))

	// The only coin sits on the player's spawn tile.
	r.maze.Add(NewCoin(geom.V(1, 1)))

	res := r.Tick(nil)
	if got := r.Players()[0].Score(); got != coinScore {
		t.Errorf("score after coin = %d, want %d", got, coinScore)
	}
	if !r.ExtraGame() {
		t.Fatal("collecting the last coin should start the extra game")
	}
	ev, ok := findEvent[ExtraGameEvent](res.Events)
	if !ok || !ev.Active {
		t.Error("no active ExtraGameEvent emitted")
	}
	if !e.Alien() {
		t.Error("enemies should turn into aliens during the extra game")
	}
	if e.contactDamage() != 0 {
		t.Error("aliens must not deal contact damage")
	}

	// The window closes on its own and enemies revert.
	for i := 0; i < int(extraGameTime)*defaultTickRate+5; i++ {
		r.Tick(nil)
	}
	if r.ExtraGame() {
		t.Error("extra game window should have expired")
	}
	if e.Alien() {
		t.Error("enemies should revert when the window closes")
	}
}

func TestRoundAlienDropsLetter(t *testing.T) {
	r := newTestRound(t)
	e := penEnemy(r.Maze(), geom.C(11, 13))
	r.setExtraGame(true)

	r.killEnemy(e, nil)
	if len(r.maze.EntitiesOfKind(KindExtraLetter)) != 1 {
		t.Error("killed alien should drop an EXTRA letter")
	}
}

func TestRoundCollectLettersGrantsLife(t *testing.T) {
	r := newTestRound(t)
	penEnemy(r.Maze(), geom.C(11, 13))
	p := r.Players()[0]
	livesBefore := p.Lives()

	for i := 0; i < 4; i++ {
		p.addLetter(i)
	}
	r.maze.Add(NewExtraLetter(geom.V(1, 1), 4))

	res := r.Tick(nil)
	if p.Lives() != livesBefore+1 {
		t.Errorf("lives = %d, want %d after completing EXTRA", p.Lives(), livesBefore+1)
	}
	if _, ok := findEvent[ExtraLifeEvent](res.Events); !ok {
		t.Error("no ExtraLifeEvent emitted")
	}
	if p.Letters() != [5]bool{} {
		t.Error("letter set should reset after the extra life")
	}
}

func TestRoundDeterminism(t *testing.T) {
	build := func() *Round {
		m := NewMaze(DefaultRows, DefaultCols)
		m.SetSpawn(1, geom.V(1, 1))
		for col := 3; col < 12; col += 2 {
			m.Add(NewBreakableWall(geom.V(6, float64(col))))
		}
		m.Add(NewEnemy(EnemyLizzy, geom.V(11, 13)))
		m.Add(NewEnemy(EnemyGhost, geom.V(11, 1)))
		m.Add(NewCoin(geom.V(3, 3)))
		r, err := NewRound(m, Options{Players: 1, Seed: 42})
		if err != nil {
			t.Fatalf("NewRound() failed: %v", err)
		}
		r.Start()
		return r
	}

	script := func(tick int) Input {
		in := Input{}
		switch {
		case tick < 60:
			in[1] = Intent{Move: geom.DirRight}
		case tick == 60:
			in[1] = Intent{PlaceBomb: true}
		case tick < 150:
			in[1] = Intent{Move: geom.DirDown}
		default:
			in[1] = Intent{Move: geom.DirUpLeft}
		}
		return in
	}

	r1, r2 := build(), build()
	for i := 0; i < 300; i++ {
		r1.Tick(script(i))
		r2.Tick(script(i))
	}

	s1, s2 := r1.Snapshot(), r2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\n%+v\nvs\n%+v", s1, s2)
	}
}
