package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/boom/levels"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

// RunOptions configures one interactive play session.
type RunOptions struct {
	Level    levels.Level
	Tiles    levels.TileSet
	Players  int
	TickRate int
	Seed     int64
}

// playKeys are the bindings shown in the help footer.
type playKeys struct {
	MoveP1 key.Binding
	BombP1 key.Binding
	MoveP2 key.Binding
	BombP2 key.Binding
	Quit   key.Binding
}

func (k playKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveP1, k.BombP1, k.MoveP2, k.BombP2, k.Quit}
}

func (k playKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.MoveP1, k.BombP1}, {k.MoveP2, k.BombP2}, {k.Quit}}
}

func defaultPlayKeys(players int) playKeys {
	k := playKeys{
		MoveP1: key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd", "move")),
		BombP1: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "bomb")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if players > 1 {
		k.MoveP2 = key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "p2 move"))
		k.BombP2 = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "p2 bomb"))
	}
	return k
}

// Model is the Bubble Tea model for one level run.
type Model struct {
	round *core.Round
	opts  RunOptions
	store *storage.Store

	keyMapper *KeyMapper
	keys      playKeys
	help      help.Model
	frame     core.Input

	started  time.Time
	quitting bool
	saved    bool
}

// NewModel builds the model and its round. A time-based seed is used
// when none is configured.
func NewModel(opts RunOptions, store *storage.Store) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}
	tiles := opts.Tiles
	if tiles == nil {
		tiles = levels.DefaultTileSet()
	}

	maze, err := opts.Level.Build(tiles)
	if err != nil {
		return Model{}, err
	}
	round, err := core.NewRound(maze, core.Options{
		Players:  opts.Players,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		round:     round,
		opts:      opts,
		store:     store,
		keyMapper: NewKeyMapper(),
		keys:      defaultPlayKeys(opts.Players),
		help:      help.New(),
		frame:     make(core.Input),
		started:   time.Now(),
	}, nil
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.round.Start()
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToInput(msg, m.frame) {
			m.round.Terminate()
			m.saveRun("quit")
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step and drains the input frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.round.Tick(m.frame)
	for k := range m.frame {
		delete(m.frame, k)
	}

	switch result.State {
	case core.RoundWon:
		m.saveRun("won")
	case core.RoundLost:
		m.saveRun(loseReasonString(result.Events))
	case core.RoundTerminated:
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// loseReasonString extracts the loss reason from the tick events. An
// empty event list means the loss was reported on an earlier tick.
func loseReasonString(events []core.Event) string {
	for _, ev := range events {
		if lost, ok := ev.(core.LevelLostEvent); ok {
			if lost.Reason == core.LoseTimeUp {
				return "time-up"
			}
			return "all-dead"
		}
	}
	return "all-dead"
}

// saveRun persists the run outcome once.
func (m *Model) saveRun(reason string) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	snap := m.round.Snapshot()
	total := 0
	for _, p := range snap.Players {
		total += p.Score
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveRun(storage.RunRecord{
		LevelID:  m.opts.Level.ID,
		Players:  m.opts.Players,
		Score:    total,
		Won:      snap.State == core.RoundWon,
		Reason:   reason,
		Duration: int(time.Since(m.started).Seconds()),
		Ticks:    snap.Tick,
		Seed:     m.opts.Seed,
	})
}

// View renders the board, HUD and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.round.Snapshot()

	var sb strings.Builder
	title := m.opts.Level.Name
	if title == "" {
		title = m.opts.Level.ID
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	sb.WriteString("\n")
	sb.WriteString(RenderBoard(snap))
	sb.WriteString("\n")
	sb.WriteString(RenderHUD(snap))
	if banner := RenderBanner(snap); banner != "" {
		sb.WriteString("\n")
		sb.WriteString(banner)
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts a Bubble Tea program for one level run and blocks until
// it finishes.
func Run(opts RunOptions, store *storage.Store) error {
	model, err := NewModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
