package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/boom/levels"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuResult is the outcome of the level selection menu.
type MenuResult struct {
	Level   levels.Level
	Players int
	Quit    bool
}

// MenuModel is the level and player-count picker shown before a run.
type MenuModel struct {
	levels    []levels.Level
	store     *storage.Store
	keyMapper *KeyMapper

	cursor   int
	players  int
	width    int
	height   int
	quitting bool
	chosen   bool
}

// NewMenuModel creates the level selection model.
func NewMenuModel(lvls []levels.Level, store *storage.Store) MenuModel {
	return MenuModel{
		levels:    lvls,
		store:     store,
		keyMapper: NewKeyMapper(),
		players:   1,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "2" {
			m.players = 3 - m.players // toggle 1 <-> 2
			return m, nil
		}
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.levels) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the level list with high scores.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("BOOM"))
	sb.WriteString("\n\n")

	if len(m.levels) == 0 {
		sb.WriteString(menuDimStyle.Render("no levels found"))
		return sb.String()
	}

	for i, lvl := range m.levels {
		name := lvl.Name
		if name == "" {
			name = lvl.ID
		}
		line := fmt.Sprintf("%-20s", name)
		if m.store != nil {
			if hs, err := m.store.HighScore(lvl.ID); err == nil && hs > 0 {
				line += menuDimStyle.Render(fmt.Sprintf("  best %d", hs))
			}
		}
		if i == m.cursor {
			sb.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			sb.WriteString(menuItemStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(menuDimStyle.Render(fmt.Sprintf(
		"players: %d (press 2 to toggle)  ·  enter play  ·  q quit", m.players)))
	return sb.String()
}

// RunMenu shows the level selector and returns the choice.
func RunMenu(lvls []levels.Level, store *storage.Store) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(lvls, store), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}
	m := final.(MenuModel)
	if !m.chosen {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{Level: m.levels[m.cursor], Players: m.players}, nil
}
