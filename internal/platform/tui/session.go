package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boom/internal/boom/levels"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

type sessionState int

const (
	sessionMenu sessionState = iota
	sessionPlaying
)

// SessionModel drives one SSH session: level menu, then a run, then
// back to the menu. Quitting from the menu ends the session; quitting
// from a run returns to the menu.
type SessionModel struct {
	levels   []levels.Level
	store    *storage.Store
	tickRate int

	state sessionState
	menu  MenuModel
	game  Model
}

// NewSessionModel creates the top-level model for an SSH session.
func NewSessionModel(lvls []levels.Level, store *storage.Store, tickRate int) SessionModel {
	return SessionModel{
		levels:   lvls,
		store:    store,
		tickRate: tickRate,
		state:    sessionMenu,
		menu:     NewMenuModel(lvls, store),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active sub-model and handles the
// menu-to-game transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case sessionMenu:
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(MenuModel)

		if m.menu.quitting {
			return m, tea.Quit
		}
		if m.menu.chosen {
			game, err := NewModel(RunOptions{
				Level:    m.levels[m.menu.cursor],
				Players:  m.menu.players,
				TickRate: m.tickRate,
			}, m.store)
			if err != nil {
				// Unbuildable level: stay in the menu.
				m.menu = NewMenuModel(m.levels, m.store)
				return m, nil
			}
			m.game = game
			m.state = sessionPlaying
			return m, m.game.Init()
		}
		return m, cmd

	case sessionPlaying:
		updated, cmd := m.game.Update(msg)
		m.game = updated.(Model)

		if m.game.quitting {
			m.state = sessionMenu
			m.menu = NewMenuModel(m.levels, m.store)
			return m, m.menu.Init()
		}
		return m, cmd
	}

	return m, nil
}

// View renders the active sub-model.
func (m SessionModel) View() string {
	switch m.state {
	case sessionPlaying:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
