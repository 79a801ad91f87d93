package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/geom"
)

// KeyMapper translates Bubble Tea key messages to per-player intents.
// This centralizes key bindings and makes them testable.
//
// Player one moves on WASD and drops bombs with space; player two
// moves on the arrow keys and drops bombs with enter.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToInput folds a key message into an input frame. Returns true
// when the key is a quit request.
func (km *KeyMapper) MapKeyToInput(msg tea.KeyMsg, in core.Input) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return true

	case "w":
		setMove(in, 1, geom.DirUp)
	case "s":
		setMove(in, 1, geom.DirDown)
	case "a":
		setMove(in, 1, geom.DirLeft)
	case "d":
		setMove(in, 1, geom.DirRight)
	case " ":
		setBomb(in, 1)

	case "up":
		setMove(in, 2, geom.DirUp)
	case "down":
		setMove(in, 2, geom.DirDown)
	case "left":
		setMove(in, 2, geom.DirLeft)
	case "right":
		setMove(in, 2, geom.DirRight)
	case "enter":
		setBomb(in, 2)
	}

	return false
}

func setMove(in core.Input, player int, d geom.Dir) {
	intent := in[player]
	intent.Move = d
	in[player] = intent
}

func setBomb(in core.Input, player int) {
	intent := in[player]
	intent.PlaceBomb = true
	in[player] = intent
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
