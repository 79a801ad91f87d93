package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/geom"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKeyToInputPlayers(t *testing.T) {
	km := NewKeyMapper()
	in := core.Input{}

	if km.MapKeyToInput(keyMsg("w"), in) {
		t.Error("movement key reported as quit")
	}
	if in[1].Move != geom.DirUp {
		t.Errorf("player 1 move = %v, want Up", in[1].Move)
	}

	km.MapKeyToInput(keyMsg("up"), in)
	if in[2].Move != geom.DirUp {
		t.Errorf("player 2 move = %v, want Up", in[2].Move)
	}

	// Bomb keys set the flag without clobbering movement.
	km.MapKeyToInput(keyMsg("space"), in)
	if !in[1].PlaceBomb || in[1].Move != geom.DirUp {
		t.Errorf("player 1 intent = %+v", in[1])
	}
	km.MapKeyToInput(keyMsg("enter"), in)
	if !in[2].PlaceBomb {
		t.Errorf("player 2 intent = %+v", in[2])
	}
}

func TestMapKeyToInputQuit(t *testing.T) {
	km := NewKeyMapper()
	if !km.MapKeyToInput(keyMsg("q"), core.Input{}) {
		t.Error("q should quit")
	}
	if !km.MapKeyToInput(keyMsg("ctrl+c"), core.Input{}) {
		t.Error("ctrl+c should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	cases := []struct {
		key  string
		want MenuAction
	}{
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"b", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}
	for _, c := range cases {
		if got := km.MapKeyToMenuAction(keyMsg(c.key)); got != c.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}
