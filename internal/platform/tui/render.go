package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
)

// Each maze tile renders as two terminal columns, which roughly
// squares the aspect ratio of common monospace fonts.
const tileWidth = 2

var (
	styleDefault   = lipgloss.NewStyle()
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleBreakable = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleCoin      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLetter    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleBonus     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleTeleport  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleBomb      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleBombHot   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBlast     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleShot      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	stylePlayer1   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	stylePlayer2   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleShielded  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleEnemy     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleAlien     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleBoss      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDying     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	styleHUD    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleHurry  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleExtra  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	styleBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
)

// enemyGlyphs maps each enemy kind to its board rune.
var enemyGlyphs = [...]rune{
	core.EnemySoldier:  'n',
	core.EnemySarge:    'N',
	core.EnemyLizzy:    'z',
	core.EnemyTaur:     'M',
	core.EnemyGunner:   'G',
	core.EnemyThing:    't',
	core.EnemyGhost:    'g',
	core.EnemySmoulder: 'm',
	core.EnemySkully:   'k',
	core.EnemyGiggler:  'j',
}

// extraLetters are the five collectible letters in display order.
var extraLetters = [5]rune{'E', 'X', 'T', 'R', 'A'}

// board is a styled cell buffer, one entry per terminal column.
type board struct {
	rows, cols int
	runes      [][]rune
	styles     [][]*lipgloss.Style
}

func newBoard(rows, cols int) *board {
	b := &board{rows: rows, cols: cols * tileWidth}
	b.runes = make([][]rune, b.rows)
	b.styles = make([][]*lipgloss.Style, b.rows)
	for i := range b.runes {
		b.runes[i] = make([]rune, b.cols)
		b.styles[i] = make([]*lipgloss.Style, b.cols)
		for j := range b.runes[i] {
			b.runes[i][j] = ' '
			b.styles[i][j] = &styleDefault
		}
	}
	return b
}

// setTile paints one maze tile with a glyph and style.
func (b *board) setTile(row, col int, glyph [tileWidth]rune, style *lipgloss.Style) {
	if row < 0 || row >= b.rows || col < 0 || col*tileWidth >= b.cols {
		return
	}
	for i := 0; i < tileWidth; i++ {
		b.runes[row][col*tileWidth+i] = glyph[i]
		b.styles[row][col*tileWidth+i] = style
	}
}

// String renders the buffer, grouping runs with the same style to keep
// ANSI escape sequences to a minimum.
func (b *board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * b.cols * 2)
	for i := 0; i < b.rows; i++ {
		if i > 0 {
			sb.WriteRune('\n')
		}
		j := 0
		for j < b.cols {
			style := b.styles[i][j]
			var run strings.Builder
			for j < b.cols && b.styles[i][j] == style {
				run.WriteRune(b.runes[i][j])
				j++
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderBoard draws the maze from a snapshot. Entities are drawn in
// spawn order, so transient effects land on top of terrain.
func RenderBoard(s core.Snapshot) string {
	b := newBoard(s.Rows, s.Cols)
	for _, e := range s.Entities {
		drawEntity(b, e)
	}
	return b.String()
}

func drawEntity(b *board, e core.EntitySnapshot) {
	row := int(e.Pos.Row + 0.5)
	col := int(e.Pos.Col + 0.5)

	switch e.Kind {
	case core.KindSolidWall:
		b.setTile(row, col, [tileWidth]rune{'█', '█'}, &styleWall)
	case core.KindBreakableWall:
		b.setTile(row, col, [tileWidth]rune{'▒', '▒'}, &styleBreakable)
	case core.KindCoin:
		b.setTile(row, col, [tileWidth]rune{'o', ' '}, &styleCoin)
	case core.KindExtraLetter:
		b.setTile(row, col, [tileWidth]rune{extraLetters[e.Letter%5], ' '}, &styleLetter)
	case core.KindBonus:
		b.setTile(row, col, [tileWidth]rune{'?', ' '}, &styleBonus)
	case core.KindTeleporter:
		b.setTile(row, col, [tileWidth]rune{'◊', ' '}, &styleTeleport)
	case core.KindBomb:
		style := &styleBomb
		if e.FuseFrac > 0.75 {
			style = &styleBombHot
		}
		b.setTile(row, col, [tileWidth]rune{'●', ' '}, style)
	case core.KindExplosion:
		b.setTile(row, col, [tileWidth]rune{'*', '*'}, &styleBlast)
	case core.KindProjectile:
		b.setTile(row, col, [tileWidth]rune{'·', ' '}, &styleShot)
	case core.KindPlayer:
		style := &stylePlayer1
		if e.Player == 2 {
			style = &stylePlayer2
		}
		if e.Shield {
			style = &styleShielded
		}
		if e.Dying {
			style = &styleDying
		}
		b.setTile(row, col, [tileWidth]rune{rune('0' + e.Player), ' '}, style)
	case core.KindEnemy:
		glyph := '?'
		if int(e.Enemy) < len(enemyGlyphs) {
			glyph = enemyGlyphs[e.Enemy]
		}
		style := &styleEnemy
		if e.Alien {
			glyph = 'a'
			style = &styleAlien
		}
		if e.Dying {
			style = &styleDying
		}
		b.setTile(row, col, [tileWidth]rune{glyph, ' '}, style)
	case core.KindBoss:
		style := &styleBoss
		if e.Dying {
			style = &styleDying
		}
		for dr := 0; dr < int(e.Size.Row); dr++ {
			for dc := 0; dc < int(e.Size.Col); dc++ {
				b.setTile(row+dr, col+dc, [tileWidth]rune{'▓', '▓'}, style)
			}
		}
	}
}

// RenderHUD draws the status lines under the board: per-player health,
// lives, score and letters, plus the countdown.
func RenderHUD(s core.Snapshot) string {
	var lines []string

	for _, p := range s.Players {
		letters := make([]rune, 0, 5)
		for i, have := range p.Letters {
			if have {
				letters = append(letters, extraLetters[i])
			} else {
				letters = append(letters, '·')
			}
		}
		line := fmt.Sprintf("P%d  ♥%2d/%d  lives %d  bombs %d  score %6d  [%s]",
			p.Player, p.Health, p.MaxHP, p.Lives, p.Bombs, p.Score, string(letters))
		lines = append(lines, styleHUD.Render(line))
	}

	timeLine := fmt.Sprintf("time %3.0f", s.TimeLeft)
	switch {
	case s.ExtraGame:
		timeLine = styleExtra.Render(timeLine + "  EXTRA GAME")
	case s.HurryUp:
		timeLine = styleHurry.Render(timeLine + "  HURRY UP!")
	default:
		timeLine = styleHUD.Render(timeLine)
	}
	lines = append(lines, timeLine)

	return strings.Join(lines, "\n")
}

// RenderBanner returns the outcome overlay line for finished rounds,
// or an empty string while running.
func RenderBanner(s core.Snapshot) string {
	switch s.State {
	case core.RoundWon:
		return styleBanner.Render("LEVEL CLEAR")
	case core.RoundLost:
		return styleBanner.Render("GAME OVER")
	default:
		return ""
	}
}
