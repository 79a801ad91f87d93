package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/geom"
)

func testSnapshot() core.Snapshot {
	return core.Snapshot{
		State:    core.RoundRunning,
		Rows:     3,
		Cols:     4,
		TimeLeft: 99,
		Entities: []core.EntitySnapshot{
			{Kind: core.KindSolidWall, Pos: geom.V(0, 0), Size: geom.V(1, 1)},
			{Kind: core.KindCoin, Pos: geom.V(1, 1), Size: geom.V(1, 1)},
			{Kind: core.KindPlayer, Pos: geom.V(1, 2), Size: geom.V(1, 1), Player: 1},
			{Kind: core.KindEnemy, Pos: geom.V(2, 3), Size: geom.V(1, 1), Enemy: core.EnemyGhost},
		},
		Players: []core.PlayerSnapshot{
			{Player: 1, Alive: true, Lives: 3, Health: 16, MaxHP: 16, Bombs: 5},
		},
	}
}

func TestRenderBoardShape(t *testing.T) {
	s := testSnapshot()
	out := RenderBoard(s)

	lines := strings.Split(out, "\n")
	if len(lines) != s.Rows {
		t.Fatalf("board has %d lines, want %d", len(lines), s.Rows)
	}
	if !strings.Contains(lines[0], "██") {
		t.Error("wall glyph missing from the first row")
	}
	if !strings.Contains(lines[1], "1") {
		t.Error("player glyph missing")
	}
	if !strings.Contains(lines[2], "g") {
		t.Error("ghost glyph missing")
	}
}

func TestRenderBoardBossFootprint(t *testing.T) {
	s := core.Snapshot{
		Rows: 5,
		Cols: 5,
		Entities: []core.EntitySnapshot{
			{Kind: core.KindBoss, Pos: geom.V(1, 1), Size: geom.V(3, 3)},
		},
	}
	out := RenderBoard(s)
	lines := strings.Split(out, "\n")

	for row := 1; row <= 3; row++ {
		if strings.Count(lines[row], "▓") != 6 {
			t.Errorf("row %d has %d boss cells, want a 3-tile span", row, strings.Count(lines[row], "▓"))
		}
	}
	if strings.Contains(lines[0], "▓") {
		t.Error("boss bled above its footprint")
	}
}

func TestRenderBoardAlienGlyph(t *testing.T) {
	s := core.Snapshot{
		Rows: 2,
		Cols: 2,
		Entities: []core.EntitySnapshot{
			{Kind: core.KindEnemy, Pos: geom.V(0, 0), Size: geom.V(1, 1), Enemy: core.EnemyGhost, Alien: true},
		},
	}
	if out := RenderBoard(s); !strings.Contains(out, "a") {
		t.Error("alien enemies should render as 'a'")
	}
}

func TestRenderHUD(t *testing.T) {
	s := testSnapshot()
	out := RenderHUD(s)

	if !strings.Contains(out, "P1") {
		t.Error("HUD missing the player line")
	}
	if !strings.Contains(out, "time  99") {
		t.Errorf("HUD missing the countdown: %q", out)
	}

	s.HurryUp = true
	if !strings.Contains(RenderHUD(s), "HURRY UP!") {
		t.Error("HUD missing the hurry-up warning")
	}

	s.ExtraGame = true
	if !strings.Contains(RenderHUD(s), "EXTRA GAME") {
		t.Error("extra game should trump the hurry-up line")
	}
}

func TestRenderBanner(t *testing.T) {
	s := testSnapshot()
	if got := RenderBanner(s); got != "" {
		t.Errorf("banner while running = %q, want empty", got)
	}

	s.State = core.RoundWon
	if !strings.Contains(RenderBanner(s), "LEVEL CLEAR") {
		t.Error("missing win banner")
	}
	s.State = core.RoundLost
	if !strings.Contains(RenderBanner(s), "GAME OVER") {
		t.Error("missing loss banner")
	}
}
