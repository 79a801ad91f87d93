package levels

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/geom"
)

const testGrid = `
S|S|S|S|S
S|X| |C|S
S|T|1|T|S
S| |B|Y|S
S|S|S|S|S
`

func TestParseGrid(t *testing.T) {
	m, err := ParseGrid(testGrid, DefaultTileSet())
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}

	if m.Rows() != 5 || m.Cols() != 5 {
		t.Errorf("grid size = %dx%d, want 5x5", m.Rows(), m.Cols())
	}
	if got := len(m.EntitiesOfKind(core.KindSolidWall)); got != 16 {
		t.Errorf("%d solid walls, want 16", got)
	}
	if got := len(m.EntitiesOfKind(core.KindBreakableWall)); got != 1 {
		t.Errorf("%d breakable walls, want 1", got)
	}
	if got := len(m.EntitiesOfKind(core.KindCoin)); got != 1 {
		t.Errorf("%d coins, want 1", got)
	}
	if got := len(m.EntitiesOfKind(core.KindTeleporter)); got != 2 {
		t.Errorf("%d teleporters, want 2", got)
	}

	enemies := m.EntitiesOfKind(core.KindEnemy)
	if len(enemies) != 1 {
		t.Fatalf("%d enemies, want 1", len(enemies))
	}
	if got := enemies[0].(*core.Enemy).Enemy(); got != core.EnemySarge {
		t.Errorf("enemy kind = %v, want Sarge from digit 1", got)
	}

	spawns := m.SpawnPoints()
	if spawns[1] != geom.V(1, 1) {
		t.Errorf("player 1 spawn = %v, want (1,1)", spawns[1])
	}
	if spawns[2] != geom.V(3, 3) {
		t.Errorf("player 2 spawn = %v, want (3,3)", spawns[2])
	}
}

func TestParseGridUnknownTile(t *testing.T) {
	_, err := ParseGrid("S|S\nS|?", DefaultTileSet())
	var unknown *UnknownTileError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownTileError", err)
	}
	if unknown.Row != 1 || unknown.Col != 1 || unknown.Tile != '?' {
		t.Errorf("error position = (%d,%d) %q, want (1,1) '?'", unknown.Row, unknown.Col, unknown.Tile)
	}
}

func TestParseGridRagged(t *testing.T) {
	_, err := ParseGrid("S|S|S\nS|S", DefaultTileSet())
	if !errors.Is(err, ErrRaggedGrid) {
		t.Errorf("err = %v, want ErrRaggedGrid", err)
	}
}

func TestParseGridEmpty(t *testing.T) {
	if _, err := ParseGrid("", DefaultTileSet()); err == nil {
		t.Error("empty grid should fail")
	}
}

func TestParseGridBoss(t *testing.T) {
	grid := `
S|S|S|S|S|S
S|X| | | |S
S| |H| | |S
S| | | | |S
S| | | | |S
S|S|S|S|S|S
`
	m, err := ParseGrid(grid, DefaultTileSet())
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	bosses := m.EntitiesOfKind(core.KindBoss)
	if len(bosses) != 1 {
		t.Fatalf("%d bosses, want 1", len(bosses))
	}
	if got := bosses[0].Pos(); got != geom.V(2, 2) {
		t.Errorf("boss top-left at %v, want (2,2)", got)
	}
	if got := bosses[0].Size(); got != geom.V(3, 3) {
		t.Errorf("boss size = %v, want 3x3", got)
	}
}

func TestParseGridTeleportersChained(t *testing.T) {
	// The walled-in enemy keeps the round from ending mid-walk.
	grid := `
S|S|S|S|S|S|S
S|X|T| |T| |S
S| | | | |T|S
S|S|S|S|S|S|S
S|S|S|3|S|S|S
S|S|S|S|S|S|S
`
	m, err := ParseGrid(grid, DefaultTileSet())
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}

	m.SetMeta(core.LevelMeta{Countdown: 120})
	r, err := core.NewRound(m, core.Options{Players: 1, Seed: 1})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	r.Start()

	// Walk the player onto the first pad; the chain carries it to the
	// second one.
	p := r.Players()[0]
	for i := 0; i < 30 && p.Pos() == geom.V(1, 1); i++ {
		r.Tick(core.Input{1: {Move: geom.DirRight}})
	}
	arrived := false
	for i := 0; i < 120; i++ {
		r.Tick(core.Input{1: {Move: geom.DirRight}})
		if p.Pos() == geom.V(1, 4) {
			arrived = true
			break
		}
	}
	if !arrived {
		t.Errorf("player never teleported to the next pad, pos %v", p.Pos())
	}
}

func TestDefaultTileSetCoversAllEnemies(t *testing.T) {
	ts := DefaultTileSet()
	for i := 0; i < 10; i++ {
		tile, ok := ts[rune('0'+i)]
		if !ok || tile.Kind != TileEnemy {
			t.Errorf("digit %d missing from the default tile set", i)
			continue
		}
		if tile.Enemy != core.EnemyKind(i) {
			t.Errorf("digit %d maps to %v", i, tile.Enemy)
		}
	}
}
