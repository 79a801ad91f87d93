// Package levels loads maze definitions from YAML files and builds
// playable mazes from them. This package depends on boom/core but core
// does not depend on levels.
package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
	"github.com/vovakirdan/tui-boom/internal/geom"
)

// TileKind says what a grid rune places on its cell.
type TileKind int

const (
	TileVoid TileKind = iota
	TileSolidWall
	TileBreakableWall
	TileCoin
	TileTeleporter
	TileBoss   // top-left corner of the 3x3 Head
	TileSpawn1 // player one start
	TileSpawn2 // player two start
	TileEnemy
)

// Tile is one entry of a tile set. Enemy is only read for TileEnemy.
type Tile struct {
	Kind  TileKind
	Enemy core.EnemyKind
}

// TileSet maps grid runes to tiles. Parsers take a tile set explicitly
// so callers can extend or replace the vocabulary without touching any
// global state.
type TileSet map[rune]Tile

// DefaultTileSet returns the standard vocabulary used by the bundled
// levels: walls, pickups, teleporters, the boss, player spawns and the
// ten enemy kinds on digits 0-9.
func DefaultTileSet() TileSet {
	ts := TileSet{
		' ': {Kind: TileVoid},
		'S': {Kind: TileSolidWall},
		'B': {Kind: TileBreakableWall},
		'C': {Kind: TileCoin},
		'T': {Kind: TileTeleporter},
		'H': {Kind: TileBoss},
		'X': {Kind: TileSpawn1},
		'Y': {Kind: TileSpawn2},
	}
	for i := 0; i < 10; i++ {
		ts[rune('0'+i)] = Tile{Kind: TileEnemy, Enemy: core.EnemyKind(i)}
	}
	return ts
}

// UnknownTileError reports a grid rune missing from the tile set,
// with its cell position.
type UnknownTileError struct {
	Row, Col int
	Tile     rune
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("levels: unknown tile %q at (%d,%d)", e.Tile, e.Row, e.Col)
}

// ErrRaggedGrid is returned when grid rows have differing cell counts.
var ErrRaggedGrid = fmt.Errorf("levels: grid rows have differing lengths")

// ParseGrid builds a maze from grid text. Rows are separated by
// newlines and cells by '|'. Every row must have the same number of
// cells. Teleporters are chained in reading order, the last one
// looping back to the first, so a mover always has a next exit to try.
func ParseGrid(text string, tiles TileSet) (*core.Maze, error) {
	text = strings.Trim(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("levels: empty grid")
	}

	grid := make([][]rune, len(lines))
	cols := -1
	for i, line := range lines {
		cells := strings.Split(line, "|")
		if cols == -1 {
			cols = len(cells)
		} else if len(cells) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedGrid, i, len(cells), cols)
		}
		grid[i] = make([]rune, cols)
		for j, cell := range cells {
			r := ' '
			for _, c := range cell {
				if c != ' ' {
					r = c
					break
				}
			}
			grid[i][j] = r
		}
	}

	m := core.NewMaze(len(grid), cols)
	var teleporters []*core.Teleporter

	for i, row := range grid {
		for j, r := range row {
			tile, ok := tiles[r]
			if !ok {
				return nil, &UnknownTileError{Row: i, Col: j, Tile: r}
			}
			pos := geom.V(float64(i), float64(j))
			switch tile.Kind {
			case TileVoid:
			case TileSolidWall:
				m.Add(core.NewSolidWall(pos))
			case TileBreakableWall:
				m.Add(core.NewBreakableWall(pos))
			case TileCoin:
				m.Add(core.NewCoin(pos))
			case TileTeleporter:
				t := core.NewTeleporter(pos)
				m.Add(t)
				teleporters = append(teleporters, t)
			case TileBoss:
				m.Add(core.NewBoss(pos))
			case TileSpawn1:
				m.SetSpawn(1, pos)
			case TileSpawn2:
				m.SetSpawn(2, pos)
			case TileEnemy:
				m.Add(core.NewEnemy(tile.Enemy, pos))
			}
		}
	}

	for i, t := range teleporters {
		t.Pair(teleporters[(i+1)%len(teleporters)])
	}
	return m, nil
}
