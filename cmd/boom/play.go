package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boom/internal/boom/levels"
	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/platform/tui"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

var flagPlayers int

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or open the level menu
when no level is given.

Controls:
  WASD       - Player one moves
  Space      - Player one drops a bomb
  Arrows     - Player two moves
  Enter      - Player two drops a bomb
  Q/Ctrl+C   - Quit

Examples:
  boom play
  boom play level02
  boom play level01 --players 2
  boom play level03 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players (1 or 2, 0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagPlayers > 0 {
		cfg.Engine.Players = flagPlayers
	}

	loader := levels.NewLoader(cfg.Levels.Dir)

	// Open run storage
	store, err := storage.Open(config.DataPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var level levels.Level
	players := cfg.Engine.Players

	if len(args) == 1 {
		level, err = loader.LoadByID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'boom levels' to see available levels.")
			os.Exit(1)
		}
	} else {
		all, loadErr := loader.LoadAll()
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", loadErr)
			os.Exit(1)
		}
		choice, menuErr := tui.RunMenu(all, store)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if choice.Quit {
			return
		}
		level = choice.Level
		players = choice.Players
	}

	// The board needs roughly 2 columns per tile plus a few HUD lines.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 34 || h < 20 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small, the board may clip\n", w, h)
		}
	}

	runErr := tui.Run(tui.RunOptions{
		Level:    level,
		Players:  players,
		TickRate: cfg.Engine.TickRate,
		Seed:     cfg.Engine.Seed,
	}, store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
