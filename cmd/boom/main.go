// boom is a terminal maze-bombing game in the spirit of the classic
// Mac shareware it grew out of.
//
// Usage:
//
//	boom levels              - List available levels
//	boom play [level]        - Play a level (menu when omitted)
//	boom scores <level>      - Show best runs for a level
//	boom serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible rounds
//	--db <path>      - Set database path (default: ~/.boom/boom.db)
//	--levels <dir>   - Extra level directory
//	--config <path>  - Path to a config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevelDir string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boom",
	Short: "boom - bomb your way through terminal mazes",
	Long: `boom is a terminal game: run mazes, place bombs, blast walls
and monsters, grab bonuses and clear every level.

Available commands:
  levels   - Show all available levels
  play     - Play a level (interactive menu when omitted)
  scores   - View best runs for a level
  serve    - Start SSH server for remote play

Examples:
  boom levels
  boom play level01
  boom play --players 2
  boom serve --ssh :2323
  boom scores level01`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels", "", "Extra level directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: file settings with
// command-line flags layered on top.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Engine.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevelDir != "" {
		cfg.Levels.Dir = flagLevelDir
	}
	return cfg
}
