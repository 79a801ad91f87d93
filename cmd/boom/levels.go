package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boom/internal/boom/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the embedded levels plus any found in the level directory.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	all, err := levels.NewLoader(cfg.Levels.Dir).LoadAll()
	if err != nil {
		fmt.Printf("Error loading levels: %v\n", err)
		return
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Name", "Source")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "------")

	for _, l := range all {
		source := "embedded"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, l.ID, l.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'boom play <id>' to play a level.")
}
