package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long: `Shows every registered scene with its size and, when the run
database is available, how its journaled runs went.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	// Stats are optional; the list works without a database.
	var stats map[string]*storage.SceneStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.AllSceneStats()
		store.Close()
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-8s  %-7s  %-12s  %s\n", maxIDLen, "ID", "Entities", "Queries", "Runs", "Title")
	fmt.Printf("  %-*s  %-8s  %-7s  %-12s  %s\n", maxIDLen, "--", "--------", "-------", "----", "-----")

	for _, s := range scenes {
		runs := "-"
		if st, ok := stats[s.ID]; ok {
			runs = fmt.Sprintf("%d (%d/%d)", st.Runs, st.Passed, st.Queries)
		}
		fmt.Printf("  %-*s  %-8d  %-7d  %-12s  %s\n", maxIDLen, s.ID, s.Entities, s.Queries, runs, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'collide run <id>' to evaluate a scene or 'collide play <id>' to explore it.")
}
