package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show journaled runs",
	Long: `Display the most recent journaled runs of a scene, newest first.
Without a scene, or with --interactive, opens the run history browser.

Examples:
  collide history corridor
  collide history corridor --limit 3
  collide history corridor --clear
  collide history -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the journaled runs of the scene")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 || flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Warning: %q is not a registered scene\n", id)
	}

	if flagClear {
		if err := store.ClearRuns(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared the run history of %s.\n", id)
		return
	}

	runs, err := store.RecentRuns(id, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Run history - %s\n", id)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'collide run %s --save' to record one.\n", id)
		return
	}

	fmt.Printf("  %-6s  %-7s  %-6s  %-8s  %s\n", "Run", "Queries", "Failed", "Scene", "Date")
	fmt.Printf("  %-6s  %-7s  %-6s  %-8s  %s\n", "---", "-------", "------", "-----", "----")

	for _, r := range runs {
		fmt.Printf("  %-6s  %-7d  %-6d  %-8s  %s\n",
			fmt.Sprintf("#%d", r.ID), r.Total, r.Failed(), r.ShortDigest(), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	total, passed, err := store.Stats(id)
	if err == nil {
		fmt.Println()
		fmt.Printf("All time: %d/%d queries passed\n", passed, total)
	}
}
