package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
	"github.com/vovakirdan/tui-collide/internal/playground"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Explore a scene in the playground",
	Long: `Open a scene in the interactive playground. The probe entity moves
one cell per key press and refuses moves that would overlap anything
collidable.

Controls:
  Arrows/WASD   - Move the probe
  Tab/Shift+Tab - Cycle the target entity
  C             - Toggle the target's collidable flag
  Enter         - Record a query at the probe position
  R             - Reset the scene
  Ctrl+S        - Save a screenshot
  ?             - Toggle help
  Esc/Q         - Quit

Examples:
  collide play corridor
  collide play my-level --config ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a scene YAML file")
}

func runPlay(_ *cobra.Command, args []string) {
	id := args[0]

	if flagConfig == "" && !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'collide list' to see available scenes.")
		os.Exit(1)
	}

	doc, err := scene.Load(id, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	pg, err := playground.New(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage; recorded queries are shown but not saved
		store = nil
	}

	runErr := tui.Run(pg, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running playground: %v\n", runErr)
		os.Exit(1)
	}
}
