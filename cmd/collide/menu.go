package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
	"github.com/vovakirdan/tui-collide/internal/playground"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a scene in the
playground, Tab to browse the run history. Leaving the playground
returns to the menu.

Examples:
  collide menu
  collide menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			break
		}

		doc, err := registry.Create(menuResult.SceneID)
		if err != nil {
			logger.Error("cannot load scene", "scene", menuResult.SceneID, "error", err)
			continue
		}
		pg, err := playground.New(doc)
		if err != nil {
			logger.Error("cannot open scene", "scene", menuResult.SceneID, "error", err)
			continue
		}

		if err := tui.Run(pg, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playground: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
