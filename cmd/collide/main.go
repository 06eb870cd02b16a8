// collide is a terminal workbench for 2D collision queries: it evaluates
// YAML scenes, journals the results and offers an interactive playground.
//
// Usage:
//
//	collide list                - List available scenes
//	collide run <scene>         - Evaluate the queries of a scene
//	collide history <scene>     - Show journaled runs of a scene
//	collide play <scene>        - Move a probe around a scene
//	collide menu                - Pick scenes interactively
//	collide serve               - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>    - Set input tick rate (default: 30)
//	--db <path>     - Set database path (default: ~/.collide/runs.db)
//	--verbose       - Log every query result
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-collide/internal/core"
	// Import scenes to register them
	_ "github.com/vovakirdan/tui-collide/internal/scenes"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collide",
	Short: "Collide - 2D collision queries in your terminal",
	Long: `Collide evaluates collision queries over small 2D scenes made of
boxes, circles, tile grids and composite colliders.

Available commands:
  list     - Show all available scenes
  run      - Evaluate a scene's queries and report the results
  history  - Show journaled runs
  play     - Interactive playground for a scene
  menu     - Interactive scene picker
  serve    - Start SSH server for remote sessions

Examples:
  collide list
  collide run corridor --save
  collide run corridor --config ./my-corridor.yaml
  collide play arena
  collide serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.collide/runs.db", "Path to run database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every query result")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger; --verbose enables debug output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "collide",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runtimeConfig sizes the playground to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
