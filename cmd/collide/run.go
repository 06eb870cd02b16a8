package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-collide/internal/platform/tui"
	"github.com/vovakirdan/tui-collide/internal/registry"
	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/storage"
)

var (
	flagConfig string
	flagSave   bool
	flagAll    bool
)

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Evaluate the queries of a scene",
	Long: `Build a scene and evaluate each of its queries in order.

The scene is looked up in this order:
  1. --config path, if given
  2. ~/.collide/scenes/<scene>.yaml
  3. ./scenes/<scene>.yaml
  4. the built-in scene of that name

Queries with an expectation are reported as ok or FAIL. The command exits
with status 1 if any expectation does not hold.

Examples:
  collide run corridor
  collide run corridor --save
  collide run --all
  collide run my-level --config ./my-level.yaml -v`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a scene YAML file")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Journal the results to the run database")
	runCmd.Flags().BoolVar(&flagAll, "all", false, "Evaluate every registered scene")
}

// sceneRun is the outcome of evaluating one scene.
type sceneRun struct {
	doc     *scene.Document
	results []scene.Result
}

func runRun(_ *cobra.Command, args []string) {
	var (
		runs []sceneRun
		err  error
	)
	if flagAll {
		runs, err = evalAll()
	} else {
		var r sceneRun
		r, err = evalOne(args[0])
		runs = []sceneRun{r}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for i, r := range runs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(tui.RenderReport(r.doc, r.results))
		failed += len(scene.Failed(r.results))
	}

	if flagSave {
		saveRuns(runs)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// evalOne loads and evaluates a single scene, honouring --config.
func evalOne(id string) (sceneRun, error) {
	if flagConfig == "" && !registry.Exists(id) {
		return sceneRun{}, fmt.Errorf("unknown scene %q (run 'collide list' to see available scenes)", id)
	}

	doc, err := scene.Load(id, flagConfig)
	if err != nil {
		return sceneRun{}, fmt.Errorf("loading scene: %w", err)
	}

	results, err := scene.Run(doc, newLogger())
	if err != nil {
		return sceneRun{}, fmt.Errorf("running scene: %w", err)
	}
	return sceneRun{doc: doc, results: results}, nil
}

// evalAll evaluates every registered scene concurrently. Results keep the
// registry order.
func evalAll() ([]sceneRun, error) {
	logger := newLogger()
	ids := registry.IDs()
	runs := make([]sceneRun, len(ids))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, id := range ids {
		g.Go(func() error {
			doc, err := registry.Create(id)
			if err != nil {
				return err
			}
			results, err := scene.Run(doc, logger)
			if err != nil {
				return err
			}
			runs[i] = sceneRun{doc: doc, results: results}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// saveRuns journals the results. A database failure is reported but does not
// change the exit status.
func saveRuns(runs []sceneRun) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return
	}
	defer store.Close()

	for _, r := range runs {
		id := r.doc.ID
		runID, err := store.SaveRun(id, scene.Digest(r.doc), storage.FromResults(id, r.results))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save run of %s: %v\n", id, err)
			continue
		}
		fmt.Printf("Saved %s as run #%d\n", id, runID)
	}
}
