// Command npuzzle is the CLI front end for the N-puzzle solver: it reads
// or generates a puzzle, runs the solvability pre-flight and the search,
// and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/generator"
	"github.com/nsquare/npuzzle/puzzleio"
	"github.com/nsquare/npuzzle/solve"
)

// progressThreshold is the shuffle iteration count above which the
// generator's progress gets a visible bar; below it the shuffle is fast
// enough that a bar would just flicker.
const progressThreshold = 2000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("npuzzle", flag.ContinueOnError)
	klog.InitFlags(fs)
	defer klog.Flush()

	cfg, err := parseFlags(fs, args)
	if err != nil {
		printError(err)
		return 1
	}

	initial, goal, err := loadPuzzle(cfg)
	if err != nil {
		printError(err)
		return 1
	}

	h, err := cfg.heuristic()
	if err != nil {
		printError(err)
		return 1
	}
	mode, err := cfg.mode()
	if err != nil {
		printError(err)
		return 1
	}

	klog.V(1).Infof("solving: n=%d heuristic=%s search=%s threads=%d", initial.N, cfg.heuristicName, mode, cfg.threads)

	sol, err := solve.Solve(context.Background(), initial, goal, h, mode, cfg.threads)
	if err != nil {
		printError(err)
		return 1
	}
	if sol == nil {
		klog.V(1).Info("solvability pre-flight rejected the puzzle")
		printUnsolvable()
		return 0
	}

	klog.V(1).Infof("solved: length=%d states_selected=%d max_states=%d elapsed=%s",
		sol.Stats.SolutionLength, sol.Stats.StatesSelected, sol.Stats.MaxStatesInMemory, sol.Stats.Elapsed)

	printSolutionBanner(cfg.threads, mode, sol.Stats.SolutionLength)
	if len(sol.Path) > 0 {
		printBoard(sol.Path[len(sol.Path)-1])
	}
	return 0
}

// loadPuzzle produces the initial and goal boards for cfg, either by
// reading a file or by generating one against the canonical snail goal.
func loadPuzzle(cfg *config) (initial, goal *board.Board, err error) {
	if cfg.generate {
		goal = generator.Snail(cfg.genN)

		wantSolvable := !cfg.forceUnsolvable

		var bar *progressbar.ProgressBar
		if cfg.iterations > progressThreshold {
			bar = progressbar.Default(int64(cfg.iterations), "shuffling")
		}
		onStep := func(completed, total int) {
			if bar != nil {
				_ = bar.Set(completed)
			}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		initial = generator.Shuffle(goal, cfg.iterations, rng, onStep)
		initial = generator.ForceParity(initial, goal, wantSolvable)
		return initial, goal, nil
	}

	n, tiles, err := puzzleio.ReadFile(cfg.filePath)
	if err != nil {
		return nil, nil, pkgerrors.Wrapf(err, "reading %s", cfg.filePath)
	}
	initial, err = board.FromTiles(n, tiles)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.filePath, err)
	}
	goal = generator.Snail(n)
	return initial, goal, nil
}
