package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/heuristic"
	"github.com/nsquare/npuzzle/solve"
)

// config holds the fully parsed and validated CLI configuration.
type config struct {
	filePath string
	generate bool
	genN     int

	heuristicName string
	searchName    string
	threads       int

	forceSolvable   bool
	forceUnsolvable bool
	iterations      int
}

// parseFlags parses args against fs (a caller-supplied FlagSet so tests
// don't touch the process-global flag.CommandLine) and validates the
// combination, returning ErrMissingArgument, ErrConflictingOptions or
// solve.ErrInvalidThreads for an invalid one.
func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := &config{}

	fs.IntVar(&cfg.genN, "g", 0, "generate a random N x N puzzle instead of reading a file")
	fs.StringVar(&cfg.heuristicName, "heuristic", "manhattan", "heuristic: manhattan|misplaced|linear")
	fs.StringVar(&cfg.searchName, "search", "astar", "search mode: astar|ucs|greedy")
	fs.IntVar(&cfg.threads, "t", runtime.NumCPU(), "number of search threads")
	fs.IntVar(&cfg.threads, "threads", runtime.NumCPU(), "number of search threads (alias of -t)")
	fs.BoolVar(&cfg.forceSolvable, "s", false, "force generation of a solvable puzzle")
	fs.BoolVar(&cfg.forceUnsolvable, "u", false, "force generation of an unsolvable puzzle")
	fs.IntVar(&cfg.iterations, "i", 10000, "shuffle iterations for -g generation")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.generate = cfg.genN > 0
	cfg.filePath = fs.Arg(0)

	if cfg.generate && cfg.filePath != "" {
		return nil, fmt.Errorf("%w: a file path and -g are mutually exclusive", ErrConflictingOptions)
	}
	if !cfg.generate && cfg.filePath == "" {
		return nil, ErrMissingArgument
	}
	if cfg.forceSolvable && cfg.forceUnsolvable {
		return nil, fmt.Errorf("%w: -s and -u are mutually exclusive", ErrConflictingOptions)
	}
	if cfg.threads < 1 {
		return nil, solve.ErrInvalidThreads
	}

	return cfg, nil
}

func (c *config) heuristic() (heuristic.Heuristic, error) {
	return heuristic.Parse(c.heuristicName)
}

func (c *config) mode() (board.Mode, error) {
	return board.ParseMode(c.searchName)
}
