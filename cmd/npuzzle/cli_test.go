package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	return flag.NewFlagSet("npuzzle-test", flag.ContinueOnError)
}

func TestParseFlags_FilePath(t *testing.T) {
	cfg, err := parseFlags(newFS(), []string{"puzzle.txt"})
	require.NoError(t, err)
	require.Equal(t, "puzzle.txt", cfg.filePath)
	require.False(t, cfg.generate)
	require.Equal(t, "manhattan", cfg.heuristicName)
	require.Equal(t, "astar", cfg.searchName)
	require.Equal(t, 10000, cfg.iterations)
}

func TestParseFlags_Generate(t *testing.T) {
	cfg, err := parseFlags(newFS(), []string{"-g", "4"})
	require.NoError(t, err)
	require.True(t, cfg.generate)
	require.Equal(t, 4, cfg.genN)
	require.Empty(t, cfg.filePath)
}

func TestParseFlags_MissingArgument(t *testing.T) {
	_, err := parseFlags(newFS(), []string{})
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestParseFlags_FileAndGenerateConflict(t *testing.T) {
	_, err := parseFlags(newFS(), []string{"-g", "4", "puzzle.txt"})
	require.ErrorIs(t, err, ErrConflictingOptions)
}

func TestParseFlags_SolvableAndUnsolvableConflict(t *testing.T) {
	_, err := parseFlags(newFS(), []string{"-g", "4", "-s", "-u"})
	require.ErrorIs(t, err, ErrConflictingOptions)
}

func TestParseFlags_HeuristicAndSearchOverride(t *testing.T) {
	cfg, err := parseFlags(newFS(), []string{"--heuristic", "linear", "--search", "greedy", "-t", "8", "puzzle.txt"})
	require.NoError(t, err)
	require.Equal(t, "linear", cfg.heuristicName)
	require.Equal(t, "greedy", cfg.searchName)
	require.Equal(t, 8, cfg.threads)

	h, err := cfg.heuristic()
	require.NoError(t, err)
	require.NotNil(t, h)

	m, err := cfg.mode()
	require.NoError(t, err)
	require.Equal(t, "greedy", m.String())
}
