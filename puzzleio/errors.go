package puzzleio

import "errors"

// Sentinel errors for puzzle file parsing. board.FromTiles contributes
// the remaining validation errors (duplicate tile, no empty tile, tile
// out of range) once the full tile list has been parsed.
var (
	// ErrMissingSize indicates the file has no non-comment, non-blank
	// line at all, so N could never be read.
	ErrMissingSize = errors.New("puzzleio: missing puzzle size")

	// ErrInvalidNumber indicates a token that should be a base-10
	// integer failed to parse.
	ErrInvalidNumber = errors.New("puzzleio: invalid number")

	// ErrMissingTile indicates fewer than N² tile values were found
	// after the size line.
	ErrMissingTile = errors.New("puzzleio: missing tile value")
)
