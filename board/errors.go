package board

import "errors"

// Sentinel errors for board construction and validation.
var (
	// ErrInvalidDimensions indicates N is outside the supported range [3, 16].
	ErrInvalidDimensions = errors.New("board: N must satisfy 3 <= N <= 16")

	// ErrMismatchedTileCount indicates the tile slice length is not N².
	ErrMismatchedTileCount = errors.New("board: tile count must equal N*N")

	// ErrNoEmptyTile indicates no zero value was found among the tiles.
	ErrNoEmptyTile = errors.New("board: no empty tile (0) found")

	// ErrDuplicateTile indicates a tile value appears more than once.
	ErrDuplicateTile = errors.New("board: duplicate tile value")

	// ErrInvalidTileValue indicates a tile value is outside [0, N²-1].
	ErrInvalidTileValue = errors.New("board: tile value out of range")

	// ErrInvalidSearchMode indicates an unrecognized search mode name.
	ErrInvalidSearchMode = errors.New("board: unrecognized search mode")
)
