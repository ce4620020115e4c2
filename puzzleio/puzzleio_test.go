package puzzleio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/puzzleio"
)

func TestRead_CommentsAndBlankLinesIgnored(t *testing.T) {
	src := strings.NewReader(`# a 3x3 puzzle
3

1 2 3 # first row
8 0 4
7 6 5
`)
	n, tiles, err := puzzleio.Read(src)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5}, tiles)
}

func TestRead_TilesSpanArbitraryLines(t *testing.T) {
	src := strings.NewReader("3\n1 2\n3 8 0\n4 7 6 5\n")
	n, tiles, err := puzzleio.Read(src)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5}, tiles)
}

func TestRead_MissingSize(t *testing.T) {
	_, _, err := puzzleio.Read(strings.NewReader("# only a comment\n\n"))
	require.ErrorIs(t, err, puzzleio.ErrMissingSize)
}

func TestRead_InvalidNumber(t *testing.T) {
	_, _, err := puzzleio.Read(strings.NewReader("three\n1 2 3 4 5 6 7 8 0\n"))
	require.ErrorIs(t, err, puzzleio.ErrInvalidNumber)
}

func TestRead_MissingTile(t *testing.T) {
	_, _, err := puzzleio.Read(strings.NewReader("3\n1 2 3 8 0 4\n"))
	require.ErrorIs(t, err, puzzleio.ErrMissingTile)
}

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	b, err := board.FromTiles(3, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, puzzleio.Write(&buf, b))

	n, tiles, err := puzzleio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, b.Tiles, tiles)
}
