package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nsquare/npuzzle/board"
)

// Read parses the puzzle file format from r: '#' strips a trailing
// comment from each line, blank lines are ignored, the first remaining
// token is N, and the next N² tokens (whitespace-separated, possibly
// spanning many lines) are the tile values. It does not itself validate
// the tiles as a permutation; callers pass the result to board.FromTiles
// for that.
func Read(r io.Reader) (n int, tiles []uint8, err error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	if len(tokens) == 0 {
		return 0, nil, ErrMissingSize
	}

	n, err = strconv.Atoi(tokens[0])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidNumber, tokens[0])
	}

	want := n * n
	rest := tokens[1:]
	if len(rest) < want {
		return 0, nil, ErrMissingTile
	}

	tiles = make([]uint8, want)
	for i := 0; i < want; i++ {
		v, err := strconv.Atoi(rest[i])
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %q", ErrInvalidNumber, rest[i])
		}
		if v < 0 || v > 255 {
			return 0, nil, fmt.Errorf("%w: %q", ErrInvalidNumber, rest[i])
		}
		tiles[i] = uint8(v)
	}

	return n, tiles, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (n int, tiles []uint8, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	return Read(f)
}

// Write renders b in the format Read accepts: N on its own line, then one
// row of N tile values per line.
func Write(w io.Writer, b *board.Board) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, b.N); err != nil {
		return err
	}
	for r := 0; r < b.N; r++ {
		row := make([]string, b.N)
		for c := 0; c < b.N; c++ {
			row[c] = strconv.Itoa(int(b.Tiles[b.Index(r, c)]))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes b to it via Write.
func WriteFile(path string, b *board.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, b)
}
