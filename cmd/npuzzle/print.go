package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nsquare/npuzzle/board"
)

// colorEnabled mirrors hiveGo's cli package: width/color-sensitive output
// only kicks in on an actual terminal, falling back to plain text for
// pipes, redirects and NO_COLOR.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func printUnsolvable() {
	line := "This puzzle is unsolvable."
	if colorEnabled() {
		line = errorStyle.Render(line)
	}
	fmt.Println(line)
}

func printError(err error) {
	line := fmt.Sprintf("Error: %v", err)
	if colorEnabled() {
		line = errorStyle.Render(line)
	}
	fmt.Fprintln(os.Stderr, line)
}

func printSolutionBanner(threads int, mode board.Mode, length int) {
	line := fmt.Sprintf("Solved in %d moves (search=%s, threads=%d)", length, mode, threads)
	if colorEnabled() {
		line = bannerStyle.Render(line)
	}
	fmt.Println(line)
}

// printBoard renders a Board as an N-row grid, right-justified for the
// widest tile value, with 0 shown as a blank cell.
func printBoard(b *board.Board) {
	width := len(fmt.Sprintf("%d", b.N*b.N-1))
	var sb strings.Builder
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			v := b.Tiles[b.Index(r, c)]
			if v == 0 {
				sb.WriteString(strings.Repeat(" ", width))
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
			if c < b.N-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
