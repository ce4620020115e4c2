// Package puzzleio reads and writes the flat-text puzzle file format: a
// `#`-comment, blank-line-tolerant text format whose first non-comment
// token is the side length N and whose remaining tokens are the N² tile
// values in row-major order, split across any number of lines.
package puzzleio
