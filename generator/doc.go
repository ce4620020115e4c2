// Package generator builds puzzle instances for the CLI's -g flag: the
// canonical "snail" spiral goal and a random-walk shuffler that derives a
// solvable or unsolvable initial board from it.
package generator
