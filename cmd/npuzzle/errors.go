package main

import "errors"

// ErrConflictingOptions indicates two mutually exclusive options were
// both supplied (a file path alongside -g, or both -s and -u).
var ErrConflictingOptions = errors.New("npuzzle: conflicting options")

// ErrMissingArgument indicates neither a file path nor -g N was supplied.
var ErrMissingArgument = errors.New("npuzzle: missing puzzle source (file path or -g N)")
