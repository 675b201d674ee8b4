package solver

import "errors"

// ErrBadShape is returned by New when any grid dimension is non-positive.
var ErrBadShape = errors.New("solver: grid shape must have positive dimensions")

// ErrUnsolvable is returned by Solve when a cell's option set is empty
// after the grid collapses — a contradiction reached during propagation.
var ErrUnsolvable = errors.New("solver: contradiction reached, no solution exists")

// ErrIterationCap is returned by Solve when a configured iteration cap
// (see WithIterationCap) is exceeded before the grid fully collapses.
var ErrIterationCap = errors.New("solver: iteration cap exceeded")
