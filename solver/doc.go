// Package solver implements the wave function collapse propagation and
// collapse loop over a dense 3D grid of tile-option bitsets.
//
// What: Solver owns one bitset.Set per grid cell (the cell's remaining
// tile options), a reference to the tile.Set that defines adjacency, and
// an owned *rand.Rand for reproducible collapses. Solve drives the loop
// to completion: repeatedly pick the lowest-entropy undecided cell,
// collapse it to one tile, and propagate the consequence outward until
// no cell can lose further options.
//
// Why: separating "what tiles may go where" (tile.Set) from "what is
// currently possible at each cell" (Solver) lets one compiled tile set
// drive many independent solves — each with its own seed, shape, and
// external constraints — without re-deriving adjacency.
//
// Complexity: propagation from a single cell is bounded by the grid
// volume times the tile count (each cell can lose each bit at most
// once before its entry is popped for good); a full solve is bounded by
// cells * propagation cost per collapse.
//
// Errors: ErrUnsolvable signals a cell whose option set emptied out
// before every cell collapsed to exactly one tile. ErrIterationCap
// signals a configured safety bound was hit first. ErrBadShape signals
// a degenerate (non-positive) grid dimension at construction.
package solver
