// Package direction defines the six canonical axis directions used to
// address a tile's faces and a grid cell's neighbors.
//
// Direction is a closed, bounds-checked type: the exported way to obtain
// one from a raw integer is FromIndex, which validates range and returns
// ErrOutOfRange on failure. This makes the "BadDirection" failure mode of
// the solver's external interface unrepresentable by construction for any
// caller that sticks to the exported constructors (All, Opposite).
package direction
