// Package bitset implements a fixed-capacity bitmask over [0,N), the
// representation used throughout the solver for per-cell tile option sets
// and per-(tile,direction) compatibility masks.
//
// This is the Go analogue of Rust's bitvec::BitVec: a dense, word-packed
// bit array with O(1) amortized Set/Clear/Test and
// O(words) Popcount/Union. Capacity is fixed at construction; there is no
// growth operation because every caller in this module knows T (the tile
// count) up front.
package bitset
