// Package voxel parses ".xraw" voxel model files into dense 3D byte grids.
//
// What:
//
//   - Load reads a single file into a *Grid of shape (W,H,D).
//   - LoadDir scans a directory of files, returning one Grid per file in
//     directory-iteration order (tile IDs downstream are assigned in that
//     same order).
//
// Why:
//
//   - The loader is deliberately dumb: it does no interpretation of voxel
//     byte values beyond treating them as opaque material IDs. Socket
//     derivation (package socket) and tile construction (package tile)
//     build on top of the raw grid.
//
// Errors:
//
//   - ErrBadFile wraps a path and a reason for any malformed header, short
//     read, unsupported bits-per-index, or non-cubic/inconsistent shape.
//
// File format (".xraw", little-endian):
//
//	offset  length  meaning
//	0       4       magic "XRAW"
//	4       3       reserved
//	7       1       bits_per_index (must be 8)
//	8       4       width  (u32 LE)
//	12      4       height (u32 LE)
//	16      4       depth  (u32 LE)
//	20      4       reserved
//	24      W*H*D   voxel bytes, row-major [width,height,depth]
package voxel
