// Package tile builds the immutable tile dictionary (NodeSet) that the
// solver operates over: one Node per rotational variant of every voxel
// file in a directory, plus the O(T²) compatibility matrix between every
// (tile, direction) pair.
//
// What:
//
//   - BuildSet loads a directory of voxel files, derives sockets for the
//     base orientation of each, generates its three further 90° rotations,
//     and computes each tile's six per-direction neighbor bitsets.
//   - Set (NodeSet) owns the dense Nodes slice, the all-ones universe
//     bitset, and the per-asset-name bitset map.
//
// Why:
//
//   - Tile IDs are dense in [0,T) so an array is the natural dictionary —
//     no map indirection is needed once construction is done.
//
// Complexity:
//
//   - BuildSet: O(T²) time and memory for the compatibility matrix, where
//     T = 4 * (number of voxel files). T is expected to stay well under
//     1024 in practice.
//
// Errors:
//
//   - ErrBadTileSet wraps inconsistent voxel edge lengths across files or
//     zero files found in the source directory.
//
// Immutability:
//
//   - A *Set returned by BuildSet has no exported mutator; it is safe to
//     share by reference across many concurrent solver.Solver instances.
package tile
