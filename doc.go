// Package voxelwfc is your in-memory playground for tiling 3D voxel
// grids with the wave function collapse algorithm.
//
// What is voxelwfc?
//
//	A small, dependency-light library that brings together:
//
//	  • Voxel loading: read .xraw voxel assets into dense Grid values
//	  • Socket derivation: turn a tile's six faces into directional
//	    adjacency identifiers, including rotation and mirror symmetry
//	  • Tile-set construction: expand assets into their four Y-axis
//	    rotations and precompute an O(T²) compatibility matrix
//	  • Constraint solving: collapse a grid cell by cell to a fixed
//	    point, with external constraints for scripted level generation
//
// Why choose voxelwfc?
//
//   - Deterministic  — a pinned seed reproduces the exact same solve
//   - Dense          — bitset-backed option sets keep entropy and
//     propagation cheap even on large grids
//   - Composable     — tile sets are built once and reused across many
//     independent solves
//
// Under the hood, everything is organized under six subpackages:
//
//	direction/ — the six axis-aligned neighbor directions
//	bitset/    — fixed-capacity bitmask used for per-cell option sets
//	voxel/     — .xraw voxel file parsing
//	socket/    — face extraction, socket registries, rotation tables
//	tile/      — tile-set construction and the adjacency matrix
//	solver/    — the collapse/propagation loop and its constraint API
//
// Quick sketch of a solve:
//
//	tiles, err := tile.BuildSet("assets/voxels", 8)
//	s, err := solver.New([3]int{16, 4, 16}, tiles.AllBits, tiles, solver.WithSeed(42))
//	grid, err := s.Solve(context.Background())
//
// grid is a dense [x][y][z]tileID array ready to be instanced into a
// renderer or exported to another format.
package voxelwfc
