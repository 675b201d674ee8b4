// Package socket derives symmetric-class socket identifiers from a tile's
// six face slices and implements the socket matching rule and the 90°
// rotation transforms used to generate a tile's rotational variants.
//
// What:
//
//   - Extract pulls the six S×S face slices out of a voxel.Grid using the
//     axis mapping where axis 0 is vertical (ny/py come from the X slabs).
//   - Registry assigns socket IDs: side faces (±X,±Z) get an "s" (mirror
//     symmetric) or complementary "f"/"m" pair; vertical faces (±Y) get an
//     "_i" (rotation invariant) or one of "_0".."_3" per 90° step.
//   - Match implements the compatibility predicate between two socket IDs.
//   - RotateSide/RotateVertical carry a tile's sockets through a 90° Y
//     rotation without re-deriving them from face bytes.
//
// Registry keys faces by their raw bytes (a string conversion of the byte
// slice) rather than a custom hash — cheap at the S<=16 face sizes this
// package targets.
package socket
