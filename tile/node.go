package tile

import (
	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/socket"
)

// Node is one rotational variant of one voxel file: an immutable record
// identified by its dense index within a Set's Nodes slice.
type Node struct {
	// Rotation is the number of 90° Y-axis rotations applied to the source
	// file, in [0,4).
	Rotation int

	// AssetName is the source file's base name, shared across all four
	// rotations of one file.
	AssetName string

	// Sockets holds the six face socket IDs, one per direction.Direction
	// index (PosX,NegX,PosY,NegY,PosZ,NegZ).
	Sockets socket.Sockets

	// Neighbors[d] is the bitset of tile IDs legal to place immediately in
	// direction d from this tile, indexed by direction.Direction.Index().
	Neighbors [6]bitset.Set
}

// socketAt returns the node's socket ID for direction index i, matching
// the fixed (PosX,NegX,PosY,NegY,PosZ,NegZ) ordering of direction.All().
func (n Node) socketAt(i int) string {
	switch i {
	case 0:
		return n.Sockets.PX
	case 1:
		return n.Sockets.NX
	case 2:
		return n.Sockets.PY
	case 3:
		return n.Sockets.NY
	case 4:
		return n.Sockets.PZ
	case 5:
		return n.Sockets.NZ
	default:
		return ""
	}
}
