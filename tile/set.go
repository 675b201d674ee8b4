package tile

import "github.com/voxelwfc/voxelwfc/bitset"

// Set (NodeSet) owns the dense tile dictionary and the two derived
// bitsets every solver needs: the all-ones universe mask and the
// per-asset-name membership mask. A Set is immutable once returned by
// BuildSet.
type Set struct {
	// Nodes holds every tile, dense in [0,len(Nodes)).
	Nodes []Node

	// AllBits is the universe mask: every bit set, length len(Nodes).
	AllBits bitset.Set

	// AssetBits maps an asset name to the bitset of tile IDs that share
	// it — the four rotations of one file share one entry.
	AssetBits map[string]bitset.Set
}

// Len returns T, the total tile count.
func (s *Set) Len() int {
	return len(s.Nodes)
}
