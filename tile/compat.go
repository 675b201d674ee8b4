package tile

import (
	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/direction"
	"github.com/voxelwfc/voxelwfc/socket"
)

// computeNeighbors fills every node's Neighbors bitsets in place: for tile
// i and direction d, bit j is set iff (asset(i),asset(j)) is not excluded
// and tile i's socket in direction d matches tile j's socket in the
// opposite direction. O(T²) time and memory.
func computeNeighbors(nodes []Node, exclusions ExclusionSet) {
	t := len(nodes)
	for i := range nodes {
		for _, d := range direction.All() {
			nodes[i].Neighbors[d.Index()] = bitset.New(t)
		}
	}

	for i := range nodes {
		for j := range nodes {
			if exclusions.Contains(nodes[i].AssetName, nodes[j].AssetName) {
				continue
			}
			for _, d := range direction.All() {
				opp := d.Opposite()
				if socket.Match(nodes[i].socketAt(d.Index()), nodes[j].socketAt(opp.Index())) {
					nodes[i].Neighbors[d.Index()].Set(j)
				}
			}
		}
	}
}
