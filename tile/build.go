package tile

import (
	"fmt"

	"github.com/voxelwfc/voxelwfc/bitset"
	"github.com/voxelwfc/voxelwfc/socket"
	"github.com/voxelwfc/voxelwfc/voxel"
)

// BuildSet constructs an immutable tile dictionary from every ".xraw"
// file in dir. edge is the uniform voxel edge length S that every file
// must share. opts configures asset-name exclusions (see WithExclusions).
//
// Returns an error wrapping voxel.ErrBadFile if any file fails to parse,
// or ErrBadTileSet if the directory holds no voxel files or the files do
// not share a common edge length.
func BuildSet(dir string, edge int, opts ...Option) (*Set, error) {
	cfg := newConfig(opts...)

	grids, err := voxel.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, badTileSet("no voxel files found in directory")
	}

	nodes := make([]Node, 0, len(grids)*4)
	reg := socket.NewRegistry()

	for _, fg := range grids {
		if fg.Grid.Size != edge {
			return nil, badTileSet(fmt.Sprintf(
				"voxel file %q has edge length %d, want %d", fg.AssetName, fg.Grid.Size, edge))
		}

		faces := socket.Extract(fg.Grid)

		var base socket.Sockets
		base.NX = reg.RegisterSide(faces.NX.Mirror())
		base.PX = reg.RegisterSide(faces.PX)
		base.NZ = reg.RegisterSide(faces.NZ)
		base.PZ = reg.RegisterSide(faces.PZ.Mirror())
		base.PY = reg.RegisterVertical(faces.PY)
		base.NY = reg.RegisterVertical(faces.NY)

		// Rotations 1,2,3 first, then the original (rotation 0) — the
		// original implementation's tile ID assignment order.
		for r := 1; r <= 3; r++ {
			rotated := socket.RotateSide(base, r)
			rotated.PY = socket.RotateVertical(base.PY, r)
			rotated.NY = socket.RotateVertical(base.NY, r)
			nodes = append(nodes, Node{Rotation: r, AssetName: fg.AssetName, Sockets: rotated})
		}
		nodes = append(nodes, Node{Rotation: 0, AssetName: fg.AssetName, Sockets: base})
	}

	computeNeighbors(nodes, cfg.exclusions)

	t := len(nodes)
	assetBits := make(map[string]bitset.Set)
	for k, n := range nodes {
		bits, ok := assetBits[n.AssetName]
		if !ok {
			bits = bitset.New(t)
			assetBits[n.AssetName] = bits
		}
		bits.Set(k)
	}

	return &Set{
		Nodes:     nodes,
		AllBits:   bitset.All(t),
		AssetBits: assetBits,
	}, nil
}
