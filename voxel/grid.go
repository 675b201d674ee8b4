package voxel

// Grid is a dense, row-major (x,y,z) byte array of uniform edge length
// Size. Bytes are opaque material IDs; equality of face slices (package
// socket) is the only thing that matters to the solver.
type Grid struct {
	Size int
	data []byte
}

// NewGrid allocates a zeroed Grid of edge length size.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, data: make([]byte, size*size*size)}
}

// Index maps (x,y,z) to the row-major offset into data — the usual 2D
// row-major convention extended to a third axis.
func (g *Grid) Index(x, y, z int) int {
	return (x*g.Size+y)*g.Size + z
}

// At returns the voxel byte at (x,y,z). Callers are expected to pass
// in-bounds coordinates; this is an internal hot-path accessor with no
// bounds checking beyond what the Go runtime already performs on the
// underlying slice.
func (g *Grid) At(x, y, z int) byte {
	return g.data[g.Index(x, y, z)]
}

// Set writes v at (x,y,z).
func (g *Grid) Set(x, y, z int, v byte) {
	g.data[g.Index(x, y, z)] = v
}
