package socket

import "github.com/voxelwfc/voxelwfc/voxel"

// Face is a dense 2D byte slice of shape (Dim0,Dim1), row-major.
type Face struct {
	Dim0, Dim1 int
	Data       []byte
}

func newFace(d0, d1 int) Face {
	return Face{Dim0: d0, Dim1: d1, Data: make([]byte, d0*d1)}
}

func (f Face) at(i, j int) byte {
	return f.Data[i*f.Dim1+j]
}

func (f *Face) set(i, j int, v byte) {
	f.Data[i*f.Dim1+j] = v
}

// key returns a map key identifying this face's contents.
func (f Face) key() string {
	return string(f.Data)
}

// Equal reports whether two faces have identical shape and contents.
func (f Face) Equal(other Face) bool {
	return f.key() == other.key() && f.Dim0 == other.Dim0 && f.Dim1 == other.Dim1
}

// Mirror reverses the last axis (columns) of f — the canonicalization step
// applied to the -X and +Z faces before socket registration.
func (f Face) Mirror() Face {
	out := newFace(f.Dim0, f.Dim1)
	for i := 0; i < f.Dim0; i++ {
		for j := 0; j < f.Dim1; j++ {
			out.set(i, j, f.at(i, f.Dim1-1-j))
		}
	}

	return out
}

// rotate90 transposes f then reverses the new axis 0 — a 90° rotation of
// the 2D face, used to derive vertical-socket equivalence classes.
func (f Face) rotate90() Face {
	out := newFace(f.Dim1, f.Dim0)
	for i := 0; i < out.Dim0; i++ {
		for j := 0; j < out.Dim1; j++ {
			out.set(i, j, f.at(j, f.Dim1-1-i))
		}
	}

	return out
}

// FaceSet holds the six face slices extracted from one voxel grid.
type FaceSet struct {
	PX, NX, PY, NY, PZ, NZ Face
}

// Extract pulls the six S×S face slices from g. Axis 0 is treated as
// vertical: NY/PY are the x=0 / x=S-1 slabs; NX/PX are the y=0 / y=S-1
// slabs; NZ/PZ are the z=0 / z=S-1 slabs.
func Extract(g *voxel.Grid) FaceSet {
	s := g.Size

	ny := newFace(s, s) // (y,z) at x=0
	py := newFace(s, s) // (y,z) at x=S-1
	nx := newFace(s, s) // (x,z) at y=0
	px := newFace(s, s) // (x,z) at y=S-1
	nz := newFace(s, s) // (x,y) at z=0
	pz := newFace(s, s) // (x,y) at z=S-1

	for y := 0; y < s; y++ {
		for z := 0; z < s; z++ {
			ny.set(y, z, g.At(0, y, z))
			py.set(y, z, g.At(s-1, y, z))
		}
	}
	for x := 0; x < s; x++ {
		for z := 0; z < s; z++ {
			nx.set(x, z, g.At(x, 0, z))
			px.set(x, z, g.At(x, s-1, z))
		}
	}
	for x := 0; x < s; x++ {
		for y := 0; y < s; y++ {
			nz.set(x, y, g.At(x, y, 0))
			pz.set(x, y, g.At(x, y, s-1))
		}
	}

	return FaceSet{PX: px, NX: nx, PY: py, NY: ny, PZ: pz, NZ: nz}
}
