package socket

import "strconv"

// Registry accumulates the side-face and vertical-face socket maps while
// tiles are registered one voxel file at a time. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	sideMap    map[string]string
	vertMap    map[string]string
	sideSerial int
	vertSerial int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sideMap: make(map[string]string),
		vertMap: make(map[string]string),
	}
}

// RegisterSide looks up face in the side map. If absent, it computes the
// mirror: a self-mirrored face gets a single "s" socket; an asymmetric
// face gets a complementary "f" (mirror) / "m" (original) pair sharing one
// serial. Returns the socket ID assigned to face.
func (r *Registry) RegisterSide(face Face) string {
	key := face.key()
	if _, ok := r.sideMap[key]; !ok {
		mirror := face.Mirror()
		mkey := mirror.key()
		serial := strconv.Itoa(r.sideSerial)
		if mkey == key {
			r.sideMap[key] = serial + "s"
		} else {
			r.sideMap[mkey] = serial + "f"
			r.sideMap[key] = serial + "m"
		}
		r.sideSerial++
	}

	return r.sideMap[key]
}

// RegisterVertical looks up face in the vertical map. If absent, it
// computes the four 90° rotations: if all four are identical, the face is
// rotation-invariant and gets a single "_i" socket; otherwise each
// rotation gets its own "_0".."_3" socket sharing one serial. Returns the
// socket ID assigned to face.
func (r *Registry) RegisterVertical(face Face) string {
	key := face.key()
	if _, ok := r.vertMap[key]; !ok {
		r0 := face
		r1 := r0.rotate90()
		r2 := r1.rotate90()
		r3 := r2.rotate90()
		serial := strconv.Itoa(r.vertSerial)

		if r0.key() == r1.key() && r1.key() == r2.key() && r2.key() == r3.key() {
			r.vertMap[r0.key()] = serial + "_i"
		} else {
			r.vertMap[r0.key()] = serial + "_0"
			r.vertMap[r1.key()] = serial + "_1"
			r.vertMap[r2.key()] = serial + "_2"
			r.vertMap[r3.key()] = serial + "_3"
		}
		r.vertSerial++
	}

	return r.vertMap[key]
}
