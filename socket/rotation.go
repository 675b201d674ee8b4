package socket

import "strconv"

// Sockets holds one tile's six face socket IDs.
type Sockets struct {
	PX, NX, PY, NY, PZ, NZ string
}

// RotateSide returns the side sockets (PX,NX,PZ,NZ) of s after r 90° Y
// rotations (r in {1,2,3}; r==0 returns s unchanged). PY/NY are
// untouched here — see RotateVertical for the vertical faces.
func RotateSide(s Sockets, r int) Sockets {
	out := s
	switch r {
	case 1:
		out.PX, out.NX, out.PZ, out.NZ = s.PZ, s.NZ, s.NX, s.PX
	case 2:
		out.PX, out.NX, out.PZ, out.NZ = s.NX, s.PX, s.NZ, s.PZ
	case 3:
		out.PX, out.NX, out.PZ, out.NZ = s.NZ, s.PZ, s.PX, s.NX
	}

	return out
}

// RotateVertical returns a vertical socket ID (PY or NY) after r 90°
// rotations. Rotation-invariant sockets ("_i") are unchanged; otherwise
// the trailing rotation digit advances by r mod 4, keeping the serial
// prefix intact.
func RotateVertical(id string, r int) string {
	if id == "" {
		return id
	}
	last := id[len(id)-1]
	if last == 'i' {
		return id
	}
	d := int(last-'0') + r
	d %= 4

	return id[:len(id)-1] + strconv.Itoa(d)
}
