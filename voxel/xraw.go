package voxel

import (
	"encoding/binary"
	"os"
)

const (
	headerLen      = 24
	magicOffset    = 0
	magicLen       = 4
	bitsPerIdxOff  = 7
	widthOffset    = 8
	heightOffset   = 12
	depthOffset    = 16
	wantBitsPerIdx = 8
)

var magic = [magicLen]byte{'X', 'R', 'A', 'W'}

// Load reads one ".xraw" file and returns a dense *Grid. Returns an error
// wrapping ErrBadFile on any I/O failure or malformed header: wrong magic,
// bits_per_index != 8, a short file, or a non-cubic shape.
func Load(path string) (*Grid, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, badFile(path, err.Error())
	}
	if len(buf) < headerLen {
		return nil, badFile(path, "file shorter than header")
	}
	for i := 0; i < magicLen; i++ {
		if buf[magicOffset+i] != magic[i] {
			return nil, badFile(path, "bad magic, want \"XRAW\"")
		}
	}
	if buf[bitsPerIdxOff] != wantBitsPerIdx {
		return nil, badFile(path, "bits_per_index must be 8")
	}

	width := int(binary.LittleEndian.Uint32(buf[widthOffset : widthOffset+4]))
	height := int(binary.LittleEndian.Uint32(buf[heightOffset : heightOffset+4]))
	depth := int(binary.LittleEndian.Uint32(buf[depthOffset : depthOffset+4]))
	if width != height || height != depth {
		return nil, badFile(path, "voxel array must be cubic (width==height==depth)")
	}

	want := headerLen + width*height*depth
	if len(buf) < want {
		return nil, badFile(path, "file shorter than width*height*depth payload")
	}

	g := NewGrid(width)
	copy(g.data, buf[headerLen:want])

	return g, nil
}
