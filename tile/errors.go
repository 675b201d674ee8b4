package tile

import (
	"errors"
	"fmt"
)

// ErrBadTileSet is the sentinel wrapped by every tile-set construction
// failure that is not a voxel file parse error (which surfaces as
// voxel.ErrBadFile instead).
var ErrBadTileSet = errors.New("tile: bad tile set")

func badTileSet(reason string) error {
	return fmt.Errorf("tile: %s: %w", reason, ErrBadTileSet)
}
