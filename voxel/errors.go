package voxel

import (
	"errors"
	"fmt"
)

// ErrBadFile is the sentinel wrapped by every malformed-voxel-file failure.
// Use errors.Is(err, ErrBadFile) to detect the failure class; the wrapped
// message carries the offending path and the specific reason.
var ErrBadFile = errors.New("voxel: bad voxel file")

// badFile wraps ErrBadFile with path and reason context, using the
// fmt.Errorf("...: %w", ...) convention for sentinel-preserving wrapping.
func badFile(path, reason string) error {
	return fmt.Errorf("voxel: %s: %s: %w", path, reason, ErrBadFile)
}
