package voxel

import (
	"os"
	"path/filepath"
	"strings"
)

const xrawExt = ".xraw"

// FileGrid pairs a loaded Grid with the source file's asset name — the
// base file name with the ".xraw" extension stripped.
type FileGrid struct {
	AssetName string
	Grid      *Grid
}

// LoadDir scans dir for "*.xraw" files and loads each into a Grid. Files
// are returned in the order os.ReadDir yields them (lexicographic by
// name); tile IDs downstream are assigned in this same order, per the
// loader's "any order, but stable within one run" contract.
//
// Returns an error wrapping ErrBadFile if dir cannot be read or any file
// fails to parse.
func LoadDir(dir string) ([]FileGrid, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, badFile(dir, err.Error())
	}

	out := make([]FileGrid, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), xrawExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g, err := Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, FileGrid{
			AssetName: strings.TrimSuffix(e.Name(), xrawExt),
			Grid:      g,
		})
	}

	return out, nil
}
