// Package scan enumerates merge candidates in a directory.
//
// The scanner filters directory entries by file extension only; whether an
// entry actually decodes as an image is the merge engine's concern.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedExts is the set of file extensions recognized as raster images,
// compared case-insensitively.
var supportedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".tiff": {},
	".gif":  {},
}

// IsSupported reports whether path has a recognized raster image extension.
// The comparison is case-insensitive, so "photo.PNG" matches.
func IsSupported(path string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Dir returns the full paths of all regular entries in dir whose extension
// is a supported image format, in the order os.ReadDir yields them.
// Subdirectories are skipped; an empty result is not an error.
func Dir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
