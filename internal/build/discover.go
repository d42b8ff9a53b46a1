package build

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// discoverSources walks srcRoot recursively for .mg files in deterministic
// (lexical) order, matching filepath.WalkDir's own guarantee.
func discoverSources(srcRoot string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".mg") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
