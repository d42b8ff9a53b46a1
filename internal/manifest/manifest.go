// Package manifest parses a project's magfile.toml and its sibling
// magfile.lock, the ambient configuration layer sitting above the
// compiler's own phases.
package manifest

import (
	"github.com/BurntSushi/toml"
)

// Project is the `[project]` table.
type Project struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Authors     []string `toml:"authors"`
	Description string   `toml:"description"`
	License     string   `toml:"license"`
}

// Build is the `[build]` table. Optimization is threaded through to the
// host compiler invocation as an -O flag.
type Build struct {
	Optimization string `toml:"optimization"`
}

// Manifest is the parsed form of magfile.toml. Dependencies maps a
// dependency name to a version or path spec string, e.g. "^1.2" or
// "path:../vendor/collections".
type Manifest struct {
	Project      Project           `toml:"project"`
	Dependencies map[string]string `toml:"dependencies"`
	Build        Build             `toml:"build"`
}

// Load parses path as a magfile.toml.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
