package manifest

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LockedDependency records what a dependency resolved to the last time the
// lock file was written: its concrete version or path, a content hash over
// the files it contributed, and those files. Stale does not consult the
// hash or the file list.
type LockedDependency struct {
	Resolved string   `yaml:"resolved"`
	Hash     string   `yaml:"hash"`
	Files    []string `yaml:"files"`
}

// Lockfile is the parsed form of magfile.lock.
type Lockfile struct {
	Dependencies map[string]LockedDependency `yaml:"dependencies"`
}

// LoadLockfile parses path as a magfile.lock. A missing file is reported
// through the returned error so the caller can decide whether that is
// fatal; an empty manifest dependency table means the caller need not call
// this at all.
func LoadLockfile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf Lockfile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	return &lf, nil
}

// Stale reports whether lf is missing an entry for any dependency named in
// deps (the manifest's own dependency table). An entry that is present is
// not compared against the manifest's version spec.
func (lf *Lockfile) Stale(deps map[string]string) bool {
	if lf == nil {
		return len(deps) > 0
	}
	for name := range deps {
		if _, ok := lf.Dependencies[name]; !ok {
			return true
		}
	}
	return false
}
