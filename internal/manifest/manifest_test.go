package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeTemp(t, "magfile.toml", `
[project]
name = "demo"
version = "0.1.0"
authors = ["a@example.com"]
license = "MIT"

[dependencies]
collections = "^1.0"

[build]
optimization = "O2"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Project.Name != "demo" {
		t.Errorf("Project.Name = %q, want demo", m.Project.Name)
	}
	if m.Dependencies["collections"] != "^1.0" {
		t.Errorf("Dependencies[collections] = %q, want ^1.0", m.Dependencies["collections"])
	}
	if m.Build.Optimization != "O2" {
		t.Errorf("Build.Optimization = %q, want O2", m.Build.Optimization)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}

func TestLoadLockfile(t *testing.T) {
	path := writeTemp(t, "magfile.lock", `
dependencies:
  collections:
    resolved: "1.0.3"
    hash: "sha256:deadbeef"
    files:
      - "src/collections/list.mg"
`)
	lf, err := LoadLockfile(path)
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	dep, ok := lf.Dependencies["collections"]
	if !ok {
		t.Fatal("expected a collections entry")
	}
	if dep.Resolved != "1.0.3" {
		t.Errorf("Resolved = %q, want 1.0.3", dep.Resolved)
	}
}

func TestLockfileStale(t *testing.T) {
	lf := &Lockfile{Dependencies: map[string]LockedDependency{
		"collections": {Resolved: "1.0.3"},
	}}
	if lf.Stale(map[string]string{"collections": "^1.0"}) {
		t.Error("expected an up-to-date lock for a matching dependency set")
	}
	if !lf.Stale(map[string]string{"collections": "^1.0", "math": "^2.0"}) {
		t.Error("expected a stale lock when a dependency is missing from it")
	}
}

func TestNilLockfileStaleWithDependencies(t *testing.T) {
	var lf *Lockfile
	if !lf.Stale(map[string]string{"collections": "^1.0"}) {
		t.Error("expected a nil lockfile to be stale when dependencies are declared")
	}
	if lf.Stale(nil) {
		t.Error("expected a nil lockfile with no dependencies to not be stale")
	}
}
