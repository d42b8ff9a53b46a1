package build

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestBuildEmitOnlySingleFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.mg")
	writeFile(t, srcPath, `
		fn main() {
			let x = 1 + 2;
		}
	`)

	res, err := Build(Config{ProjectDir: dir, EmitOnly: true}, srcPath)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.ExitCode() != 0 {
		t.Fatalf("expected exit code 0, got %d (diags: %+v)", res.ExitCode(), res.Diagnostics)
	}
	if res.GeneratedCpp == "" {
		t.Fatal("expected generated C++ source")
	}
	if res.BinaryPath != "" {
		t.Fatal("expected no binary path in emit-only mode")
	}
}

func TestBuildCheckOnlyReportsTypeError(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.mg")
	writeFile(t, srcPath, `
		fn main() {
			let x: int = true;
		}
	`)

	res, err := Build(Config{ProjectDir: dir, CheckOnly: true}, srcPath)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.ExitCode() == 0 {
		t.Fatal("expected a non-zero exit code for a type error")
	}
}

func TestBuildProjectDiscoversSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "magfile.toml"), `
[project]
name = "demo"
version = "0.1.0"
`)
	writeFile(t, filepath.Join(dir, "src", "main.mg"), `
		fn main() {
			let x = 1;
		}
	`)

	res, err := BuildProject(Config{ProjectDir: dir, EmitOnly: true})
	if err != nil {
		t.Fatalf("BuildProject: %v", err)
	}
	if res.ExitCode() != 0 {
		t.Fatalf("expected exit code 0, got %d (diags: %+v)", res.ExitCode(), res.Diagnostics)
	}
	if res.GeneratedCpp == "" {
		t.Fatal("expected generated C++ source")
	}
}

func TestBuildProjectWarnsOnMissingLock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "magfile.toml"), `
[project]
name = "demo"

[dependencies]
collections = "^1.0"
`)
	writeFile(t, filepath.Join(dir, "src", "main.mg"), `
		fn main() {
			let x = 1;
		}
	`)

	res, err := BuildProject(Config{ProjectDir: dir, EmitOnly: true})
	if err != nil {
		t.Fatalf("BuildProject: %v", err)
	}
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == "BLD001" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a BLD001 warning for a missing lock file")
	}
}
