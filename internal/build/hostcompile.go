package build

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sunholo/magc/internal/errors"
)

// compileHost writes cppSrc to a scratch file beside the project's build
// directory and invokes the host C++ compiler on it, surfacing stdout and
// stderr verbatim on failure. The host compiler is resolved from the
// CXX environment variable, falling back to "c++".
func compileHost(cfg Config, cppSrc string) (string, error) {
	buildDir := filepath.Join(cfg.ProjectDir, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: creating build directory: %w", errors.GEN002, err)
	}

	scratchPath := filepath.Join(buildDir, "out.cpp")
	if err := os.WriteFile(scratchPath, []byte(cppSrc), 0o644); err != nil {
		return "", fmt.Errorf("%s: writing scratch file: %w", errors.GEN002, err)
	}

	binPath := cfg.OutputPath
	if binPath == "" {
		binPath = filepath.Join(buildDir, "a.out")
	}

	compiler := os.Getenv("CXX")
	if compiler == "" {
		compiler = "c++"
	}

	cmd := exec.Command(compiler, "-std=c++17", "-O"+optimizationLevel(cfg), scratchPath, "-o", binPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: C++ compilation failed:\n%s%s", errors.GEN001, stdout.String(), stderr.String())
	}
	return binPath, nil
}

// optimizationLevel normalizes an [build] optimization value ("O2", "2",
// or empty) to the digit passed after -O, defaulting to 2.
func optimizationLevel(cfg Config) string {
	level := strings.TrimPrefix(strings.ToUpper(cfg.Optimization), "O")
	if level == "" {
		return "2"
	}
	return level
}
