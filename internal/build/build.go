// Package build implements the project build orchestrator: manifest and
// lock file handling, source discovery, the resolve/typecheck/codegen
// pipeline, and the host C++ compiler invocation.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/codegen"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
	"github.com/sunholo/magc/internal/manifest"
	"github.com/sunholo/magc/internal/module"
	"github.com/sunholo/magc/internal/parser"
	"github.com/sunholo/magc/internal/resolve"
	"github.com/sunholo/magc/internal/types"
)

// Config controls a single Build invocation.
type Config struct {
	// ProjectDir is the directory containing magfile.toml and src/.
	ProjectDir string
	// OutputPath overrides the default compiled-binary path (-o).
	OutputPath string
	// Verbose enables per-phase timing lines on stderr.
	Verbose bool
	// EmitOnly stops after codegen and skips the host compiler invocation;
	// the generated C++ is returned in Result.GeneratedCpp and Build writes
	// no file.
	EmitOnly bool
	// CheckOnly stops after type checking; no codegen or host compile.
	CheckOnly bool
	// Optimization is threaded through to the host compiler as -O<value>.
	// Defaults to "2" when empty.
	Optimization string
}

// Result carries the outcome of a Build invocation.
type Result struct {
	Diagnostics  []errors.Report
	GeneratedCpp string
	BinaryPath   string
	PhaseTimings map[string]int64
}

// ExitCode maps a Result to the process exit code: 1 if any error-severity
// diagnostic was collected, 0 otherwise. It does not look at BinaryPath;
// host compiler failures are returned as Build's error instead.
func (r Result) ExitCode() int {
	for _, d := range r.Diagnostics {
		if d.Severity == errors.SeverityError {
			return 1
		}
	}
	return 0
}

// Build runs the full pipeline against a single source file: lex, parse,
// resolve imports (against a registry holding only this file's module —
// single-file builds have nothing to import from but the builtin stdlib),
// resolve names, type
// check, and optionally generate and compile.
func Build(cfg Config, sourcePath string) (Result, error) {
	res := Result{PhaseTimings: make(map[string]int64)}
	diags := errors.NewReporter("build")

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	start := time.Now()
	l := lexer.New(string(src), sourcePath, diags)
	p := parser.New(l, diags)
	prog := p.ParseProgram()
	res.PhaseTimings["parse"] = time.Since(start).Milliseconds()
	cfg.logPhase("parse", res.PhaseTimings["parse"])

	reg := module.NewRegistry()
	mod := &module.Module{
		Name:    module.DeriveName("", cfg.ProjectDir, sourcePath),
		Path:    sourcePath,
		Program: prog,
	}
	markTopLevelPublic(prog)
	reg.Register(mod, diags)

	if diags.HasError() {
		res.Diagnostics = diags.Drain()
		return res, nil
	}

	if err := runChecks(cfg, reg, mod, diags, &res); err != nil {
		return res, err
	}
	res.Diagnostics = diags.Drain()
	if diags.HasError() || cfg.CheckOnly {
		return res, nil
	}

	return finishCodegen(cfg, prog, &res)
}

// BuildProject runs the full pipeline across every .mg file discovered
// under <ProjectDir>/src, per magfile.toml's project and dependency
// tables.
func BuildProject(cfg Config) (Result, error) {
	res := Result{PhaseTimings: make(map[string]int64)}
	diags := errors.NewReporter("build")

	start := time.Now()
	manifestPath := filepath.Join(cfg.ProjectDir, "magfile.toml")
	mf, err := manifest.Load(manifestPath)
	if err != nil {
		return res, fmt.Errorf("loading %s: %w", manifestPath, err)
	}
	res.PhaseTimings["manifest"] = time.Since(start).Milliseconds()
	cfg.logPhase("manifest", res.PhaseTimings["manifest"])
	if cfg.Optimization == "" {
		cfg.Optimization = mf.Build.Optimization
	}

	start = time.Now()
	if len(mf.Dependencies) > 0 {
		lockPath := filepath.Join(cfg.ProjectDir, "magfile.lock")
		lf, err := manifest.LoadLockfile(lockPath)
		if err != nil || lf.Stale(mf.Dependencies) {
			diags.Warning(errors.BLD001,
				"dependency lock file is missing or stale; building without dependency sources",
				nil, "run the package manager to regenerate magfile.lock")
		}
	}
	res.PhaseTimings["lockfile"] = time.Since(start).Milliseconds()
	cfg.logPhase("lockfile", res.PhaseTimings["lockfile"])

	start = time.Now()
	reg := module.NewRegistry()
	srcRoot := filepath.Join(cfg.ProjectDir, "src")
	sources, err := discoverSources(srcRoot)
	if err != nil {
		return res, fmt.Errorf("discovering sources under %s: %w", srcRoot, err)
	}

	var modules []*module.Module
	var merged ast.Program
	for _, path := range sources {
		src, err := os.ReadFile(path)
		if err != nil {
			return res, fmt.Errorf("reading %s: %w", path, err)
		}
		l := lexer.New(string(src), path, diags)
		p := parser.New(l, diags)
		prog := p.ParseProgram()
		markTopLevelPublic(prog)

		mod := &module.Module{
			Name:    module.DeriveName(mf.Project.Name, srcRoot, path),
			Path:    path,
			Program: prog,
		}
		reg.Register(mod, diags)
		modules = append(modules, mod)

		merged.Classes = append(merged.Classes, prog.Classes...)
		merged.Functions = append(merged.Functions, prog.Functions...)
		merged.NativeImports = append(merged.NativeImports, prog.NativeImports...)
	}
	res.PhaseTimings["discover"] = time.Since(start).Milliseconds()
	cfg.logPhase("discover", res.PhaseTimings["discover"])

	if diags.HasError() {
		res.Diagnostics = diags.Drain()
		return res, nil
	}

	for _, mod := range modules {
		if err := runChecks(cfg, reg, mod, diags, &res); err != nil {
			return res, err
		}
	}
	res.Diagnostics = diags.Drain()
	if diags.HasError() || cfg.CheckOnly {
		return res, nil
	}

	return finishCodegen(cfg, &merged, &res)
}

// runChecks runs the import resolution, name resolution, and type
// checking phases for one module, folding their timings into res.
func runChecks(cfg Config, reg *module.Registry, mod *module.Module, diags *errors.Reporter, res *Result) error {
	start := time.Now()
	resolve.Imports(reg, mod, diags)
	res.PhaseTimings["imports"] += time.Since(start).Milliseconds()

	start = time.Now()
	resolve.Names(reg, mod, diags)
	res.PhaseTimings["names"] += time.Since(start).Milliseconds()

	start = time.Now()
	types.Check(reg, mod, diags)
	res.PhaseTimings["typecheck"] += time.Since(start).Milliseconds()

	cfg.logPhase("imports+names+typecheck", res.PhaseTimings["typecheck"])
	return nil
}

// finishCodegen generates C++ for prog and, unless cfg.EmitOnly, invokes
// the host compiler.
func finishCodegen(cfg Config, prog *ast.Program, res *Result) (Result, error) {
	start := time.Now()
	cppSrc, err := codegen.Generate(prog)
	res.PhaseTimings["codegen"] = time.Since(start).Milliseconds()
	cfg.logPhase("codegen", res.PhaseTimings["codegen"])
	if err != nil {
		return *res, fmt.Errorf("code generation: %w", err)
	}
	res.GeneratedCpp = cppSrc

	if cfg.EmitOnly {
		return *res, nil
	}

	start = time.Now()
	binPath, err := compileHost(cfg, cppSrc)
	res.PhaseTimings["host_compile"] = time.Since(start).Milliseconds()
	cfg.logPhase("host_compile", res.PhaseTimings["host_compile"])
	if err != nil {
		return *res, err
	}
	res.BinaryPath = binPath
	return *res, nil
}

func (cfg Config) logPhase(name string, ms int64) {
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "magc: phase %s took %dms\n", name, ms)
	}
}

// markTopLevelPublic defaults every top-level function and class to
// public, matching the orchestrator's "source discovery" step.
func markTopLevelPublic(prog *ast.Program) {
	for _, fn := range prog.Functions {
		fn.IsPublic = true
	}
	for _, cls := range prog.Classes {
		cls.IsPublic = true
	}
}
