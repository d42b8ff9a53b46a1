package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sunholo/magc/internal/build"
	"github.com/sunholo/magc/internal/errors"
)

var (
	colorError   = color.New(color.FgRed, color.Bold).SprintFunc()
	colorWarning = color.New(color.FgYellow).SprintFunc()
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile a source file, or the project in the current directory when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return buildProjectCmd.RunE(cmd, args)
		}
		path := args[0]
		cfg := build.Config{
			ProjectDir: filepath.Dir(path),
			OutputPath: outputPath,
			Verbose:    verbose,
		}
		res, err := build.Build(cfg, path)
		if err != nil {
			return err
		}
		renderDiagnostics(res.Diagnostics)
		if res.ExitCode() != 0 {
			os.Exit(1)
		}
		fmt.Printf("compiled %s\n", res.BinaryPath)
		return nil
	},
}

var buildProjectCmd = &cobra.Command{
	Use:   "build-project",
	Short: "Compile the whole project described by magfile.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg := build.Config{ProjectDir: dir, OutputPath: outputPath, Verbose: verbose}
		res, err := build.BuildProject(cfg)
		if err != nil {
			return err
		}
		renderDiagnostics(res.Diagnostics)
		if res.ExitCode() != 0 {
			os.Exit(1)
		}
		fmt.Printf("compiled %s\n", res.BinaryPath)
		return nil
	},
}

var emitCmd = &cobra.Command{
	Use:   "emit <file>",
	Short: "Generate C++17 source without invoking the host compiler",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := build.Config{
			ProjectDir: filepath.Dir(path),
			OutputPath: outputPath,
			Verbose:    verbose,
			EmitOnly:   true,
		}
		res, err := build.Build(cfg, path)
		if err != nil {
			return err
		}
		renderDiagnostics(res.Diagnostics)
		if res.ExitCode() != 0 {
			os.Exit(1)
		}
		if outputPath != "" {
			return os.WriteFile(outputPath, []byte(res.GeneratedCpp), 0o644)
		}
		fmt.Print(res.GeneratedCpp)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run lexing through type checking without generating code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := build.Config{
			ProjectDir: filepath.Dir(path),
			Verbose:    verbose,
			CheckOnly:  true,
		}
		res, err := build.Build(cfg, path)
		if err != nil {
			return err
		}
		renderDiagnostics(res.Diagnostics)
		os.Exit(res.ExitCode())
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile and immediately execute a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := build.Config{
			ProjectDir: filepath.Dir(path),
			Verbose:    verbose,
		}
		res, err := build.Build(cfg, path)
		if err != nil {
			return err
		}
		renderDiagnostics(res.Diagnostics)
		if res.ExitCode() != 0 {
			os.Exit(1)
		}
		return execBinary(res.BinaryPath)
	},
}

func renderDiagnostics(reports []errors.Report) {
	for _, r := range reports {
		line := r.Render()
		if r.Severity == errors.SeverityError {
			line = colorError(line)
		} else if r.Severity == errors.SeverityWarning {
			line = colorWarning(line)
		}
		fmt.Fprintln(os.Stderr, line)
	}
}

// execBinary replaces the current process's stdio with path's and runs it
// to completion, propagating its exit code.
func execBinary(path string) error {
	cmd := exec.Command(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
