// Package main implements the magc CLI: a thin cobra command surface over
// the core compiler pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	outputPath string
)

// rootCmd is the base command. Run without a subcommand, it prints usage.
var rootCmd = &cobra.Command{
	Use:   "magc",
	Short: "magc compiles .mg source to native binaries via C++17",
	Long: `magc is the compiler for the language: lexer, parser, module
resolution, name resolution, type checking, and C++17 code generation,
driven through a host C++ compiler to produce a native binary.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-phase timing to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output binary or emitted-source path")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(buildProjectCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)

	for _, stub := range stubCommands() {
		rootCmd.AddCommand(stub)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
