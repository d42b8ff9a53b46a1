// Package module derives module names from source file paths and tracks
// the per-build registry of parsed modules, grounding the rest of the
// pipeline (import resolution, name resolution) in a single canonical name
// for every source file.
package module

import (
	"path/filepath"
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

// builtinPrefixes names the standard-library module namespace. A name equal
// to a prefix without its trailing '.', or starting with a prefix, is
// considered provided by codegen and the target runtime rather than by user
// source.
var builtinPrefixes = []string{"Std."}

// IsBuiltin reports whether name refers to the language's standard library
// rather than to a user module.
func IsBuiltin(name string) bool {
	for _, prefix := range builtinPrefixes {
		if name == strings.TrimSuffix(prefix, ".") || strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Module is one parsed source file plus the bookkeeping later phases attach
// to it.
type Module struct {
	Name    string
	Path    string
	Program *ast.Program

	// Imports holds every successfully resolved target module name,
	// populated by the import resolver.
	Imports []string
}

// DeriveName computes a module's canonical name from its file path relative
// to the package's source root:
//
//	strip the source-root prefix, drop the extension, replace path
//	separators with '.', and prepend the package name.
func DeriveName(packageName, sourceRoot, filePath string) string {
	rel, err := filepath.Rel(sourceRoot, filePath)
	if err != nil {
		rel = filePath
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	rel = filepath.ToSlash(rel)
	dotted := strings.ReplaceAll(rel, "/", ".")
	if packageName == "" {
		return dotted
	}
	return packageName + "." + dotted
}
