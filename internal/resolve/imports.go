package resolve

import (
	"fmt"
	"strings"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/module"
)

// Imports walks mod's `using` declarations and records every successfully
// resolved target module name on mod.Imports. Builtin imports are recorded
// for downstream stdlib completion and otherwise skipped; unresolvable
// imports report IMP001. This phase never inspects symbols inside the
// imported modules.
func Imports(reg *module.Registry, mod *module.Module, diags *errors.Reporter) {
	for _, u := range mod.Program.Usings {
		if module.IsBuiltin(u.Path) {
			mod.Imports = append(mod.Imports, u.Path)
			continue
		}
		if target, ok := reg.Get(u.Path); ok {
			mod.Imports = append(mod.Imports, target.Name)
			continue
		}
		if name, ok := suffixMatch(reg, u.Path); ok {
			mod.Imports = append(mod.Imports, name)
			continue
		}
		diags.Error(errors.IMP001, fmt.Sprintf("unresolvable import '%s'", u.Path), posSpan(u.Pos),
			"check the module's package-relative name in the registry")
	}
}

// suffixMatch accepts a registered module whose dotted tail equals the
// import path's tail, so "utils.helpers" resolves against a module
// registered as "packagename.utils.helpers".
func suffixMatch(reg *module.Registry, importPath string) (string, bool) {
	tail := "." + importPath
	for _, name := range reg.Names() {
		if name == importPath || strings.HasSuffix(name, tail) {
			return name, true
		}
	}
	return "", false
}

func posSpan(p ast.Pos) *ast.Span {
	return &ast.Span{File: p.File, Line: p.Line, Column: p.Column, Length: 1}
}
