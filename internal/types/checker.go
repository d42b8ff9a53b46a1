package types

import (
	"strings"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/module"
)

// Checker holds the per-module symbol tables the expression and statement
// checkers consult: local and imported classes/functions, the set of
// identifiers that head a module-call chain, and the declared return type
// of whichever function body is currently being checked.
type Checker struct {
	diags *errors.Reporter

	classes     map[string]*ast.ClassDecl
	functions   map[string]*ast.FnDecl
	escapeRoots map[string]bool

	currentReturn ast.Type
	currentClass  *ast.ClassDecl
}

// Check runs the type checker over every function and class method in mod.
// mod.Imports must already be populated by the import resolver.
func Check(reg *module.Registry, mod *module.Module, diags *errors.Reporter) {
	c := &Checker{
		diags:       diags,
		classes:     make(map[string]*ast.ClassDecl),
		functions:   make(map[string]*ast.FnDecl),
		escapeRoots: map[string]bool{"Std": true},
	}
	c.collectSymbols(reg, mod)

	for _, fn := range mod.Program.Functions {
		c.checkFn(fn, nil)
	}
	for _, cls := range mod.Program.Classes {
		for _, fn := range cls.Methods {
			c.checkFn(fn, cls)
		}
	}
}

func (c *Checker) collectSymbols(reg *module.Registry, mod *module.Module) {
	for _, fn := range mod.Program.Functions {
		c.functions[fn.Name] = fn
	}
	for _, cls := range mod.Program.Classes {
		c.classes[cls.Name] = cls
	}
	for _, ni := range mod.Program.NativeImports {
		if ni.AliasNamespace != "" {
			c.escapeRoots[ni.AliasNamespace] = true
		}
		for _, sym := range ni.SelectedSymbols {
			c.escapeRoots[sym] = true
		}
	}
	for _, importName := range mod.Imports {
		if module.IsBuiltin(importName) {
			continue
		}
		imported, ok := reg.Get(importName)
		if !ok {
			continue
		}
		// Every imported module's last dotted segment is a valid chain
		// root (e.g. `using app.utils.helpers;` lets code reference
		// `helpers.someFn()`).
		segs := strings.Split(importName, ".")
		c.escapeRoots[segs[len(segs)-1]] = true

		for _, fn := range imported.Program.Functions {
			if fn.IsPublic {
				c.functions[fn.Name] = fn
			}
		}
		for _, cls := range imported.Program.Classes {
			if cls.IsPublic {
				c.classes[cls.Name] = cls
			}
		}
	}
}

// checkFn type-checks fn's body. cls is non-nil for methods, which bind a
// synthetic `this` of the enclosing class's nominal type.
func (c *Checker) checkFn(fn *ast.FnDecl, cls *ast.ClassDecl) {
	env := NewEnv()
	if cls != nil && !fn.IsStatic {
		env.Define("this", &ast.ClassType{Name: cls.Name})
	}
	for _, p := range fn.Params {
		env.Define(p.Name, p.Type)
	}

	prevReturn := c.currentReturn
	if fn.ReturnType != nil {
		c.currentReturn = fn.ReturnType
	} else {
		c.currentReturn = voidType()
	}
	prevClass := c.currentClass
	c.currentClass = cls
	c.checkStmts(fn.Body, env)
	c.currentClass = prevClass
	c.currentReturn = prevReturn
}

func posSpan(p ast.Pos) *ast.Span {
	return &ast.Span{File: p.File, Line: p.Line, Column: p.Column, Length: 1}
}
