package resolve

import (
	"fmt"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/module"
)

// Names builds the scope tree for mod and reports undefined identifiers and
// redeclarations. It requires mod.Imports to already be populated by
// Imports, so public symbols of imported modules are visible.
func Names(reg *module.Registry, mod *module.Module, diags *errors.Reporter) {
	root := NewRootScope()
	for _, fn := range mod.Program.Functions {
		root.Define(fn.Name)
	}
	for _, cls := range mod.Program.Classes {
		root.Define(cls.Name)
		for _, fn := range cls.Methods {
			root.Define(fn.Name)
		}
	}
	for _, importName := range mod.Imports {
		if imported, ok := reg.Get(importName); ok {
			definePublicSymbols(root, imported)
		}
	}

	for _, fn := range mod.Program.Functions {
		checkFn(fn, root, diags)
	}
	for _, cls := range mod.Program.Classes {
		for _, fn := range cls.Methods {
			checkMethod(fn, cls, root, diags)
		}
	}
}

func definePublicSymbols(scope *Scope, imported *module.Module) {
	for _, fn := range imported.Program.Functions {
		if fn.IsPublic {
			scope.Define(fn.Name)
		}
	}
	for _, cls := range imported.Program.Classes {
		if cls.IsPublic {
			scope.Define(cls.Name)
		}
	}
}

func checkFn(fn *ast.FnDecl, parent *Scope, diags *errors.Reporter) {
	scope := parent.Child()
	for _, p := range fn.Params {
		scope.Define(p.Name)
	}
	checkStmts(fn.Body, scope, diags)
}

func checkMethod(fn *ast.FnDecl, cls *ast.ClassDecl, parent *Scope, diags *errors.Reporter) {
	scope := parent.Child()
	if !fn.IsStatic {
		scope.Define("this")
	}
	for _, p := range fn.Params {
		scope.Define(p.Name)
	}
	checkStmts(fn.Body, scope, diags)
}

func checkStmts(stmts []ast.Stmt, scope *Scope, diags *errors.Reporter) {
	for _, s := range stmts {
		checkStmt(s, scope, diags)
	}
}

func checkStmt(stmt ast.Stmt, scope *Scope, diags *errors.Reporter) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		checkExpr(s.Init, scope, diags)
		if !scope.Define(s.Name) {
			diags.Error(errors.NAME002, fmt.Sprintf("'%s' is already declared in this scope", s.Name), posSpan(s.Pos), "")
		}
	case *ast.ReturnStmt:
		if s.Value != nil {
			checkExpr(s.Value, scope, diags)
		}
	case *ast.ExprStmt:
		checkExpr(s.X, scope, diags)
	case *ast.BlockStmt:
		checkStmts(s.Stmts, scope.Child(), diags)
	case *ast.NativeStmt:
		// opaque to name resolution
	case *ast.IfStmt:
		checkExpr(s.Cond, scope, diags)
		checkStmts(s.Then, scope.Child(), diags)
		if s.Else != nil {
			checkStmts(s.Else, scope.Child(), diags)
		}
	case *ast.WhileStmt:
		checkExpr(s.Cond, scope, diags)
		checkStmts(s.Body, scope.Child(), diags)
	case *ast.ForStmt:
		checkExpr(s.Iter, scope, diags)
		body := scope.Child()
		body.Define(s.Var)
		checkStmts(s.Body, body, diags)
	case *ast.MatchStmt:
		checkExpr(s.Subject, scope, diags)
		for _, arm := range s.Arms {
			armScope := scope.Child()
			if arm.Pattern == "Some" && arm.BindName != "" {
				armScope.Define(arm.BindName)
			}
			checkStmts(arm.Body, armScope, diags)
		}
	}
}

// checkExpr validates identifier references inside e. Bare identifiers must
// resolve in scope; an identifier heading a member chain or call (the
// callee position) is left unchecked here because it may resolve through
// the builtin stdlib or a module alias, which only the type checker knows
// how to validate (see the type checker's module-call escape hatch).
func checkExpr(e ast.Expr, scope *Scope, diags *errors.Reporter) {
	switch x := e.(type) {
	case *ast.Ident:
		if !scope.Lookup(x.Name) {
			diags.Error(errors.NAME001, fmt.Sprintf("undefined identifier '%s'", x.Name), posSpan(x.Pos), "")
		}
	case *ast.Binary:
		checkExpr(x.Left, scope, diags)
		checkExpr(x.Right, scope, diags)
	case *ast.Unary:
		checkExpr(x.X, scope, diags)
	case *ast.Call:
		checkChainHead(x.Callee, scope, diags)
		for _, a := range x.Args {
			checkExpr(a, scope, diags)
		}
	case *ast.Member:
		checkChainHead(x.Obj, scope, diags)
	case *ast.Index:
		checkExpr(x.Obj, scope, diags)
		checkExpr(x.Idx, scope, diags)
	case *ast.Assign:
		checkExpr(x.Target, scope, diags)
		checkExpr(x.Value, scope, diags)
	case *ast.Lambda:
		lambdaScope := scope.Child()
		for _, p := range x.Params {
			lambdaScope.Define(p.Name)
		}
		checkExpr(x.Body, lambdaScope, diags)
	case *ast.New:
		for _, a := range x.Args {
			checkExpr(a, scope, diags)
		}
	case *ast.SomeExpr:
		checkExpr(x.X, scope, diags)
	case *ast.ArrayLit:
		for _, el := range x.Elems {
			checkExpr(el, scope, diags)
		}
	}
}

// checkChainHead is checkExpr's lenient counterpart for the root of a
// member-access or call chain.
func checkChainHead(e ast.Expr, scope *Scope, diags *errors.Reporter) {
	switch x := e.(type) {
	case *ast.Ident:
		return
	case *ast.Member:
		checkChainHead(x.Obj, scope, diags)
	case *ast.Call:
		checkChainHead(x.Callee, scope, diags)
		for _, a := range x.Args {
			checkExpr(a, scope, diags)
		}
	default:
		checkExpr(e, scope, diags)
	}
}
