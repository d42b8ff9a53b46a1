package types

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
)

func (c *Checker) checkStmts(stmts []ast.Stmt, env *Env) {
	for _, s := range stmts {
		c.checkStmt(s, env)
	}
}

func (c *Checker) checkStmt(stmt ast.Stmt, env *Env) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		inferred := c.inferExpr(s.Init, env)
		if s.Type != nil {
			if !isAssignable(inferred, s.Type) {
				c.diags.Error(errors.TYP001, "initializer is not assignable to the declared type", posSpan(s.Pos), "")
			}
			env.Define(s.Name, s.Type)
		} else {
			env.Define(s.Name, inferred)
		}

	case *ast.ReturnStmt:
		if s.Value == nil {
			if !isVoid(c.currentReturn) {
				c.diags.Error(errors.TYP004, "bare return in a function that does not return void", posSpan(s.Pos), "")
			}
			return
		}
		t := c.inferExpr(s.Value, env)
		if !isAssignable(t, c.currentReturn) {
			c.diags.Error(errors.TYP004, "return value is not assignable to the function's declared return type", posSpan(s.Pos), "")
		}

	case *ast.ExprStmt:
		c.inferExpr(s.X, env)

	case *ast.BlockStmt:
		c.checkStmts(s.Stmts, env.Child())

	case *ast.NativeStmt:
		// Opaque to the type checker; the host compiler validates it.

	case *ast.IfStmt:
		cond := c.inferExpr(s.Cond, env)
		if !isBool(cond) {
			c.diags.Error(errors.TYP003, "if condition must be a bool", posSpan(s.Pos), "")
		}
		c.checkStmts(s.Then, env.Child())
		if s.Else != nil {
			c.checkStmts(s.Else, env.Child())
		}

	case *ast.WhileStmt:
		cond := c.inferExpr(s.Cond, env)
		if !isBool(cond) {
			c.diags.Error(errors.TYP003, "while condition must be a bool", posSpan(s.Pos), "")
		}
		c.checkStmts(s.Body, env.Child())

	case *ast.ForStmt:
		iterType := c.inferExpr(s.Iter, env)
		body := env.Child()
		if arr, ok := iterType.(*ast.ArrayType); ok {
			body.Define(s.Var, arr.Inner)
		} else {
			c.diags.Error(errors.TYP005, "for loop requires an array to iterate over", posSpan(s.Pos), "")
			body.Define(s.Var, voidType())
		}
		c.checkStmts(s.Body, body)

	case *ast.MatchStmt:
		subjectType := c.inferExpr(s.Subject, env)
		opt, isOpt := subjectType.(*ast.OptionType)
		for _, arm := range s.Arms {
			armEnv := env.Child()
			if arm.Pattern == "Some" {
				if isOpt {
					armEnv.Define(arm.BindName, opt.Inner)
				} else {
					if arm.BindName != "" {
						armEnv.Define(arm.BindName, voidType())
					}
					c.diags.Error(errors.TYP001, "match subject must be an optional type for a Some/None pattern", posSpan(s.Pos), "")
				}
			}
			c.checkStmts(arm.Body, armEnv)
		}
	}
}
