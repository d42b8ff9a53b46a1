package types

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
)

// inferCall implements the type checker's call rule. A function-typed
// callee is checked for arity and argument assignability. A bare
// identifier callee that names a known stdlib function consults the
// builtin signature table. A member-access callee whose object chain is
// rooted at `Std`, an aliased native import, or an imported module is the
// "module-call escape hatch": arguments are still checked, but the result
// is Void unless the builtin table overrides it, because the checker cedes
// deep validation of that external boundary to the host C++ compiler.
func (c *Checker) inferCall(call *ast.Call, env *Env) ast.Type {
	switch callee := call.Callee.(type) {
	case *ast.Ident:
		if fn, ok := c.functions[callee.Name]; ok {
			return c.checkArgsAgainstFn(call, fn, env)
		}
		if sig, ok := lookupBuiltin(callee.Name); ok {
			return c.checkArgsAgainstSig(call, sig, env)
		}
		ast.SetTyped(callee, voidType())
		for _, a := range call.Args {
			c.inferExpr(a, env)
		}
		return voidType()

	case *ast.Member:
		if root, isRoot := chainRoot(callee); isRoot && c.escapeRoots[root] {
			for _, a := range call.Args {
				c.inferExpr(a, env)
			}
			if sig, ok := lookupBuiltin(callee.Name); ok {
				return sig.Return
			}
			return voidType()
		}
		return c.inferMethodCall(callee, call, env)

	default:
		ft := c.inferExpr(call.Callee, env)
		if fn, ok := ft.(*ast.FunctionType); ok {
			return c.checkArgsAgainstTypes(call, fn.Params, fn.Return, env)
		}
		for _, a := range call.Args {
			c.inferExpr(a, env)
		}
		return voidType()
	}
}

// chainRoot returns the identifier name at the root of a member chain and
// whether the chain bottoms out at a plain identifier at all (as opposed to
// some other expression, e.g. a call result).
func chainRoot(m *ast.Member) (string, bool) {
	switch obj := m.Obj.(type) {
	case *ast.Ident:
		return obj.Name, true
	case *ast.Member:
		return chainRoot(obj)
	default:
		return "", false
	}
}

func (c *Checker) inferMethodCall(m *ast.Member, call *ast.Call, env *Env) ast.Type {
	objType := c.inferExpr(m.Obj, env)
	cls, ok := objType.(*ast.ClassType)
	if !ok {
		for _, a := range call.Args {
			c.inferExpr(a, env)
		}
		return voidType()
	}
	decl, ok := c.classes[cls.Name]
	if !ok {
		for _, a := range call.Args {
			c.inferExpr(a, env)
		}
		return voidType()
	}
	for _, fn := range decl.Methods {
		if fn.Name == m.Name {
			if !fn.IsPublic && !c.sameClass(decl) {
				c.diags.Error(errors.NAME003, "method '"+fn.Name+"' is private to '"+decl.Name+"'", posSpan(call.Pos), "")
			}
			return c.checkArgsAgainstFn(call, fn, env)
		}
	}
	for _, a := range call.Args {
		c.inferExpr(a, env)
	}
	return voidType()
}

func (c *Checker) checkArgsAgainstFn(call *ast.Call, fn *ast.FnDecl, env *Env) ast.Type {
	params := make([]ast.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Type
	}
	ret := fn.ReturnType
	if ret == nil {
		ret = voidType()
	}
	return c.checkArgsAgainstTypes(call, params, ret, env)
}

func (c *Checker) checkArgsAgainstSig(call *ast.Call, sig builtinSignature, env *Env) ast.Type {
	for _, a := range call.Args {
		c.inferExpr(a, env)
	}
	if sig.Params != nil && len(call.Args) != len(sig.Params) {
		c.diags.Error(errors.TYP002, "wrong number of arguments", posSpan(call.Pos), "")
	}
	return sig.Return
}

func (c *Checker) checkArgsAgainstTypes(call *ast.Call, params []ast.Type, ret ast.Type, env *Env) ast.Type {
	if len(call.Args) != len(params) {
		c.diags.Error(errors.TYP002, "wrong number of arguments", posSpan(call.Pos), "")
	}
	n := len(call.Args)
	if len(params) < n {
		n = len(params)
	}
	for i := 0; i < n; i++ {
		argType := c.inferExpr(call.Args[i], env)
		if params[i] != nil && !isAssignable(argType, params[i]) {
			c.diags.Error(errors.TYP001, "argument is not assignable to the parameter's declared type", posSpan(call.Pos), "")
		}
	}
	for i := n; i < len(call.Args); i++ {
		c.inferExpr(call.Args[i], env)
	}
	if ret == nil {
		return voidType()
	}
	return ret
}
