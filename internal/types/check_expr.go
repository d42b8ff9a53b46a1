package types

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
)

// inferExpr infers (or checks, for forms with a declared target) e's type
// and annotates e via ast.SetTyped before returning. It never returns nil;
// unresolvable expressions fall back to Void so codegen never sees a null
// type.
func (c *Checker) inferExpr(e ast.Expr, env *Env) ast.Type {
	t := c.infer(e, env)
	if t == nil {
		t = voidType()
	}
	ast.SetTyped(e, t)
	return t
}

func (c *Checker) infer(e ast.Expr, env *Env) ast.Type {
	switch x := e.(type) {
	case *ast.IntLit:
		return &ast.IntType{}
	case *ast.FloatLit:
		return &ast.FloatType{}
	case *ast.StringLit:
		return &ast.StringType{}
	case *ast.BoolLit:
		return boolType()
	case *ast.InterpolatedString:
		return &ast.StringType{}
	case *ast.ThisExpr:
		if t, ok := env.Lookup("this"); ok {
			return t
		}
		return voidType()
	case *ast.NoneExpr:
		return &ast.OptionType{Inner: voidType()}
	case *ast.SomeExpr:
		return &ast.OptionType{Inner: c.inferExpr(x.X, env)}
	case *ast.Ident:
		if t, ok := env.Lookup(x.Name); ok {
			return t
		}
		if fn, ok := c.functions[x.Name]; ok {
			return fnType(fn)
		}
		return voidType()
	case *ast.ArrayLit:
		return c.inferArrayLit(x, env)
	case *ast.Unary:
		return c.inferUnary(x, env)
	case *ast.Binary:
		return c.inferBinary(x, env)
	case *ast.Assign:
		return c.inferAssign(x, env)
	case *ast.Index:
		return c.inferIndex(x, env)
	case *ast.Member:
		return c.inferMember(x, env)
	case *ast.Call:
		return c.inferCall(x, env)
	case *ast.New:
		return c.inferNew(x, env)
	case *ast.Lambda:
		return c.inferLambda(x, env)
	default:
		return voidType()
	}
}

func fnType(fn *ast.FnDecl) ast.Type {
	params := make([]ast.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Type
	}
	ret := fn.ReturnType
	if ret == nil {
		ret = voidType()
	}
	return &ast.FunctionType{Params: params, Return: ret}
}

func (c *Checker) inferArrayLit(x *ast.ArrayLit, env *Env) ast.Type {
	if len(x.Elems) == 0 {
		return &ast.ArrayType{Inner: voidType()}
	}
	elem := c.inferExpr(x.Elems[0], env)
	for _, el := range x.Elems[1:] {
		c.inferExpr(el, env)
	}
	return &ast.ArrayType{Inner: elem}
}

func (c *Checker) inferUnary(x *ast.Unary, env *Env) ast.Type {
	t := c.inferExpr(x.X, env)
	switch x.Op {
	case "-":
		if !isNumeric(t) {
			c.diags.Error(errors.TYP003, "unary '-' requires a numeric operand", posSpan(x.Pos), "")
		}
		return t
	case "!":
		if !isBool(t) {
			c.diags.Error(errors.TYP003, "unary '!' requires a bool operand", posSpan(x.Pos), "")
		}
		return boolType()
	default:
		return voidType()
	}
}

func (c *Checker) inferBinary(x *ast.Binary, env *Env) ast.Type {
	left := c.inferExpr(x.Left, env)
	right := c.inferExpr(x.Right, env)

	switch x.Op {
	case "+":
		if isString(left) || isString(right) {
			return &ast.StringType{}
		}
		if !isNumeric(left) || !isNumeric(right) {
			c.diags.Error(errors.TYP003, "'+' requires numeric (or string) operands", posSpan(x.Pos), "")
		}
		return left
	case "-", "*", "/", "%":
		if !isNumeric(left) || !isNumeric(right) {
			c.diags.Error(errors.TYP003, "arithmetic operators require numeric operands", posSpan(x.Pos), "")
		}
		return left
	case "==", "!=", "<", ">", "<=", ">=":
		if isVoid(left) || isVoid(right) {
			c.diags.Error(errors.TYP003, "comparison operands must not be void", posSpan(x.Pos), "")
		}
		return boolType()
	case "&&", "||":
		if !isBool(left) || !isBool(right) {
			c.diags.Error(errors.TYP003, "logical operators require bool operands", posSpan(x.Pos), "")
		}
		return boolType()
	default:
		return voidType()
	}
}

func (c *Checker) inferAssign(x *ast.Assign, env *Env) ast.Type {
	targetType := c.inferExpr(x.Target, env)
	valueType := c.inferExpr(x.Value, env)
	if !isAssignable(valueType, targetType) {
		c.diags.Error(errors.TYP001, "value is not assignable to the assignment target", posSpan(x.Pos), "")
	}
	return targetType
}

func (c *Checker) inferIndex(x *ast.Index, env *Env) ast.Type {
	objType := c.inferExpr(x.Obj, env)
	c.inferExpr(x.Idx, env)
	if arr, ok := objType.(*ast.ArrayType); ok {
		return arr.Inner
	}
	c.diags.Error(errors.TYP005, "indexing a non-array value", posSpan(x.Pos), "")
	return voidType()
}

// inferMember checks a plain (non-call) field access `obj.name`. Chains
// rooted at a module/native escape root fall back to Void, matching the
// call-site escape hatch.
func (c *Checker) inferMember(x *ast.Member, env *Env) ast.Type {
	if root, isRoot := chainRoot(x); isRoot && c.escapeRoots[root] {
		return voidType()
	}
	objType := c.inferExpr(x.Obj, env)
	cls, ok := objType.(*ast.ClassType)
	if !ok {
		return voidType()
	}
	decl, ok := c.classes[cls.Name]
	if !ok {
		return voidType()
	}
	for _, f := range decl.Fields {
		if f.Name == x.Name {
			if !f.IsPublic && !c.sameClass(decl) {
				c.diags.Error(errors.NAME003, "field '"+f.Name+"' is private to '"+decl.Name+"'", posSpan(x.Pos), "")
			}
			return f.Type
		}
	}
	return voidType()
}

// sameClass reports whether decl is the class whose method body is
// currently being checked, granting access to its private members.
func (c *Checker) sameClass(decl *ast.ClassDecl) bool {
	return c.currentClass != nil && c.currentClass.Name == decl.Name
}

func (c *Checker) inferLambda(x *ast.Lambda, env *Env) ast.Type {
	child := env.Child()
	params := make([]ast.Type, len(x.Params))
	for i, p := range x.Params {
		t := p.Type
		if t == nil {
			t = voidType()
		}
		params[i] = t
		child.Define(p.Name, t)
	}
	ret := c.inferExpr(x.Body, child)
	return &ast.FunctionType{Params: params, Return: ret}
}

func (c *Checker) inferNew(x *ast.New, env *Env) ast.Type {
	for _, a := range x.Args {
		c.inferExpr(a, env)
	}
	if _, ok := c.classes[x.Class]; !ok {
		c.diags.Error(errors.TYP001, "unknown class '"+x.Class+"'", posSpan(x.Pos), "")
	}
	return &ast.ClassType{Name: x.Class}
}
