package codegen

import (
	"strconv"
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

func (g *Generator) emitExpr(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(x.Value, 10)
	case *ast.FloatLit:
		s := strconv.FormatFloat(x.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case *ast.StringLit:
		return `std::string("` + escapeCppString(x.Value) + `")`
	case *ast.BoolLit:
		if x.Value {
			return "true"
		}
		return "false"
	case *ast.InterpolatedString:
		return interpolate(x.Raw)
	case *ast.Ident:
		return x.Name
	case *ast.ThisExpr:
		return "(*this)"
	case *ast.SomeExpr:
		return "std::make_optional(" + g.emitExpr(x.X) + ")"
	case *ast.NoneExpr:
		return "std::nullopt"
	case *ast.Unary:
		return "(" + x.Op + g.emitExpr(x.X) + ")"
	case *ast.Binary:
		return "(" + g.emitExpr(x.Left) + " " + x.Op + " " + g.emitExpr(x.Right) + ")"
	case *ast.Assign:
		return g.emitExpr(x.Target) + " = " + g.emitExpr(x.Value)
	case *ast.Index:
		return g.emitExpr(x.Obj) + "[" + g.emitExpr(x.Idx) + "]"
	case *ast.Member:
		return g.emitMember(x)
	case *ast.Call:
		return g.emitCall(x)
	case *ast.New:
		return g.emitNew(x)
	case *ast.ArrayLit:
		return g.emitArrayLit(x)
	case *ast.Lambda:
		return g.emitLambda(x)
	default:
		return "/* unsupported expression */"
	}
}

func (g *Generator) emitMember(m *ast.Member) string {
	if root := rootIdentName(m.Obj); root != "" && g.namespaceRoots[root] {
		return g.namespacePath(m)
	}
	return g.emitExpr(m.Obj) + "." + m.Name
}

func (g *Generator) namespacePath(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.Member:
		return g.namespacePath(x.Obj) + "::" + x.Name
	default:
		return g.emitExpr(e)
	}
}

func rootIdentName(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.Member:
		return rootIdentName(x.Obj)
	default:
		return ""
	}
}

func (g *Generator) emitCall(c *ast.Call) string {
	callee := g.emitExpr(c.Callee)
	if len(c.Generics) > 0 {
		args := make([]string, len(c.Generics))
		for i, t := range c.Generics {
			args[i] = cppType(t)
		}
		callee += "<" + strings.Join(args, ", ") + ">"
	}
	argStrs := make([]string, len(c.Args))
	for i, a := range c.Args {
		argStrs[i] = g.emitExpr(a)
	}
	return callee + "(" + strings.Join(argStrs, ", ") + ")"
}

func (g *Generator) emitNew(n *ast.New) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.emitExpr(a)
	}
	return n.Class + "(" + strings.Join(args, ", ") + ")"
}

func (g *Generator) emitArrayLit(a *ast.ArrayLit) string {
	elems := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		elems[i] = g.emitExpr(e)
	}
	body := strings.Join(elems, ", ")
	if arr, ok := ast.Typed(a).(*ast.ArrayType); ok {
		return "std::vector<" + cppType(arr.Inner) + ">{" + body + "}"
	}
	return "{" + body + "}"
}

// emitLambda lowers a lambda with an explicit [=] capture of everything in
// scope, matching the source's capture-by-value closure semantics.
// Parameter types left to inference are emitted as auto.
func (g *Generator) emitLambda(l *ast.Lambda) string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		t := "auto"
		if p.Type != nil {
			t = cppType(p.Type)
		}
		params[i] = t + " " + p.Name
	}
	return "[=](" + strings.Join(params, ", ") + ") { return " + g.emitExpr(l.Body) + "; }"
}
