package ast

import (
	"encoding/json"
	"fmt"
)

// Print produces a deterministic JSON representation of an AST node for use
// in golden-file tests. Positions are omitted so that golden files are
// stable across source file renames.
func Print(node Node) string {
	if node == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplify(node), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// PrintProgram is Print specialized for *Program (Program does not carry a
// single expression/type kind so it is handled directly).
func PrintProgram(p *Program) string {
	if p == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplifyProgram(p), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

func simplifyProgram(p *Program) map[string]any {
	m := map[string]any{"type": "Program"}
	var usings []string
	for _, u := range p.Usings {
		usings = append(usings, u.Path)
	}
	if usings != nil {
		m["usings"] = usings
	}
	var classes []any
	for _, c := range p.Classes {
		classes = append(classes, simplify(c))
	}
	if classes != nil {
		m["classes"] = classes
	}
	var fns []any
	for _, f := range p.Functions {
		fns = append(fns, simplify(f))
	}
	if fns != nil {
		m["functions"] = fns
	}
	return m
}

func simplify(node any) any {
	switch n := node.(type) {
	case nil:
		return nil
	case *ClassDecl:
		var fields []any
		for _, f := range n.Fields {
			fields = append(fields, map[string]any{"name": f.Name, "type": f.Type.String()})
		}
		var methods []any
		for _, mth := range n.Methods {
			methods = append(methods, simplify(mth))
		}
		return map[string]any{"type": "ClassDecl", "name": n.Name, "public": n.IsPublic, "fields": fields, "methods": methods}
	case *FnDecl:
		var params []string
		for _, p := range n.Params {
			params = append(params, p.String())
		}
		var body []any
		for _, s := range n.Body {
			body = append(body, simplify(s))
		}
		ret := ""
		if n.ReturnType != nil {
			ret = n.ReturnType.String()
		}
		return map[string]any{"type": "FnDecl", "name": n.Name, "params": params, "return": ret, "body": body}
	case *LetStmt:
		return map[string]any{"type": "Let", "name": n.Name, "mut": n.IsMut, "init": simplify(n.Init)}
	case *ReturnStmt:
		return map[string]any{"type": "Return", "value": simplify(n.Value)}
	case *ExprStmt:
		return map[string]any{"type": "ExprStmt", "expr": simplify(n.X)}
	case *IfStmt:
		var then, els []any
		for _, s := range n.Then {
			then = append(then, simplify(s))
		}
		for _, s := range n.Else {
			els = append(els, simplify(s))
		}
		return map[string]any{"type": "If", "cond": simplify(n.Cond), "then": then, "else": els}
	case *WhileStmt:
		var body []any
		for _, s := range n.Body {
			body = append(body, simplify(s))
		}
		return map[string]any{"type": "While", "cond": simplify(n.Cond), "body": body}
	case *ForStmt:
		var body []any
		for _, s := range n.Body {
			body = append(body, simplify(s))
		}
		return map[string]any{"type": "For", "var": n.Var, "iter": simplify(n.Iter), "body": body}
	case *MatchStmt:
		var arms []any
		for _, a := range n.Arms {
			var body []any
			for _, s := range a.Body {
				body = append(body, simplify(s))
			}
			arms = append(arms, map[string]any{"pattern": a.Pattern, "bind": a.BindName, "body": body})
		}
		return map[string]any{"type": "Match", "subject": simplify(n.Subject), "arms": arms}
	case *NativeStmt:
		return map[string]any{"type": "Native", "code": n.Code}
	case *IntLit:
		return map[string]any{"type": "IntLit", "value": n.Value}
	case *FloatLit:
		return map[string]any{"type": "FloatLit", "value": n.Value}
	case *StringLit:
		return map[string]any{"type": "StringLit", "value": n.Value}
	case *BoolLit:
		return map[string]any{"type": "BoolLit", "value": n.Value}
	case *Ident:
		return map[string]any{"type": "Ident", "name": n.Name}
	case *Binary:
		return map[string]any{"type": "Binary", "op": n.Op, "left": simplify(n.Left), "right": simplify(n.Right)}
	case *Unary:
		return map[string]any{"type": "Unary", "op": n.Op, "x": simplify(n.X)}
	case *Call:
		var args []any
		for _, a := range n.Args {
			args = append(args, simplify(a))
		}
		return map[string]any{"type": "Call", "callee": simplify(n.Callee), "args": args}
	case *Member:
		return map[string]any{"type": "Member", "obj": simplify(n.Obj), "name": n.Name}
	case *Index:
		return map[string]any{"type": "Index", "obj": simplify(n.Obj), "idx": simplify(n.Idx)}
	case *Assign:
		return map[string]any{"type": "Assign", "target": simplify(n.Target), "value": simplify(n.Value)}
	case *Lambda:
		var params []string
		for _, p := range n.Params {
			params = append(params, p.String())
		}
		return map[string]any{"type": "Lambda", "params": params, "body": simplify(n.Body)}
	case *New:
		var args []any
		for _, a := range n.Args {
			args = append(args, simplify(a))
		}
		return map[string]any{"type": "New", "class": n.Class, "args": args}
	case *SomeExpr:
		return map[string]any{"type": "Some", "x": simplify(n.X)}
	case *NoneExpr:
		return map[string]any{"type": "None"}
	case *ThisExpr:
		return map[string]any{"type": "This"}
	case *ArrayLit:
		var elems []any
		for _, e := range n.Elems {
			elems = append(elems, simplify(e))
		}
		return map[string]any{"type": "Array", "elems": elems}
	case *InterpolatedString:
		return map[string]any{"type": "Interpolated", "raw": n.Raw}
	default:
		if stringer, ok := node.(fmt.Stringer); ok {
			return stringer.String()
		}
		return fmt.Sprintf("%v", node)
	}
}
