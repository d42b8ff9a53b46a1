// Package types implements the bidirectional type checker: inference for
// expressions, checking for statements with declared types, annotating
// every expression node via ast.SetTyped so codegen never sees a null type.
package types

import "github.com/sunholo/magc/internal/ast"

// typesEqual is structural: equal kinds and recursively equal
// inner/param/return/generic-arg types. Nominal classes additionally
// compare names.
func typesEqual(a, b ast.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *ast.IntType:
		_, ok := b.(*ast.IntType)
		return ok
	case *ast.FloatType:
		_, ok := b.(*ast.FloatType)
		return ok
	case *ast.StringType:
		_, ok := b.(*ast.StringType)
		return ok
	case *ast.BoolType:
		_, ok := b.(*ast.BoolType)
		return ok
	case *ast.VoidType:
		_, ok := b.(*ast.VoidType)
		return ok
	case *ast.ClassType:
		y, ok := b.(*ast.ClassType)
		return ok && x.Name == y.Name
	case *ast.OptionType:
		y, ok := b.(*ast.OptionType)
		return ok && typesEqual(x.Inner, y.Inner)
	case *ast.ArrayType:
		y, ok := b.(*ast.ArrayType)
		return ok && typesEqual(x.Inner, y.Inner)
	case *ast.FunctionType:
		y, ok := b.(*ast.FunctionType)
		if !ok || len(x.Params) != len(y.Params) || !typesEqual(x.Return, y.Return) {
			return false
		}
		for i := range x.Params {
			if !typesEqual(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return true
	case *ast.GenericType:
		y, ok := b.(*ast.GenericType)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !typesEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// isAssignable is typesEqual with a deliberate relaxation: assignments
// between structurally-equivalent optionals and arrays are permitted via
// the same recursive structural comparison, None (an optional of void) is
// assignable to any optional, and an empty array literal (an array of void)
// to any array. The checker never narrows numeric literal types.
func isAssignable(from, to ast.Type) bool {
	switch f := from.(type) {
	case *ast.OptionType:
		if _, ok := to.(*ast.OptionType); ok && isVoid(f.Inner) {
			return true
		}
	case *ast.ArrayType:
		if _, ok := to.(*ast.ArrayType); ok && isVoid(f.Inner) {
			return true
		}
	}
	return typesEqual(from, to)
}

// commonType returns a if a and b are equal, else nil ("None").
func commonType(a, b ast.Type) ast.Type {
	if typesEqual(a, b) {
		return a
	}
	return nil
}

func isNumeric(t ast.Type) bool {
	switch t.(type) {
	case *ast.IntType, *ast.FloatType:
		return true
	default:
		return false
	}
}

func isString(t ast.Type) bool {
	_, ok := t.(*ast.StringType)
	return ok
}

func isBool(t ast.Type) bool {
	_, ok := t.(*ast.BoolType)
	return ok
}

func isVoid(t ast.Type) bool {
	_, ok := t.(*ast.VoidType)
	return ok
}

func voidType() ast.Type { return &ast.VoidType{} }
func boolType() ast.Type { return &ast.BoolType{} }

func typeName(t ast.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}
