package codegen

import (
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

// cppType renders t following the fixed type mapping: Int->int,
// Float->double, String->std::string, Bool->bool, Void->void,
// Class(n)->n, Option(t)->std::optional<t>, Array(t)->std::vector<t>,
// Function(p...,r)->std::function<r(p...)>, Generic(n,args)->n<args>.
func cppType(t ast.Type) string {
	switch x := t.(type) {
	case nil:
		return "auto"
	case *ast.IntType:
		return "int"
	case *ast.FloatType:
		return "double"
	case *ast.StringType:
		return "std::string"
	case *ast.BoolType:
		return "bool"
	case *ast.VoidType:
		return "void"
	case *ast.ClassType:
		return x.Name
	case *ast.OptionType:
		return "std::optional<" + cppType(x.Inner) + ">"
	case *ast.ArrayType:
		return "std::vector<" + cppType(x.Inner) + ">"
	case *ast.FunctionType:
		params := make([]string, len(x.Params))
		for i, p := range x.Params {
			params[i] = cppType(p)
		}
		return "std::function<" + cppType(x.Return) + "(" + strings.Join(params, ", ") + ")>"
	case *ast.GenericType:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = cppType(a)
		}
		return x.Name + "<" + strings.Join(args, ", ") + ">"
	default:
		return "void"
	}
}

// cppFuncReturnType renders a function or method's declared return type,
// defaulting an omitted (nil) return type to void rather than auto: a
// forward-declared function is emitted and defined in two separate places,
// and `auto` return types can only be deduced from a definition a compiler
// has already seen, so an `auto`-returning function called before its own
// definition would not compile. `auto` remains cppType's answer for the
// genuinely inference-driven cases: omitted `let` types and lambda params.
func cppFuncReturnType(t ast.Type) string {
	if t == nil {
		return "void"
	}
	return cppType(t)
}
