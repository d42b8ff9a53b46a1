package types

import "github.com/sunholo/magc/internal/ast"

// builtinSignature describes a stdlib function's parameter and return
// types for call checking. When Params is non-nil, the call's argument
// count must equal len(Params); a nil Params leaves the count unchecked.
// Argument types are not compared against Params.
type builtinSignature struct {
	Params []ast.Type
	Return ast.Type
}

// builtins is the bare-name stdlib signature table consulted for calls
// whose callee is a known stdlib function name, per the type checker's
// call-checking rule.
var builtins = map[string]builtinSignature{
	"parseInt":    {Params: []ast.Type{&ast.StringType{}}, Return: &ast.OptionType{Inner: &ast.IntType{}}},
	"parseFloat":  {Params: []ast.Type{&ast.StringType{}}, Return: &ast.OptionType{Inner: &ast.FloatType{}}},
	"sqrt":        {Params: []ast.Type{&ast.FloatType{}}, Return: &ast.FloatType{}},
	"abs":         {Params: []ast.Type{&ast.FloatType{}}, Return: &ast.FloatType{}},
	"length":      {Params: nil, Return: &ast.IntType{}},
	"isSome":      {Params: nil, Return: &ast.BoolType{}},
	"isNone":      {Params: nil, Return: &ast.BoolType{}},
	"toString":    {Params: nil, Return: &ast.StringType{}},
	"print":       {Params: []ast.Type{&ast.StringType{}}, Return: &ast.VoidType{}},
	"println":     {Params: []ast.Type{&ast.StringType{}}, Return: &ast.VoidType{}},
}

func lookupBuiltin(name string) (builtinSignature, bool) {
	sig, ok := builtins[name]
	return sig, ok
}
