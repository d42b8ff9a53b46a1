package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, *errors.Reporter) {
	t.Helper()
	diags := errors.NewReporter("parser")
	l := lexer.New(src, "t.mg", diags)
	p := New(l, diags)
	return p.ParseProgram(), diags
}

func TestParseFunctionDecl(t *testing.T) {
	prog, diags := parse(t, `
		fn add(a: int, b: int) -> int {
			return a + b;
		}
	`)
	require.False(t, diags.HasError())
	require.Len(t, prog.Functions, 1)
	fn := prog.Functions[0]
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	require.IsType(t, &ast.IntType{}, fn.ReturnType)
}

func TestParseLambdaVsGroupedExpression(t *testing.T) {
	prog, diags := parse(t, `
		fn main() {
			let f = (x) => x + 1;
			let g = (1 + 2) * 3;
		}
	`)
	require.False(t, diags.HasError())
	body := prog.Functions[0].Body
	require.Len(t, body, 2)

	let1 := body[0].(*ast.LetStmt)
	require.IsType(t, &ast.Lambda{}, let1.Init)

	let2 := body[1].(*ast.LetStmt)
	bin, ok := let2.Init.(*ast.Binary)
	require.True(t, ok, "expected a binary expression for the grouped arithmetic")
	require.Equal(t, "*", bin.Op)
}

func TestParseGenericCallVsComparison(t *testing.T) {
	prog, diags := parse(t, `
		fn main() {
			let a = make<int>(1);
			let b = x < y;
		}
	`)
	require.False(t, diags.HasError())
	body := prog.Functions[0].Body

	let1 := body[0].(*ast.LetStmt)
	call, ok := let1.Init.(*ast.Call)
	require.True(t, ok, "expected a generic call")
	require.Len(t, call.Generics, 1)

	let2 := body[1].(*ast.LetStmt)
	require.IsType(t, &ast.Binary{}, let2.Init)
}

func TestParseClassWithFieldsAndMethods(t *testing.T) {
	prog, diags := parse(t, `
		class Point {
			public x: int;
			y: int;
			public fn sum() -> int {
				return this.x;
			}
		}
	`)
	require.False(t, diags.HasError())
	require.Len(t, prog.Classes, 1)
	cls := prog.Classes[0]
	require.Len(t, cls.Fields, 2)
	require.True(t, cls.Fields[0].IsPublic)
	require.False(t, cls.Fields[1].IsPublic)
	require.Len(t, cls.Methods, 1)
}

func TestParseMatchStatement(t *testing.T) {
	prog, diags := parse(t, `
		fn describe(x: int?) -> int {
			match (x) {
				Some(v) => { return v; },
				None => { return 0; },
			}
		}
	`)
	require.False(t, diags.HasError())
	body := prog.Functions[0].Body
	m, ok := body[0].(*ast.MatchStmt)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	require.Equal(t, "Some", m.Arms[0].Pattern)
	require.Equal(t, "v", m.Arms[0].BindName)
	require.Equal(t, "None", m.Arms[1].Pattern)
}

func TestParseInvalidAssignTargetReportsPAR003(t *testing.T) {
	_, diags := parse(t, `
		fn main() {
			1 + 2 = 3;
		}
	`)
	require.True(t, diags.HasError())
	found := false
	for _, r := range diags.Drain() {
		if r.Code == errors.PAR003 {
			found = true
		}
	}
	require.True(t, found, "expected a PAR003 diagnostic for a non-lvalue assignment target")
}

func TestParseNativeImportWithAliasAndSelectedSymbols(t *testing.T) {
	prog, diags := parse(t, `
		@native import <vector> as vec use { push_back, size };
		fn main() {}
	`)
	require.False(t, diags.HasError())
	require.Len(t, prog.NativeImports, 1)
	ni := prog.NativeImports[0]
	require.Equal(t, "vector", ni.Header)
	require.True(t, ni.IsSystem)
	require.Equal(t, "vec", ni.AliasNamespace)
	require.Equal(t, []string{"push_back", "size"}, ni.SelectedSymbols)
}

func TestParseArrayAndOptionTypes(t *testing.T) {
	prog, diags := parse(t, `
		fn find(xs: int[]) -> int?[] {
			return xs;
		}
	`)
	require.False(t, diags.HasError())
	fn := prog.Functions[0]
	require.IsType(t, &ast.ArrayType{}, fn.Params[0].Type)
	outer, ok := fn.ReturnType.(*ast.ArrayType)
	require.True(t, ok)
	require.IsType(t, &ast.OptionType{}, outer.Inner)
}
