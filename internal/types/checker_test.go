package types

import (
	"testing"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
	"github.com/sunholo/magc/internal/module"
	"github.com/sunholo/magc/internal/parser"
)

func checkSource(t *testing.T, src string) *errors.Reporter {
	t.Helper()
	parseDiags := errors.NewReporter("parse")
	l := lexer.New(src, "test.mg", parseDiags)
	p := parser.New(l, parseDiags)
	prog := p.ParseProgram()
	if parseDiags.HasError() {
		t.Fatalf("unexpected parse errors: %+v", parseDiags.Drain())
	}

	mod := &module.Module{Name: "app.main", Program: prog}
	diags := errors.NewReporter("types")
	Check(module.NewRegistry(), mod, diags)
	return diags
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	diags := checkSource(t, `
		fn main() -> int {
			return "not an int";
		}
	`)
	if !diags.HasError() {
		t.Fatalf("expected a return-type mismatch diagnostic")
	}
}

func TestCheckArithmeticOnBools(t *testing.T) {
	diags := checkSource(t, `
		fn main() -> int {
			let x = true + 1;
			return 0;
		}
	`)
	if !diags.HasError() {
		t.Fatalf("expected an operand-type diagnostic for 'true + 1'")
	}
}

func TestCheckStringConcatOverload(t *testing.T) {
	diags := checkSource(t, `
		fn main() -> string {
			let greeting = "hi " + "there";
			return greeting;
		}
	`)
	if diags.HasError() {
		t.Fatalf("expected string concatenation to type-check, got %+v", diags.Drain())
	}
}

func TestCheckCallArity(t *testing.T) {
	diags := checkSource(t, `
		fn add(a: int, b: int) -> int {
			return a + b;
		}
		fn main() -> int {
			return add(1);
		}
	`)
	if !diags.HasError() {
		t.Fatalf("expected an arity diagnostic for add(1)")
	}
}

func TestCheckIndexingNonArray(t *testing.T) {
	diags := checkSource(t, `
		fn main() -> int {
			let x = 1;
			return x[0];
		}
	`)
	if !diags.HasError() {
		t.Fatalf("expected an indexing diagnostic")
	}
}

func TestCheckModuleCallEscapeHatch(t *testing.T) {
	diags := checkSource(t, `
		using Std.io;
		fn main() -> void {
			Std.io.println("hello");
		}
	`)
	if diags.HasError() {
		t.Fatalf("expected module-call escape hatch to accept Std chains, got %+v", diags.Drain())
	}
}

func TestCheckPrivateFieldAccessFromOutsideClass(t *testing.T) {
	diags := checkSource(t, `
		class Box {
			secret: int;
		}
		fn main() -> int {
			let b = new Box(1);
			return b.secret;
		}
	`)
	found := false
	for _, r := range diags.Drain() {
		if r.Code == errors.NAME003 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a NAME003 diagnostic for accessing a private field from outside its class")
	}
}

func TestCheckPrivateFieldAccessFromWithinClass(t *testing.T) {
	diags := checkSource(t, `
		class Box {
			secret: int;
			public fn reveal() -> int {
				return this.secret;
			}
		}
		fn main() -> int {
			return 0;
		}
	`)
	if diags.HasError() {
		t.Fatalf("expected a method to freely access its own class's private field, got %+v", diags.Drain())
	}
}

func TestCheckPrivateMethodCallFromOutsideClass(t *testing.T) {
	diags := checkSource(t, `
		class Box {
			fn helper() -> int {
				return 1;
			}
		}
		fn main() -> int {
			let b = new Box();
			return b.helper();
		}
	`)
	found := false
	for _, r := range diags.Drain() {
		if r.Code == errors.NAME003 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a NAME003 diagnostic for calling a private method from outside its class")
	}
}

func TestCheckAnnotatesEveryExpression(t *testing.T) {
	parseDiags := errors.NewReporter("parse")
	src := `
		fn main() -> int {
			return 1 + 2;
		}
	`
	l := lexer.New(src, "test.mg", parseDiags)
	p := parser.New(l, parseDiags)
	prog := p.ParseProgram()

	mod := &module.Module{Name: "app.main", Program: prog}
	Check(module.NewRegistry(), mod, errors.NewReporter("types"))

	ret := prog.Functions[0].Body[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.Binary)
	if ast.Typed(bin) == nil {
		t.Fatalf("expected the binary expression to carry a type annotation")
	}
}
