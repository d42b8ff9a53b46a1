package codegen

import (
	"strings"
	"testing"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
	"github.com/sunholo/magc/internal/module"
	"github.com/sunholo/magc/internal/parser"
	"github.com/sunholo/magc/internal/types"
)

func generateSource(t *testing.T, src string) string {
	t.Helper()
	diags := errors.NewReporter("test")
	l := lexer.New(src, "test.mg", diags)
	p := parser.New(l, diags)
	prog := p.ParseProgram()
	if diags.HasError() {
		t.Fatalf("unexpected parse errors: %+v", diags.Drain())
	}

	mod := &module.Module{Name: "app.main", Program: prog}
	types.Check(module.NewRegistry(), mod, diags)
	if diags.HasError() {
		t.Fatalf("unexpected type errors: %+v", diags.Drain())
	}

	out, err := Generate(prog)
	if err != nil {
		t.Fatalf("Generate returned an error: %v", err)
	}
	return out
}

func TestGenerateMainAppendsImplicitReturn(t *testing.T) {
	out := generateSource(t, `
		fn main() {
			let x = 1;
		}
	`)
	if !strings.Contains(out, "int main() {") {
		t.Fatalf("expected int main(), got:\n%s", out)
	}
	if !strings.Contains(out, "return 0;") {
		t.Fatalf("expected implicit return 0, got:\n%s", out)
	}
}

func TestGenerateClassConstructor(t *testing.T) {
	out := generateSource(t, `
		class Point {
			x: int;
			y: int;
		}
		fn main() {}
	`)
	if !strings.Contains(out, "Point(int x_, int y_) : x(x_), y(y_) {}") {
		t.Fatalf("expected an argumented constructor, got:\n%s", out)
	}
}

func TestGenerateOptionAndArrayTypes(t *testing.T) {
	out := generateSource(t, `
		fn find(xs: int[]) -> int? {
			return None;
		}
		fn main() {}
	`)
	if !strings.Contains(out, "std::optional<int> find(std::vector<int> xs)") {
		t.Fatalf("expected mapped option/array types, got:\n%s", out)
	}
}

func TestGenerateMatchLowersToIfElse(t *testing.T) {
	out := generateSource(t, `
		fn describe(x: int?) -> int {
			match (x) {
				Some(v) => { return v; },
				None => { return 0; },
			}
		}
		fn main() {}
	`)
	if !strings.Contains(out, ".has_value()") || !strings.Contains(out, ".value()") {
		t.Fatalf("expected has_value/value lowering, got:\n%s", out)
	}
}

func TestGenerateInterpolatedString(t *testing.T) {
	out := generateSource(t, `
		fn greet(name: string) -> string {
			return $"hello {name}";
		}
		fn main() {}
	`)
	if !strings.Contains(out, "to_string(name)") {
		t.Fatalf("expected to_string(name) in interpolation, got:\n%s", out)
	}
}

func TestGenerateLambdaUsesValueCapture(t *testing.T) {
	out := generateSource(t, `
		fn main() {
			let f = (x) => x;
		}
	`)
	if !strings.Contains(out, "[=](") {
		t.Fatalf("expected [=] capture, got:\n%s", out)
	}
}

func TestGenerateClassSeparatesPublicAndPrivateMembers(t *testing.T) {
	out := generateSource(t, `
		class Counter {
			public count: int;
			step: int;
			public fn value() -> int {
				return this.count;
			}
			fn bump() -> int {
				return this.step;
			}
		}
		fn main() {}
	`)
	publicIdx := strings.Index(out, "public:")
	privateIdx := strings.Index(out, "private:")
	if publicIdx == -1 || privateIdx == -1 || privateIdx < publicIdx {
		t.Fatalf("expected a private: section after public:, got:\n%s", out)
	}
	if strings.Index(out, "int count;") > privateIdx {
		t.Fatalf("expected public field count before private: section, got:\n%s", out)
	}
	if strings.Index(out, "int step;") < privateIdx {
		t.Fatalf("expected private field step after private: section, got:\n%s", out)
	}
	if strings.Index(out, "value()") > privateIdx {
		t.Fatalf("expected public method value() before private: section, got:\n%s", out)
	}
	if strings.Index(out, "bump()") < privateIdx {
		t.Fatalf("expected private method bump() after private: section, got:\n%s", out)
	}
}

func TestGenerateOmittedReturnTypeDefaultsToVoid(t *testing.T) {
	out := generateSource(t, `
		fn log() {
			Std.println("hi");
		}
		fn main() {
			log();
		}
	`)
	if !strings.Contains(out, "void log();") {
		t.Fatalf("expected a void forward declaration for an omitted return type, got:\n%s", out)
	}
	if !strings.Contains(out, "void log() {") {
		t.Fatalf("expected a void definition for an omitted return type, got:\n%s", out)
	}
	if strings.Contains(out, "auto log(") {
		t.Fatalf("did not expect auto for an omitted function return type, got:\n%s", out)
	}
}

func TestGenerateStdPrintCallResolvesToPreludeSymbol(t *testing.T) {
	out := generateSource(t, `
		fn main() {
			Std.print("hi");
			Std.println("there");
		}
	`)
	if !strings.Contains(out, "Std::print(") {
		t.Fatalf("expected Std.print to lower to Std::print, got:\n%s", out)
	}
	if !strings.Contains(out, "Std::println(") {
		t.Fatalf("expected Std.println to lower to Std::println, got:\n%s", out)
	}
	if !strings.Contains(prelude, "inline void print(const std::string& s)") {
		t.Fatalf("expected print to be declared directly in namespace Std, got prelude:\n%s", prelude)
	}
	if strings.Contains(prelude, "namespace io {") {
		t.Fatalf("expected the io submodule to be gone now that print/println live in Std directly")
	}
}

func TestInterpolateNoHoles(t *testing.T) {
	got := interpolate("plain text")
	want := `std::string("plain text")`
	if got != want {
		t.Fatalf("interpolate(%q) = %q, want %q", "plain text", got, want)
	}
}

func TestCppTypeMapping(t *testing.T) {
	tests := []struct {
		in   ast.Type
		want string
	}{
		{&ast.IntType{}, "int"},
		{&ast.FloatType{}, "double"},
		{&ast.StringType{}, "std::string"},
		{&ast.BoolType{}, "bool"},
		{&ast.VoidType{}, "void"},
		{&ast.OptionType{Inner: &ast.IntType{}}, "std::optional<int>"},
		{&ast.ArrayType{Inner: &ast.StringType{}}, "std::vector<std::string>"},
	}
	for _, tt := range tests {
		if got := cppType(tt.in); got != tt.want {
			t.Errorf("cppType(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
