package resolve

import (
	"testing"

	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
	"github.com/sunholo/magc/internal/module"
	"github.com/sunholo/magc/internal/parser"
)

func parseSource(t *testing.T, src string) (*module.Module, *errors.Reporter) {
	t.Helper()
	diags := errors.NewReporter("parse")
	l := lexer.New(src, "test.mg", diags)
	p := parser.New(l, diags)
	prog := p.ParseProgram()
	if diags.HasError() {
		t.Fatalf("unexpected parse errors: %+v", diags.Drain())
	}
	return &module.Module{Name: "app.main", Program: prog}, diags
}

func TestImportsBuiltinSkipped(t *testing.T) {
	mod, _ := parseSource(t, `using Std.io;`)
	reg := module.NewRegistry()
	diags := errors.NewReporter("import")

	Imports(reg, mod, diags)

	if diags.HasError() {
		t.Fatalf("builtin import should not error, got %+v", diags.Drain())
	}
	if len(mod.Imports) != 1 || mod.Imports[0] != "Std.io" {
		t.Fatalf("expected Std.io recorded, got %v", mod.Imports)
	}
}

func TestImportsSuffixMatch(t *testing.T) {
	mod, _ := parseSource(t, `using utils.helpers;`)
	reg := module.NewRegistry()
	regDiags := errors.NewReporter("module")
	reg.Register(&module.Module{Name: "app.utils.helpers"}, regDiags)

	diags := errors.NewReporter("import")
	Imports(reg, mod, diags)

	if diags.HasError() {
		t.Fatalf("expected suffix match to succeed, got %+v", diags.Drain())
	}
	if len(mod.Imports) != 1 || mod.Imports[0] != "app.utils.helpers" {
		t.Fatalf("expected app.utils.helpers resolved, got %v", mod.Imports)
	}
}

func TestImportsUnresolvable(t *testing.T) {
	mod, _ := parseSource(t, `using nowhere.thing;`)
	reg := module.NewRegistry()
	diags := errors.NewReporter("import")

	Imports(reg, mod, diags)

	if !diags.HasError() {
		t.Fatalf("expected IMP001 for unresolvable import")
	}
}
