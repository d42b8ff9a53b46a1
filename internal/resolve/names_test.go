package resolve

import (
	"testing"

	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/module"
)

func TestNamesUndefinedIdentifier(t *testing.T) {
	mod, _ := parseSource(t, `
		fn main() -> int {
			return missing + 1;
		}
	`)
	diags := errors.NewReporter("names")
	Names(module.NewRegistry(), mod, diags)

	if !diags.HasError() {
		t.Fatalf("expected NAME001 for undefined identifier")
	}
}

func TestNamesRedeclarationInSameScope(t *testing.T) {
	mod, _ := parseSource(t, `
		fn main() -> int {
			let x = 1;
			let x = 2;
			return x;
		}
	`)
	diags := errors.NewReporter("names")
	Names(module.NewRegistry(), mod, diags)

	if !diags.HasError() {
		t.Fatalf("expected NAME002 for redeclared 'x'")
	}
}

func TestNamesShadowingInNestedScopeAllowed(t *testing.T) {
	mod, _ := parseSource(t, `
		fn main() -> int {
			let x = 1;
			if (true) {
				let x = 2;
			}
			return x;
		}
	`)
	diags := errors.NewReporter("names")
	Names(module.NewRegistry(), mod, diags)

	if diags.HasError() {
		t.Fatalf("expected shadowing to be allowed, got %+v", diags.Drain())
	}
}

func TestNamesForLoopBindsLoopVar(t *testing.T) {
	mod, _ := parseSource(t, `
		fn main() -> int {
			let xs = [1, 2, 3];
			for (x in xs) {
				let y = x;
			}
			return 0;
		}
	`)
	diags := errors.NewReporter("names")
	Names(module.NewRegistry(), mod, diags)

	if diags.HasError() {
		t.Fatalf("expected 'x' to be bound by the for loop, got %+v", diags.Drain())
	}
}

func TestNamesStdlibCallDeferred(t *testing.T) {
	mod, _ := parseSource(t, `
		fn main() -> int {
			return sqrt(4.0);
		}
	`)
	diags := errors.NewReporter("names")
	Names(module.NewRegistry(), mod, diags)

	if diags.HasError() {
		t.Fatalf("expected bare stdlib call to be deferred to the type checker, got %+v", diags.Drain())
	}
}
