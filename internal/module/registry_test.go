package module

import (
	"testing"

	"github.com/sunholo/magc/internal/errors"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	diags := errors.NewReporter("module")

	ok := r.Register(&Module{Name: "app.main"}, diags)
	if !ok || diags.HasError() {
		t.Fatalf("expected registration to succeed")
	}

	m, found := r.Get("app.main")
	if !found || m.Name != "app.main" {
		t.Fatalf("expected to find app.main, got %+v, %v", m, found)
	}
}

func TestRegistryRejectsCollision(t *testing.T) {
	r := NewRegistry()
	diags := errors.NewReporter("module")

	r.Register(&Module{Name: "app.main"}, diags)
	ok := r.Register(&Module{Name: "app.main"}, diags)

	if ok {
		t.Fatalf("expected second registration to fail")
	}
	if !diags.HasError() {
		t.Fatalf("expected a MOD001 diagnostic")
	}
}

func TestRegistryRejectsBuiltinName(t *testing.T) {
	r := NewRegistry()
	diags := errors.NewReporter("module")

	ok := r.Register(&Module{Name: "Std.io"}, diags)
	if ok || !diags.HasError() {
		t.Fatalf("expected registration of a builtin-shaped name to fail")
	}
}

func TestRegistryNamesPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	diags := errors.NewReporter("module")

	for _, name := range []string{"app.c", "app.a", "app.b"} {
		r.Register(&Module{Name: name}, diags)
	}

	got := r.Names()
	want := []string{"app.c", "app.a", "app.b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	diags := errors.NewReporter("module")
	r.Register(&Module{Name: "app.main"}, diags)
	r.Clear()

	if _, found := r.Get("app.main"); found {
		t.Fatalf("expected registry to be empty after Clear")
	}
	if len(r.Names()) != 0 {
		t.Fatalf("expected no names after Clear")
	}
}
