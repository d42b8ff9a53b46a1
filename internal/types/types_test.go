package types

import (
	"testing"

	"github.com/sunholo/magc/internal/ast"
)

func TestTypesEqualStructural(t *testing.T) {
	a := &ast.ArrayType{Inner: &ast.IntType{}}
	b := &ast.ArrayType{Inner: &ast.IntType{}}
	if !typesEqual(a, b) {
		t.Fatalf("expected structurally equal array types to be equal")
	}

	c := &ast.ArrayType{Inner: &ast.StringType{}}
	if typesEqual(a, c) {
		t.Fatalf("expected array types with different element types to differ")
	}
}

func TestTypesEqualNominalClasses(t *testing.T) {
	a := &ast.ClassType{Name: "Foo"}
	b := &ast.ClassType{Name: "Foo"}
	c := &ast.ClassType{Name: "Bar"}
	if !typesEqual(a, b) {
		t.Fatalf("expected same-named classes to be equal")
	}
	if typesEqual(a, c) {
		t.Fatalf("expected differently-named classes to differ")
	}
}

func TestCommonTypeReturnsNilOnMismatch(t *testing.T) {
	if got := commonType(&ast.IntType{}, &ast.StringType{}); got != nil {
		t.Fatalf("expected nil for mismatched types, got %v", got)
	}
	if got := commonType(&ast.IntType{}, &ast.IntType{}); got == nil {
		t.Fatalf("expected a common type for equal types")
	}
}
