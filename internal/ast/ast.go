// Package ast defines the immutable tree types produced by the parser and
// shared read-only by every later phase of the pipeline.
package ast

import (
	"fmt"
	"strings"
)

// Node is the base interface implemented by every AST type.
type Node interface {
	String() string
	Position() Pos
}

// Pos identifies a single point in a named source file.
type Pos struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span identifies a byte range in a named source file. Every token, AST
// node, and diagnostic carries a span; spans propagate through phases
// unchanged.
type Span struct {
	File   string
	Line   int
	Column int
	Length int
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Type is implemented by every type node.
type Type interface {
	Node
	typeNode()
}

// ---------------------------------------------------------------------------
// Program / top level
// ---------------------------------------------------------------------------

// Program is the root of one parsed source file.
type Program struct {
	Usings        []*UsingDecl
	NativeImports []*NativeImport
	Classes       []*ClassDecl
	Functions     []*FnDecl
	Pos           Pos
}

func (p *Program) Position() Pos { return p.Pos }
func (p *Program) String() string {
	var parts []string
	for _, u := range p.Usings {
		parts = append(parts, u.String())
	}
	for _, n := range p.NativeImports {
		parts = append(parts, n.String())
	}
	for _, c := range p.Classes {
		parts = append(parts, c.String())
	}
	for _, f := range p.Functions {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "\n")
}

// UsingDecl is a dotted module import path: `using math.basic;`.
type UsingDecl struct {
	Path string
	Pos  Pos
}

func (u *UsingDecl) Position() Pos  { return u.Pos }
func (u *UsingDecl) String() string { return "using " + u.Path }

// NativeImport is a `@native import <header>` style declaration selecting
// native symbols to make available to `@cpp` blocks.
type NativeImport struct {
	Header          string
	IsSystem        bool
	AliasNamespace  string
	SelectedSymbols []string
	Pos             Pos
}

func (n *NativeImport) Position() Pos { return n.Pos }
func (n *NativeImport) String() string {
	brackets := "\"%s\""
	if n.IsSystem {
		brackets = "<%s>"
	}
	return fmt.Sprintf("native import "+brackets, n.Header)
}

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// IntType, FloatType, StringType, BoolType, VoidType are the primitive types.
type IntType struct{ Pos Pos }
type FloatType struct{ Pos Pos }
type StringType struct{ Pos Pos }
type BoolType struct{ Pos Pos }
type VoidType struct{ Pos Pos }

func (t *IntType) Position() Pos   { return t.Pos }
func (t *IntType) String() string  { return "int" }
func (t *IntType) typeNode()       {}
func (t *FloatType) Position() Pos { return t.Pos }
func (t *FloatType) String() string {
	return "float"
}
func (t *FloatType) typeNode()     {}
func (t *StringType) Position() Pos { return t.Pos }
func (t *StringType) String() string {
	return "string"
}
func (t *StringType) typeNode()    {}
func (t *BoolType) Position() Pos  { return t.Pos }
func (t *BoolType) String() string { return "bool" }
func (t *BoolType) typeNode()      {}
func (t *VoidType) Position() Pos  { return t.Pos }
func (t *VoidType) String() string { return "void" }
func (t *VoidType) typeNode()      {}

// ClassType is a nominal reference to a user-declared class.
type ClassType struct {
	Name string
	Pos  Pos
}

func (t *ClassType) Position() Pos  { return t.Pos }
func (t *ClassType) String() string { return t.Name }
func (t *ClassType) typeNode()      {}

// OptionType is `T?` / `Option<T>`.
type OptionType struct {
	Inner Type
	Pos   Pos
}

func (t *OptionType) Position() Pos  { return t.Pos }
func (t *OptionType) String() string { return fmt.Sprintf("%s?", t.Inner) }
func (t *OptionType) typeNode()      {}

// ArrayType is `T[]`.
type ArrayType struct {
	Inner Type
	Pos   Pos
}

func (t *ArrayType) Position() Pos  { return t.Pos }
func (t *ArrayType) String() string { return fmt.Sprintf("%s[]", t.Inner) }
func (t *ArrayType) typeNode()      {}

// FunctionType is `(P1, P2) -> R`.
type FunctionType struct {
	Params []Type
	Return Type
	Pos    Pos
}

func (t *FunctionType) Position() Pos { return t.Pos }
func (t *FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Return)
}
func (t *FunctionType) typeNode() {}

// GenericType is `Name<Args...>`, e.g. `Map<String, Int>`. The checker
// passes these through to codegen without monomorphization (see
// DESIGN.md's Open Question decision).
type GenericType struct {
	Name string
	Args []Type
	Pos  Pos
}

func (t *GenericType) Position() Pos { return t.Pos }
func (t *GenericType) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(parts, ", "))
}
func (t *GenericType) typeNode() {}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// ClassDecl is a class declaration with fields and methods.
type ClassDecl struct {
	Name     string
	IsPublic bool
	Fields   []*FieldDecl
	Methods  []*FnDecl
	Pos      Pos
}

func (c *ClassDecl) Position() Pos { return c.Pos }
func (c *ClassDecl) String() string {
	return fmt.Sprintf("class %s { %d fields, %d methods }", c.Name, len(c.Fields), len(c.Methods))
}

// FieldDecl is one field of a class.
type FieldDecl struct {
	Name     string
	Type     Type
	IsPublic bool
	IsStatic bool
	Init     Expr // optional
	Pos      Pos
}

func (f *FieldDecl) Position() Pos  { return f.Pos }
func (f *FieldDecl) String() string { return fmt.Sprintf("%s: %s", f.Name, f.Type) }

// Param is one function or lambda parameter. Type may be nil for lambda
// parameters whose type is left to be inferred.
type Param struct {
	Name string
	Type Type
	Pos  Pos
}

func (p *Param) Position() Pos { return p.Pos }
func (p *Param) String() string {
	if p.Type == nil {
		return p.Name
	}
	return fmt.Sprintf("%s: %s", p.Name, p.Type)
}

// FnDecl is a free function or a class method.
type FnDecl struct {
	Name       string
	Params     []*Param
	ReturnType Type
	Body       []Stmt
	IsPublic   bool
	IsStatic   bool
	Pos        Pos
}

func (f *FnDecl) Position() Pos { return f.Pos }
func (f *FnDecl) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := ""
	if f.ReturnType != nil {
		ret = " -> " + f.ReturnType.String()
	}
	return fmt.Sprintf("fn %s(%s)%s", f.Name, strings.Join(parts, ", "), ret)
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// LetStmt is `let [mut] name[: Type] = init;`.
type LetStmt struct {
	Name  string
	IsMut bool
	Type  Type // optional, nil means infer
	Init  Expr
	Pos   Pos
}

func (s *LetStmt) Position() Pos  { return s.Pos }
func (s *LetStmt) String() string { return fmt.Sprintf("let %s = %s", s.Name, s.Init) }
func (s *LetStmt) stmtNode()      {}

// ReturnStmt is `return [value];`.
type ReturnStmt struct {
	Value Expr // optional
	Pos   Pos
}

func (s *ReturnStmt) Position() Pos { return s.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}
func (s *ReturnStmt) stmtNode() {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	X   Expr
	Pos Pos
}

func (s *ExprStmt) Position() Pos  { return s.Pos }
func (s *ExprStmt) String() string { return s.X.String() }
func (s *ExprStmt) stmtNode()      {}

// IfStmt is `if (cond) { ... } else { ... }`.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when absent
	Pos  Pos
}

func (s *IfStmt) Position() Pos  { return s.Pos }
func (s *IfStmt) String() string { return fmt.Sprintf("if (%s) { ... }", s.Cond) }
func (s *IfStmt) stmtNode()      {}

// WhileStmt is `while (cond) { ... }`.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Pos  Pos
}

func (s *WhileStmt) Position() Pos  { return s.Pos }
func (s *WhileStmt) String() string { return fmt.Sprintf("while (%s) { ... }", s.Cond) }
func (s *WhileStmt) stmtNode()      {}

// ForStmt is `for (name in iter) { ... }`.
type ForStmt struct {
	Var  string
	Iter Expr
	Body []Stmt
	Pos  Pos
}

func (s *ForStmt) Position() Pos { return s.Pos }
func (s *ForStmt) String() string {
	return fmt.Sprintf("for (%s in %s) { ... }", s.Var, s.Iter)
}
func (s *ForStmt) stmtNode() {}

// MatchStmt is a `match` statement over a subject expression.
type MatchStmt struct {
	Subject Expr
	Arms    []*MatchArm
	Pos     Pos
}

func (s *MatchStmt) Position() Pos  { return s.Pos }
func (s *MatchStmt) String() string { return fmt.Sprintf("match (%s) { ... }", s.Subject) }
func (s *MatchStmt) stmtNode()      {}

// MatchArm is one arm of a match statement. Pattern is one of "Some",
// "None", a bare identifier (catch-all binding), or a literal.
type MatchArm struct {
	Pattern  string
	BindName string // set when Pattern == "Some"
	Body     []Stmt
	Pos      Pos
}

func (a *MatchArm) Position() Pos  { return a.Pos }
func (a *MatchArm) String() string { return fmt.Sprintf("%s => { ... }", a.Pattern) }

// BlockStmt is a brace-delimited sequence of statements used wherever the
// grammar admits a nested block (as opposed to a function/method body,
// which is represented directly as []Stmt).
type BlockStmt struct {
	Stmts []Stmt
	Pos   Pos
}

func (s *BlockStmt) Position() Pos  { return s.Pos }
func (s *BlockStmt) String() string { return "{ ... }" }
func (s *BlockStmt) stmtNode()      {}

// NativeStmt is an embedded `@cpp { ... }` escape block. Code is the
// verbatim, unparsed body captured by the lexer.
type NativeStmt struct {
	Code string
	Pos  Pos
}

func (s *NativeStmt) Position() Pos  { return s.Pos }
func (s *NativeStmt) String() string { return "@cpp { ... }" }
func (s *NativeStmt) stmtNode()      {}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// IntLit, FloatLit, StringLit, BoolLit are literal expressions.
type IntLit struct {
	Value int64
	Pos   Pos
	Typ   Type
}
type FloatLit struct {
	Value float64
	Pos   Pos
	Typ   Type
}
type StringLit struct {
	Value string
	Pos   Pos
	Typ   Type
}
type BoolLit struct {
	Value bool
	Pos   Pos
	Typ   Type
}

func (e *IntLit) Position() Pos    { return e.Pos }
func (e *IntLit) String() string   { return fmt.Sprintf("%d", e.Value) }
func (e *IntLit) exprNode()        {}
func (e *FloatLit) Position() Pos  { return e.Pos }
func (e *FloatLit) String() string { return fmt.Sprintf("%g", e.Value) }
func (e *FloatLit) exprNode()      {}
func (e *StringLit) Position() Pos { return e.Pos }
func (e *StringLit) String() string {
	return fmt.Sprintf("%q", e.Value)
}
func (e *StringLit) exprNode()    {}
func (e *BoolLit) Position() Pos  { return e.Pos }
func (e *BoolLit) String() string { return fmt.Sprintf("%t", e.Value) }
func (e *BoolLit) exprNode()      {}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Pos  Pos
	Typ  Type
}

func (e *Ident) Position() Pos  { return e.Pos }
func (e *Ident) String() string { return e.Name }
func (e *Ident) exprNode()      {}

// Binary is a binary operator expression.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Pos
	Typ   Type
}

func (e *Binary) Position() Pos  { return e.Pos }
func (e *Binary) String() string { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
func (e *Binary) exprNode()      {}

// Unary is a unary operator expression.
type Unary struct {
	Op  string
	X   Expr
	Pos Pos
	Typ Type
}

func (e *Unary) Position() Pos  { return e.Pos }
func (e *Unary) String() string { return fmt.Sprintf("(%s%s)", e.Op, e.X) }
func (e *Unary) exprNode()      {}

// Call is a function/method call with optional explicit generic arguments.
type Call struct {
	Callee   Expr
	Generics []Type
	Args     []Expr
	Pos      Pos
	Typ      Type
}

func (e *Call) Position() Pos { return e.Pos }
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}
func (e *Call) exprNode() {}

// Member is `obj.name`.
type Member struct {
	Obj  Expr
	Name string
	Pos  Pos
	Typ  Type
}

func (e *Member) Position() Pos  { return e.Pos }
func (e *Member) String() string { return fmt.Sprintf("%s.%s", e.Obj, e.Name) }
func (e *Member) exprNode()      {}

// Index is `obj[idx]`.
type Index struct {
	Obj Expr
	Idx Expr
	Pos Pos
	Typ Type
}

func (e *Index) Position() Pos  { return e.Pos }
func (e *Index) String() string { return fmt.Sprintf("%s[%s]", e.Obj, e.Idx) }
func (e *Index) exprNode()      {}

// Assign is `target = value`. Target must be an l-value: *Ident, *Member,
// or *Index.
type Assign struct {
	Target Expr
	Value  Expr
	Pos    Pos
	Typ    Type
}

func (e *Assign) Position() Pos  { return e.Pos }
func (e *Assign) String() string { return fmt.Sprintf("%s = %s", e.Target, e.Value) }
func (e *Assign) exprNode()      {}

// Lambda is an anonymous function literal. Param.Type may be nil ("to be
// inferred").
type Lambda struct {
	Params []*Param
	Ret    Type // optional
	Body   Expr
	Pos    Pos
	Typ    Type
}

func (e *Lambda) Position() Pos { return e.Pos }
func (e *Lambda) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), e.Body)
}
func (e *Lambda) exprNode() {}

// New is `new ClassName(args...)`.
type New struct {
	Class string
	Args  []Expr
	Pos   Pos
	Typ   Type
}

func (e *New) Position() Pos { return e.Pos }
func (e *New) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", e.Class, strings.Join(args, ", "))
}
func (e *New) exprNode() {}

// SomeExpr wraps a value as `Some(e)`.
type SomeExpr struct {
	X   Expr
	Pos Pos
	Typ Type
}

func (e *SomeExpr) Position() Pos  { return e.Pos }
func (e *SomeExpr) String() string { return fmt.Sprintf("Some(%s)", e.X) }
func (e *SomeExpr) exprNode()      {}

// NoneExpr is the `None` literal.
type NoneExpr struct {
	Pos Pos
	Typ Type
}

func (e *NoneExpr) Position() Pos  { return e.Pos }
func (e *NoneExpr) String() string { return "None" }
func (e *NoneExpr) exprNode()      {}

// ThisExpr is the `this` receiver inside a method body.
type ThisExpr struct {
	Pos Pos
	Typ Type
}

func (e *ThisExpr) Position() Pos  { return e.Pos }
func (e *ThisExpr) String() string { return "this" }
func (e *ThisExpr) exprNode()      {}

// ArrayLit is an array literal `[e1, e2, ...]`.
type ArrayLit struct {
	Elems []Expr
	Pos   Pos
	Typ   Type
}

func (e *ArrayLit) Position() Pos { return e.Pos }
func (e *ArrayLit) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
func (e *ArrayLit) exprNode() {}

// InterpolatedString is a `$"..."` literal. Raw is the unparsed body
// including `{name}` holes; interpolation is expanded by codegen.
type InterpolatedString struct {
	Raw string
	Pos Pos
	Typ Type
}

func (e *InterpolatedString) Position() Pos  { return e.Pos }
func (e *InterpolatedString) String() string { return fmt.Sprintf("$%q", e.Raw) }
func (e *InterpolatedString) exprNode()      {}

// Typed returns the inferred type recorded on an expression, or nil if the
// expression has not been through the type checker. Codegen and later
// passes should use this instead of type-switching on every Expr variant
// when they only need the annotation.
func Typed(e Expr) Type {
	switch n := e.(type) {
	case *IntLit:
		return n.Typ
	case *FloatLit:
		return n.Typ
	case *StringLit:
		return n.Typ
	case *BoolLit:
		return n.Typ
	case *Ident:
		return n.Typ
	case *Binary:
		return n.Typ
	case *Unary:
		return n.Typ
	case *Call:
		return n.Typ
	case *Member:
		return n.Typ
	case *Index:
		return n.Typ
	case *Assign:
		return n.Typ
	case *Lambda:
		return n.Typ
	case *New:
		return n.Typ
	case *SomeExpr:
		return n.Typ
	case *NoneExpr:
		return n.Typ
	case *ThisExpr:
		return n.Typ
	case *ArrayLit:
		return n.Typ
	case *InterpolatedString:
		return n.Typ
	default:
		return nil
	}
}

// SetTyped annotates an expression with its inferred type. Called exactly
// once per expression, by the type checker.
func SetTyped(e Expr, t Type) {
	switch n := e.(type) {
	case *IntLit:
		n.Typ = t
	case *FloatLit:
		n.Typ = t
	case *StringLit:
		n.Typ = t
	case *BoolLit:
		n.Typ = t
	case *Ident:
		n.Typ = t
	case *Binary:
		n.Typ = t
	case *Unary:
		n.Typ = t
	case *Call:
		n.Typ = t
	case *Member:
		n.Typ = t
	case *Index:
		n.Typ = t
	case *Assign:
		n.Typ = t
	case *Lambda:
		n.Typ = t
	case *New:
		n.Typ = t
	case *SomeExpr:
		n.Typ = t
	case *NoneExpr:
		n.Typ = t
	case *ThisExpr:
		n.Typ = t
	case *ArrayLit:
		n.Typ = t
	case *InterpolatedString:
		n.Typ = t
	}
}
