package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/magc/internal/errors"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeOperatorsAndPunctuation(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`a <= b && c != d || e => f -> g`, "t.mg", diags)
	toks := l.Tokenize()
	require.False(t, diags.HasError())

	got := kinds(toks)
	want := []Kind{IDENT, LTE, IDENT, AND, IDENT, NEQ, IDENT, OR, IDENT, FARROW, IDENT, ARROW, IDENT, EOF}
	if diff := cmp.Diff(want, got, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`let mut fn classy`, "t.mg", diags)
	toks := l.Tokenize()
	got := kinds(toks)
	// "classy" must not be misclassified as the "class" keyword by prefix.
	want := []Kind{LET, MUT, FN, IDENT, EOF}
	if diff := cmp.Diff(want, got, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`"hello\nworld\t!"`, "t.mg", diags)
	toks := l.Tokenize()
	require.False(t, diags.HasError())
	require.Len(t, toks, 2)
	require.Equal(t, STRING, toks[0].Kind)
	require.Equal(t, "hello\nworld\t!", toks[0].Lexeme)
}

func TestUnterminatedStringReportsLEX001(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`"unterminated`, "t.mg", diags)
	l.Tokenize()
	require.True(t, diags.HasError())
	reports := diags.Drain()
	require.Equal(t, errors.LEX001, reports[0].Code)
}

func TestUnknownEscapeReportsLEX002(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`"bad\qescape"`, "t.mg", diags)
	l.Tokenize()
	require.True(t, diags.HasError())
	require.Equal(t, errors.LEX002, diags.Drain()[0].Code)
}

func TestUnknownCharacterReportsLEX003(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New("let x = 1 ~ 2;", "t.mg", diags)
	l.Tokenize()
	require.True(t, diags.HasError())
	require.Equal(t, errors.LEX003, diags.Drain()[0].Code)
}

func TestInvalidNumericSuffixReportsLEX004(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New("let x = 123abc;", "t.mg", diags)
	l.Tokenize()
	require.True(t, diags.HasError())
	require.Equal(t, errors.LEX004, diags.Drain()[0].Code)
}

func TestUnterminatedNativeBlockReportsLEX005(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New(`@cpp { int x = 1;`, "t.mg", diags)
	l.Tokenize()
	require.True(t, diags.HasError())
	require.Equal(t, errors.LEX005, diags.Drain()[0].Code)
}

func TestNativeBlockCapturesVerbatimBody(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New("@cpp { if (x) { return 1; } }", "t.mg", diags)
	toks := l.Tokenize()
	require.False(t, diags.HasError())
	require.Equal(t, NATIVE_BLOCK, toks[0].Kind)
	require.Equal(t, " if (x) { return 1; } ", toks[0].Lexeme)
}

func TestFloatVsIntLiterals(t *testing.T) {
	diags := errors.NewReporter("lexer")
	l := New("1 2.5 100", "t.mg", diags)
	toks := l.Tokenize()
	require.False(t, diags.HasError())
	require.Equal(t, INT, toks[0].Kind)
	require.Equal(t, FLOAT, toks[1].Kind)
	require.Equal(t, "2.5", toks[1].Lexeme)
	require.Equal(t, INT, toks[2].Kind)
}
