// Package parser implements a hand-written recursive-descent parser with
// Pratt-style operator precedence, producing an *ast.Program from a token
// stream. Every error is reported through the diagnostics reporter; the
// parser never panics and always resynchronizes to keep parsing.
package parser

import (
	"fmt"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

// precedence levels, lowest to highest.
const (
	LOWEST int = iota
	ASSIGNMENT
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	POSTFIX // call / member / index
)

var precedences = map[lexer.Kind]int{
	lexer.ASSIGN:   ASSIGNMENT,
	lexer.OR:       LOGICAL_OR,
	lexer.AND:      LOGICAL_AND,
	lexer.EQ:       EQUALITY,
	lexer.NEQ:      EQUALITY,
	lexer.LT:       COMPARISON,
	lexer.GT:       COMPARISON,
	lexer.LTE:      COMPARISON,
	lexer.GTE:      COMPARISON,
	lexer.PLUS:     ADDITIVE,
	lexer.MINUS:    ADDITIVE,
	lexer.STAR:     MULTIPLICATIVE,
	lexer.SLASH:    MULTIPLICATIVE,
	lexer.PERCENT:  MULTIPLICATIVE,
	lexer.LPAREN:   POSTFIX,
	lexer.DOT:      POSTFIX,
	lexer.LBRACKET: POSTFIX,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser consumes a token stream (produced eagerly by the lexer) and builds
// an ast.Program.
type Parser struct {
	toks  []lexer.Token
	pos   int
	diags *errors.Reporter

	prefixFns map[lexer.Kind]prefixParseFn
	infixFns  map[lexer.Kind]infixParseFn
}

// New creates a Parser over the full token stream produced by l.Tokenize().
func New(l *lexer.Lexer, diags *errors.Reporter) *Parser {
	p := &Parser{toks: l.Tokenize(), diags: diags}

	p.prefixFns = map[lexer.Kind]prefixParseFn{
		lexer.IDENT:        p.parseIdent,
		lexer.INT:          p.parseIntLit,
		lexer.FLOAT:        p.parseFloatLit,
		lexer.STRING:       p.parseStringLit,
		lexer.TRUE:         p.parseBoolLit,
		lexer.FALSE:        p.parseBoolLit,
		lexer.THIS:         p.parseThis,
		lexer.SOME:         p.parseSome,
		lexer.NONE:         p.parseNone,
		lexer.NEW:          p.parseNew,
		lexer.LPAREN:       p.parseGroupedOrLambda,
		lexer.LBRACKET:     p.parseArrayLit,
		lexer.MINUS:        p.parseUnary,
		lexer.NOT:          p.parseUnary,
		lexer.DOLLAR:       p.parseInterpolated,
	}
	p.infixFns = map[lexer.Kind]infixParseFn{
		lexer.PLUS: p.parseBinary, lexer.MINUS: p.parseBinary,
		lexer.STAR: p.parseBinary, lexer.SLASH: p.parseBinary, lexer.PERCENT: p.parseBinary,
		lexer.EQ: p.parseBinary, lexer.NEQ: p.parseBinary,
		lexer.LT: p.parseAngleOrComparison, lexer.GT: p.parseBinary, lexer.LTE: p.parseBinary, lexer.GTE: p.parseBinary,
		lexer.AND: p.parseBinary, lexer.OR: p.parseBinary,
		lexer.LPAREN:   p.parseCall,
		lexer.DOT:      p.parseMemberOrCall,
		lexer.LBRACKET: p.parseIndex,
		lexer.ASSIGN:   p.parseAssign,
	}
	return p
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(k lexer.Kind) bool  { return p.cur().Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peek().Kind == k }

func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if p.curIs(k) {
		return p.advance(), true
	}
	p.errorf(errors.PAR001, p.cur().Span, "expected %s, found %s", k, p.cur().Kind)
	return p.cur(), false
}

func (p *Parser) errorf(code string, span ast.Span, format string, args ...any) {
	p.diags.Error(code, fmt.Sprintf(format, args...), &span, "")
}

func (p *Parser) curPos() ast.Pos {
	s := p.cur().Span
	return ast.Pos{File: s.File, Line: s.Line, Column: s.Column}
}

func (p *Parser) toPos(s ast.Span) ast.Pos {
	return ast.Pos{File: s.File, Line: s.Line, Column: s.Column}
}

func (p *Parser) precedence(k lexer.Kind) int {
	if pr, ok := precedences[k]; ok {
		return pr
	}
	return LOWEST
}

// sync advances until a synchronization point (';', '}', or a
// top-level keyword), implementing panic-mode recovery without unwinding
// the call stack.
func (p *Parser) sync() {
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMICOLON) {
			p.advance()
			return
		}
		if p.curIs(lexer.RBRACE) {
			return
		}
		switch p.cur().Kind {
		case lexer.USING, lexer.CLASS, lexer.FN:
			return
		}
		p.advance()
	}
}

// ParseProgram parses the entire token stream into a Program. Declarations
// may appear in any order at the top level.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Pos: p.curPos()}
	for !p.curIs(lexer.EOF) {
		switch {
		case p.curIs(lexer.USING):
			prog.Usings = append(prog.Usings, p.parseUsing())
		case p.curIs(lexer.AT):
			if ni := p.parseNativeImport(); ni != nil {
				prog.NativeImports = append(prog.NativeImports, ni)
			}
		case p.curIs(lexer.PUBLIC) && p.peekIs(lexer.CLASS):
			p.advance()
			prog.Classes = append(prog.Classes, p.parseClass(true))
		case p.curIs(lexer.CLASS):
			prog.Classes = append(prog.Classes, p.parseClass(false))
		case p.curIs(lexer.PUBLIC) && p.peekIs(lexer.FN):
			p.advance()
			prog.Functions = append(prog.Functions, p.parseFn(true, false))
		case p.curIs(lexer.FN):
			prog.Functions = append(prog.Functions, p.parseFn(true, false))
		default:
			p.errorf(errors.PAR001, p.cur().Span, "expected a top-level declaration, found %s", p.cur().Kind)
			p.sync()
		}
	}
	return prog
}
