package parser

import (
	"strconv"

	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

// parseExpr is the Pratt entry point: parse a prefix expression, then fold
// in infix/postfix operators whose precedence exceeds the caller's floor.
func (p *Parser) parseExpr(precedence int) ast.Expr {
	prefix := p.prefixFns[p.cur().Kind]
	if prefix == nil {
		p.errorf(errors.PAR001, p.cur().Span, "unexpected token %s in expression", p.cur().Kind)
		tok := p.advance()
		return &ast.Ident{Name: "<error>", Pos: p.toPos(tok.Span)}
	}
	left := prefix()

	for !p.curIs(lexer.SEMICOLON) && precedence < p.precedence(p.cur().Kind) {
		infix := p.infixFns[p.cur().Kind]
		if infix == nil {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdent() ast.Expr {
	tok := p.advance()
	return &ast.Ident{Name: tok.Lexeme, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseIntLit() ast.Expr {
	tok := p.advance()
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		p.errorf(errors.PAR001, tok.Span, "invalid integer literal '%s'", tok.Lexeme)
	}
	return &ast.IntLit{Value: v, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseFloatLit() ast.Expr {
	tok := p.advance()
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		p.errorf(errors.PAR001, tok.Span, "invalid float literal '%s'", tok.Lexeme)
	}
	return &ast.FloatLit{Value: v, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseStringLit() ast.Expr {
	tok := p.advance()
	return &ast.StringLit{Value: tok.Lexeme, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseBoolLit() ast.Expr {
	tok := p.advance()
	return &ast.BoolLit{Value: tok.Kind == lexer.TRUE, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseThis() ast.Expr {
	tok := p.advance()
	return &ast.ThisExpr{Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseSome() ast.Expr {
	start := p.curPos()
	p.advance() // 'Some'
	p.expect(lexer.LPAREN)
	x := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	return &ast.SomeExpr{X: x, Pos: start}
}

func (p *Parser) parseNone() ast.Expr {
	tok := p.advance()
	return &ast.NoneExpr{Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseNew() ast.Expr {
	start := p.curPos()
	p.advance() // 'new'
	className := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		className = tok.Lexeme
	}
	p.expect(lexer.LPAREN)
	args := p.parseArgList()
	p.expect(lexer.RPAREN)
	return &ast.New{Class: className, Args: args, Pos: start}
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.curPos()
	p.advance() // '['
	var elems []ast.Expr
	for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parseExpr(LOWEST))
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RBRACKET)
	return &ast.ArrayLit{Elems: elems, Pos: start}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.advance()
	x := p.parseExpr(UNARY)
	return &ast.Unary{Op: tok.Lexeme, X: x, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseInterpolated() ast.Expr {
	start := p.curPos()
	p.advance() // '$'
	raw := ""
	if tok, ok := p.expect(lexer.STRING); ok {
		raw = tok.Lexeme
	}
	return &ast.InterpolatedString{Raw: raw, Pos: start}
}

// parseGroupedOrLambda disambiguates `(expr)` from `(params) => body` by a
// non-consuming lookahead to the matching ')'.
func (p *Parser) parseGroupedOrLambda() ast.Expr {
	if p.isLambdaAhead() {
		return p.parseLambda()
	}
	p.advance() // '('
	x := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	return x
}

func (p *Parser) isLambdaAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].Kind == lexer.FARROW
			}
		case lexer.SEMICOLON, lexer.LBRACE, lexer.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) parseLambda() ast.Expr {
	start := p.curPos()
	p.advance() // '('
	var params []*ast.Param
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		params = append(params, p.parseParam(false)) // lambda param types are optional
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.FARROW)
	body := p.parseExpr(ASSIGNMENT)
	return &ast.Lambda{Params: params, Body: body, Pos: start}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		args = append(args, p.parseExpr(LOWEST))
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	return args
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	tok := p.advance()
	prec := p.precedence(tok.Kind)
	right := p.parseExpr(prec)
	return &ast.Binary{Op: tok.Lexeme, Left: left, Right: right, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseCall(left ast.Expr) ast.Expr {
	start := p.curPos()
	p.advance() // '('
	args := p.parseArgList()
	p.expect(lexer.RPAREN)
	return &ast.Call{Callee: left, Args: args, Pos: start}
}

func (p *Parser) parseMemberOrCall(left ast.Expr) ast.Expr {
	start := p.curPos()
	p.advance() // '.'
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	return &ast.Member{Obj: left, Name: name, Pos: start}
}

func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	start := p.curPos()
	p.advance() // '['
	idx := p.parseExpr(LOWEST)
	p.expect(lexer.RBRACKET)
	return &ast.Index{Obj: left, Idx: idx, Pos: start}
}

// parseAssign parses `target = value`. A non-l-value target is an error but
// the right-hand side is still consumed so the following statement remains
// parseable.
func (p *Parser) parseAssign(left ast.Expr) ast.Expr {
	start := p.curPos()
	p.advance() // '='
	if !isLValue(left) {
		p.diags.Error(errors.PAR003, "cannot assign to non-variable expression", refSpan2(left.Position()), "")
	}
	value := p.parseExpr(ASSIGNMENT - 1)
	return &ast.Assign{Target: left, Value: value, Pos: start}
}

func refSpan2(pos ast.Pos) *ast.Span {
	return &ast.Span{File: pos.File, Line: pos.Line, Column: pos.Column, Length: 1}
}

func isLValue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.Member, *ast.Index:
		return true
	default:
		return false
	}
}

// parseAngleOrComparison disambiguates `f<T,U>(...)` generic call syntax
// from the `<` comparison operator via speculative balanced-bracket
// scanning: the arguments must close with `>` immediately followed by `(`.
func (p *Parser) parseAngleOrComparison(left ast.Expr) ast.Expr {
	if p.genericCallLooksValid() {
		return p.parseGenericCall(left)
	}
	return p.parseBinary(left)
}

func (p *Parser) genericCallLooksValid() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case lexer.LT:
			depth++
		case lexer.GT:
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].Kind == lexer.LPAREN
			}
		case lexer.SEMICOLON, lexer.LBRACE, lexer.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) parseGenericCall(left ast.Expr) ast.Expr {
	start := p.curPos()
	p.advance() // '<'
	var generics []ast.Type
	for !p.curIs(lexer.GT) && !p.curIs(lexer.EOF) {
		generics = append(generics, p.parseType())
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.GT)
	p.expect(lexer.LPAREN)
	args := p.parseArgList()
	p.expect(lexer.RPAREN)
	return &ast.Call{Callee: left, Generics: generics, Args: args, Pos: start}
}
