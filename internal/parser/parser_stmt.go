package parser

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

func (p *Parser) parseStmtList() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case lexer.LET:
		return p.parseLet()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.MATCH:
		return p.parseMatch()
	case lexer.NATIVE_BLOCK:
		return p.parseNativeStmt()
	case lexer.LBRACE:
		return p.parseBlockStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() ast.Stmt {
	start := p.curPos()
	p.advance() // 'let'
	isMut := false
	if p.curIs(lexer.MUT) {
		isMut = true
		p.advance()
	}
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	var typ ast.Type
	if p.curIs(lexer.COLON) {
		p.advance()
		typ = p.parseType()
	}
	p.expect(lexer.ASSIGN)
	init := p.parseExpr(LOWEST)
	p.consumeSemicolon()
	return &ast.LetStmt{Name: name, IsMut: isMut, Type: typ, Init: init, Pos: start}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.curPos()
	p.advance() // 'return'
	var value ast.Expr
	if !p.curIs(lexer.SEMICOLON) {
		value = p.parseExpr(LOWEST)
	}
	p.consumeSemicolon()
	return &ast.ReturnStmt{Value: value, Pos: start}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.curPos()
	x := p.parseExpr(LOWEST)
	p.consumeSemicolon()
	return &ast.ExprStmt{X: x, Pos: start}
}

func (p *Parser) parseBlockStmt() ast.Stmt {
	start := p.curPos()
	p.advance() // '{'
	stmts := p.parseStmtList()
	p.expect(lexer.RBRACE)
	return &ast.BlockStmt{Stmts: stmts, Pos: start}
}

func (p *Parser) parseNativeStmt() ast.Stmt {
	tok := p.advance()
	return &ast.NativeStmt{Code: tok.Lexeme, Pos: p.toPos(tok.Span)}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.curPos()
	p.advance() // 'if'
	p.expect(lexer.LPAREN)
	cond := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	then := p.parseStmtList()
	p.expect(lexer.RBRACE)

	var els []ast.Stmt
	if p.curIs(lexer.ELSE) {
		p.advance()
		if p.curIs(lexer.IF) {
			els = []ast.Stmt{p.parseIf()}
		} else {
			p.expect(lexer.LBRACE)
			els = p.parseStmtList()
			p.expect(lexer.RBRACE)
		}
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Pos: start}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.curPos()
	p.advance() // 'while'
	p.expect(lexer.LPAREN)
	cond := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	body := p.parseStmtList()
	p.expect(lexer.RBRACE)
	return &ast.WhileStmt{Cond: cond, Body: body, Pos: start}
}

// parseFor parses `for (name in expr) { ... }`. The contextual keyword `in`
// is required; any other identifier in its place produces an error with a
// hint showing the canonical form, then parsing continues as if `in` had
// been present.
func (p *Parser) parseFor() ast.Stmt {
	start := p.curPos()
	p.advance() // 'for'
	p.expect(lexer.LPAREN)
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	if p.curIs(lexer.IN) {
		p.advance()
	} else {
		p.diags.Error(errors.PAR005, "expected contextual keyword 'in'", refSpan(p.cur().Span),
			"write 'for (name in expr) { ... }'")
		if p.curIs(lexer.IDENT) && !p.peekIs(lexer.RPAREN) {
			p.advance() // the identifier standing where 'in' belongs
		}
	}
	iter := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	body := p.parseStmtList()
	p.expect(lexer.RBRACE)
	return &ast.ForStmt{Var: name, Iter: iter, Body: body, Pos: start}
}

func refSpan(s ast.Span) *ast.Span { return &s }

// parseMatch parses a match statement. Arms are comma-separated with a
// trailing comma permitted; each arm's body may be a block or a single
// statement (including a bare return).
func (p *Parser) parseMatch() ast.Stmt {
	start := p.curPos()
	p.advance() // 'match'
	p.expect(lexer.LPAREN)
	subject := p.parseExpr(LOWEST)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	var arms []*ast.MatchArm
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		arms = append(arms, p.parseMatchArm())
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	return &ast.MatchStmt{Subject: subject, Arms: arms, Pos: start}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.curPos()
	arm := &ast.MatchArm{Pos: start}

	switch {
	case p.curIs(lexer.SOME):
		p.advance()
		p.expect(lexer.LPAREN)
		if tok, ok := p.expect(lexer.IDENT); ok {
			arm.BindName = tok.Lexeme
		}
		p.expect(lexer.RPAREN)
		arm.Pattern = "Some"
	case p.curIs(lexer.NONE):
		p.advance()
		arm.Pattern = "None"
	case p.curIs(lexer.IDENT):
		arm.Pattern = p.advance().Lexeme
	default:
		p.errorf(errors.PAR004, p.cur().Span, "malformed match arm: expected 'Some(name)', 'None', or an identifier pattern")
		p.advance()
		arm.Pattern = "?"
	}

	p.expect(lexer.FARROW)

	if p.curIs(lexer.LBRACE) {
		p.advance()
		arm.Body = p.parseStmtList()
		p.expect(lexer.RBRACE)
	} else {
		arm.Body = []ast.Stmt{p.parseStmt()}
	}
	return arm
}
