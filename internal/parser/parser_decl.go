package parser

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

func (p *Parser) parseUsing() *ast.UsingDecl {
	start := p.curPos()
	p.advance() // 'using'
	path := p.parseDottedPath()
	p.consumeSemicolon()
	return &ast.UsingDecl{Path: path, Pos: start}
}

func (p *Parser) parseDottedPath() string {
	path := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		path = tok.Lexeme
	}
	for p.curIs(lexer.DOT) {
		p.advance()
		if tok, ok := p.expect(lexer.IDENT); ok {
			path += "." + tok.Lexeme
		}
	}
	return path
}

func (p *Parser) consumeSemicolon() {
	if p.curIs(lexer.SEMICOLON) {
		p.advance()
	} else {
		p.errorf(errors.PAR002, p.cur().Span, "expected ';', found %s", p.cur().Kind)
	}
}

// parseNativeImport parses `@native import <header>;`, `@native import
// "header.h" as ns;`, or `@native import <header> use { a, b };`. Returns
// nil (having already reported an error) when the token at AT is not the
// `native import` form — in that case the caller should resynchronize.
func (p *Parser) parseNativeImport() *ast.NativeImport {
	start := p.curPos()
	p.advance() // '@'
	if !(p.curIs(lexer.IDENT) && p.cur().Lexeme == "native") {
		p.errorf(errors.PAR001, p.cur().Span, "expected 'native' after '@', found %s", p.cur().Kind)
		p.sync()
		return nil
	}
	p.advance() // 'native'
	if !(p.curIs(lexer.IDENT) && p.cur().Lexeme == "import") {
		p.errorf(errors.PAR001, p.cur().Span, "expected 'import' after '@native', found %s", p.cur().Kind)
		p.sync()
		return nil
	}
	p.advance() // 'import'

	ni := &ast.NativeImport{Pos: start}
	switch {
	case p.curIs(lexer.STRING):
		ni.Header = p.advance().Lexeme
		ni.IsSystem = false
	case p.curIs(lexer.LT):
		p.advance()
		header := ""
		for !p.curIs(lexer.GT) && !p.curIs(lexer.EOF) {
			header += p.advance().Lexeme
		}
		p.expect(lexer.GT)
		ni.Header = header
		ni.IsSystem = true
	default:
		p.errorf(errors.PAR001, p.cur().Span, "expected a header string or <header>, found %s", p.cur().Kind)
		p.sync()
		return ni
	}

	if p.curIs(lexer.IDENT) && p.cur().Lexeme == "as" {
		p.advance()
		if tok, ok := p.expect(lexer.IDENT); ok {
			ni.AliasNamespace = tok.Lexeme
		}
	}
	if p.curIs(lexer.IDENT) && p.cur().Lexeme == "use" {
		p.advance()
		p.expect(lexer.LBRACE)
		for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
			if tok, ok := p.expect(lexer.IDENT); ok {
				ni.SelectedSymbols = append(ni.SelectedSymbols, tok.Lexeme)
			}
			if p.curIs(lexer.COMMA) {
				p.advance()
			}
		}
		p.expect(lexer.RBRACE)
	}
	p.consumeSemicolon()
	return ni
}

func (p *Parser) parseClass(isPublic bool) *ast.ClassDecl {
	start := p.curPos()
	p.advance() // 'class'
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	p.expect(lexer.LBRACE)

	cls := &ast.ClassDecl{Name: name, IsPublic: isPublic, Pos: start}
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		fieldPublic := false
		fieldStatic := false
		for p.curIs(lexer.PUBLIC) || p.curIs(lexer.STATIC) {
			if p.curIs(lexer.PUBLIC) {
				fieldPublic = true
			} else {
				fieldStatic = true
			}
			p.advance()
		}
		if p.curIs(lexer.FN) {
			cls.Methods = append(cls.Methods, p.parseFn(fieldPublic, fieldStatic))
			continue
		}
		cls.Fields = append(cls.Fields, p.parseField(fieldPublic, fieldStatic))
	}
	p.expect(lexer.RBRACE)
	return cls
}

func (p *Parser) parseField(isPublic, isStatic bool) *ast.FieldDecl {
	start := p.curPos()
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	p.expect(lexer.COLON)
	typ := p.parseType()
	var init ast.Expr
	if p.curIs(lexer.ASSIGN) {
		p.advance()
		init = p.parseExpr(LOWEST)
	}
	p.consumeSemicolon()
	return &ast.FieldDecl{Name: name, Type: typ, IsPublic: isPublic, IsStatic: isStatic, Init: init, Pos: start}
}

func (p *Parser) parseFn(isPublic, isStatic bool) *ast.FnDecl {
	start := p.curPos()
	p.advance() // 'fn'
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	p.expect(lexer.LPAREN)
	var params []*ast.Param
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		params = append(params, p.parseParam(true))
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)

	var ret ast.Type
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseType()
	}

	p.expect(lexer.LBRACE)
	body := p.parseStmtList()
	p.expect(lexer.RBRACE)

	return &ast.FnDecl{Name: name, Params: params, ReturnType: ret, Body: body, IsPublic: isPublic, IsStatic: isStatic, Pos: start}
}

// parseParam parses `name[: Type]`. requireType controls whether a missing
// type annotation is an error (function/method parameters) or simply
// recorded as "to be inferred" (lambda parameters).
func (p *Parser) parseParam(requireType bool) *ast.Param {
	start := p.curPos()
	name := ""
	if tok, ok := p.expect(lexer.IDENT); ok {
		name = tok.Lexeme
	}
	var typ ast.Type
	if p.curIs(lexer.COLON) {
		p.advance()
		typ = p.parseType()
	} else if requireType {
		p.errorf(errors.PAR001, p.cur().Span, "expected ':' and a type for parameter '%s'", name)
	}
	return &ast.Param{Name: name, Type: typ, Pos: start}
}
