package parser

import (
	"github.com/sunholo/magc/internal/ast"
	"github.com/sunholo/magc/internal/errors"
	"github.com/sunholo/magc/internal/lexer"
)

// parseType parses a type expression and any trailing `[]`/`?` postfix
// modifiers, applied left to right in the order they appear so `int[]?` is
// Option(Array(Int)) and `int?[]` is Array(Option(Int)).
func (p *Parser) parseType() ast.Type {
	t := p.parseBaseType()
	for {
		switch {
		case p.curIs(lexer.LBRACKET) && p.peekIs(lexer.RBRACKET):
			pos := p.toPos(p.cur().Span)
			p.advance()
			p.advance()
			t = &ast.ArrayType{Inner: t, Pos: pos}
		case p.curIs(lexer.QUESTION):
			pos := p.toPos(p.cur().Span)
			p.advance()
			t = &ast.OptionType{Inner: t, Pos: pos}
		default:
			return t
		}
	}
}

func (p *Parser) parseBaseType() ast.Type {
	pos := p.curPos()
	switch {
	case p.curIs(lexer.LPAREN):
		return p.parseFunctionType()
	case p.curIs(lexer.IDENT):
		name := p.advance().Lexeme
		switch name {
		case "int":
			return &ast.IntType{Pos: pos}
		case "float":
			return &ast.FloatType{Pos: pos}
		case "string":
			return &ast.StringType{Pos: pos}
		case "bool":
			return &ast.BoolType{Pos: pos}
		case "void":
			return &ast.VoidType{Pos: pos}
		}
		if p.curIs(lexer.LT) {
			p.advance()
			var args []ast.Type
			for !p.curIs(lexer.GT) && !p.curIs(lexer.EOF) {
				args = append(args, p.parseType())
				if p.curIs(lexer.COMMA) {
					p.advance()
				}
			}
			p.expect(lexer.GT)
			return &ast.GenericType{Name: name, Args: args, Pos: pos}
		}
		return &ast.ClassType{Name: name, Pos: pos}
	default:
		p.errorf(errors.PAR001, p.cur().Span, "expected a type, found %s", p.cur().Kind)
		p.advance()
		return &ast.VoidType{Pos: pos}
	}
}

func (p *Parser) parseFunctionType() ast.Type {
	pos := p.curPos()
	p.advance() // '('
	var params []ast.Type
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		params = append(params, p.parseType())
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.ARROW)
	ret := p.parseType()
	return &ast.FunctionType{Params: params, Return: ret, Pos: pos}
}
