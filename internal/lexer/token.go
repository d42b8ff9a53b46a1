package lexer

import "github.com/sunholo/magc/internal/ast"

// Kind identifies the category of a Token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF
	COMMENT

	IDENT
	INT
	FLOAT
	STRING
	NATIVE_BLOCK // verbatim body of an @cpp { ... } block

	// Keywords
	FN
	LET
	MUT
	RETURN
	IF
	ELSE
	WHILE
	FOR
	IN
	MATCH
	CLASS
	NEW
	PUBLIC
	STATIC
	USING
	THIS
	SOME
	NONE
	TRUE
	FALSE

	// Operators and punctuation
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	NEQ
	LT
	GT
	LTE
	GTE
	AND
	OR
	NOT
	ARROW
	FARROW
	DOT
	QUESTION
	DOLLAR
	AT
	COLON
	COMMA
	SEMICOLON

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
)

var names = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", COMMENT: "COMMENT",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", STRING: "STRING", NATIVE_BLOCK: "NATIVE_BLOCK",
	FN: "fn", LET: "let", MUT: "mut", RETURN: "return", IF: "if", ELSE: "else",
	WHILE: "while", FOR: "for", IN: "in", MATCH: "match", CLASS: "class", NEW: "new",
	PUBLIC: "public", STATIC: "static", USING: "using", THIS: "this",
	SOME: "Some", NONE: "None", TRUE: "true", FALSE: "false",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", EQ: "==", NEQ: "!=", LT: "<", GT: ">", LTE: "<=", GTE: ">=",
	AND: "&&", OR: "||", NOT: "!", ARROW: "->", FARROW: "=>", DOT: ".",
	QUESTION: "?", DOLLAR: "$", AT: "@", COLON: ":", COMMA: ",", SEMICOLON: ";",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

var keywords = map[string]Kind{
	"fn": FN, "let": LET, "mut": MUT, "return": RETURN, "if": IF, "else": ELSE,
	"while": WHILE, "for": FOR, "in": IN, "match": MATCH, "class": CLASS, "new": NEW,
	"public": PUBLIC, "static": STATIC, "using": USING, "this": THIS,
	"Some": SOME, "None": NONE, "true": TRUE, "false": FALSE,
}

// LookupIdent classifies an identifier lexeme as a keyword or a plain
// identifier.
func LookupIdent(lit string) Kind {
	if k, ok := keywords[lit]; ok {
		return k
	}
	return IDENT
}

// Token is a tagged lexeme with its source span.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   ast.Span
}

func newToken(kind Kind, lexeme string, file string, line, col, length int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Span: ast.Span{File: file, Line: line, Column: col, Length: length}}
}
