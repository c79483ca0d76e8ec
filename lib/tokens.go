package lib

import "fmt"

type TokenType int

const (
	TokenTypeEOF TokenType = iota
	TokenTypeInteger
	TokenTypePlus
	TokenTypeMinus
	TokenTypeMul
	TokenTypeDiv
	TokenTypePow
	TokenTypeLParen
	TokenTypeRParen
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeEOF:     "EOF",
	TokenTypeInteger: "INTEGER",
	TokenTypePlus:    "PLUS",
	TokenTypeMinus:   "MINUS",
	TokenTypeMul:     "MUL",
	TokenTypeDiv:     "DIV",
	TokenTypePow:     "POW",
	TokenTypeLParen:  "LPAREN",
	TokenTypeRParen:  "RPAREN",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return name
}

// Token is one lexical unit. Value is only set for TokenTypeInteger so two
// tokens can be compared with ==.
type Token struct {
	Type  TokenType
	Value int64
}

func Integer(value int64) Token {
	return Token{Type: TokenTypeInteger, Value: value}
}

func Symbol(tokType TokenType) Token {
	return Token{Type: tokType}
}

func (t Token) String() string {
	if t.Type == TokenTypeInteger {
		return fmt.Sprintf("INTEGER(%d)", t.Value)
	}
	return t.Type.String()
}

// single character tokens
var symbols = map[byte]TokenType{
	'+': TokenTypePlus,
	'-': TokenTypeMinus,
	'*': TokenTypeMul,
	'/': TokenTypeDiv,
	'^': TokenTypePow,
	'(': TokenTypeLParen,
	')': TokenTypeRParen,
}
