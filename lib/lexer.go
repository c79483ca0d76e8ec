// Package lib turns arithmetic expressions such as "12 + 34 * (5 - 6)" into
// tokens for a parser.
package lib

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrNumericOverflow  = errors.New("numeric overflow")
)

// Lex scans the whole input and calls emit for every token before EOF.
func Lex(input string, emit func(Token)) error {
	l := NewLexer(input)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		if tok.Type == TokenTypeEOF {
			return nil
		}
		emit(tok)
	}
}

// Tokenize returns every token in input, ending with EOF.
func Tokenize(input string) ([]Token, error) {
	tokens := []Token{}
	err := Lex(input, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return append(tokens, Symbol(TokenTypeEOF)), nil
}

// Lexer works on bytes. Anything outside ASCII is reported as an invalid
// character, except bytes that unicode.IsSpace treats as spaces.
type Lexer struct {
	input       string
	currentPos  int
	currentChar byte
	hasChar     bool
}

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:      input,
		currentPos: -1,
	}
	l.advance()
	return l
}

// Pos is the index of the byte the lexer will look at next.
func (l *Lexer) Pos() int {
	return l.currentPos
}

func (l *Lexer) advance() {
	l.currentPos++
	if l.currentPos > len(l.input)-1 {
		l.currentPos = len(l.input)
		l.currentChar = 0
		l.hasChar = false
		return
	}
	l.currentChar = l.input[l.currentPos]
	l.hasChar = true
}

// NextToken returns the next token. After EOF it keeps returning EOF. An
// error leaves the cursor on the offending byte, so the same error comes back
// on every later call.
func (l *Lexer) NextToken() (Token, error) {
	for l.hasChar {
		ch := l.currentChar

		if isSpace(ch) {
			l.advance()
			continue
		}

		if isDigit(ch) {
			return l.integer()
		}

		tokType, ok := symbols[ch]
		if !ok {
			return Token{}, l.errorf(ErrInvalidCharacter, "%q", rune(ch))
		}
		l.advance()
		return Symbol(tokType), nil
	}

	return Symbol(TokenTypeEOF), nil
}

func (l *Lexer) integer() (Token, error) {
	start := l.currentPos
	for l.hasChar && isDigit(l.currentChar) {
		l.advance()
	}
	digits := l.input[start:l.currentPos]

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		l.currentPos = start
		l.currentChar = l.input[start]
		l.hasChar = true
		// only digits reach ParseInt, so the one failure left is ErrRange
		return Token{}, l.errorf(ErrNumericOverflow, "%s", digits)
	}
	return Integer(value), nil
}

func (l *Lexer) errorf(kind error, msg string, args ...interface{}) error {
	formatted := fmt.Sprintf(msg, args...)
	return fmt.Errorf("Error at position %d: %w: %s", l.currentPos, kind, formatted)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return unicode.IsSpace(rune(ch))
}
