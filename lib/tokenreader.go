package lib

// TokenReader is what a parser pulls tokens from.
type TokenReader interface {
	Next() (Token, error)
	Peek() (Token, error)
}

type peekResult struct {
	tok Token
	err error
}

// Reader adds one token of lookahead on top of a Lexer, which keeps none of
// its own.
type Reader struct {
	lexer  *Lexer
	peeked *peekResult
}

func NewReader(input string) *Reader {
	return &Reader{lexer: NewLexer(input)}
}

func (r *Reader) Next() (Token, error) {
	if r.peeked != nil {
		res := r.peeked
		r.peeked = nil
		return res.tok, res.err
	}
	return r.lexer.NextToken()
}

func (r *Reader) Peek() (Token, error) {
	if r.peeked != nil {
		return r.peeked.tok, r.peeked.err
	}
	tok, err := r.lexer.NextToken()
	r.peeked = &peekResult{tok: tok, err: err}
	return tok, err
}
