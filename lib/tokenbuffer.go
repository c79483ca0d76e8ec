package lib

import (
	"errors"
	"sync"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

var (
	ErrReadTimeout  = errors.New("timed out waiting for next token")
	ErrBufferClosed = errors.New("token buffer closed")
)

// TokenBuffer hands tokens from a producer goroutine to a reader. Once EOF or
// an error has been read it is returned on every later call. A reader that
// stops early must call Close so the producer can exit.
type TokenBuffer struct {
	resChan   chan peekResult
	quit      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{}
	peeked    *peekResult
	final     *peekResult
}

func NewTokenBuffer() *TokenBuffer {
	return &TokenBuffer{
		resChan: make(chan peekResult, TOKEN_BUF_SIZE),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
		peeked:  nil,
		final:   nil,
	}
}

// Stream lexes input in the background and returns the buffer it feeds.
func Stream(input string) *TokenBuffer {
	buffer := NewTokenBuffer()

	go (func() {
		defer close(buffer.stopped)

		l := NewLexer(input)
		for {
			tok, err := l.NextToken()
			if err != nil {
				buffer.send(peekResult{err: err})
				return
			}
			if !buffer.send(peekResult{tok: tok}) || tok.Type == TokenTypeEOF {
				return
			}
		}
	})()

	return buffer
}

func (tb *TokenBuffer) Next() (Token, error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.err
	}

	if tb.final != nil {
		return tb.final.tok, tb.final.err
	}

	select {
	case <-tb.quit:
		return Token{}, ErrBufferClosed
	default:
	}

	select {
	case res := <-tb.resChan:
		if res.err != nil || res.tok.Type == TokenTypeEOF {
			tb.final = &res
		}
		return res.tok, res.err
	case <-tb.quit:
		return Token{}, ErrBufferClosed
	case <-time.After(TokenReadTimeout):
		return Token{}, ErrReadTimeout
	}
}

func (tb *TokenBuffer) Peek() (Token, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.err
	}
	tok, err := tb.Next()
	if errors.Is(err, ErrReadTimeout) || errors.Is(err, ErrBufferClosed) {
		return tok, err
	}
	tb.peeked = &peekResult{tok: tok, err: err}
	return tok, err
}

// send blocks until the result is buffered or the buffer is closed. It
// reports whether the result was buffered.
func (tb *TokenBuffer) send(res peekResult) bool {
	select {
	case tb.resChan <- res:
		return true
	case <-tb.quit:
		return false
	}
}

func (tb *TokenBuffer) Write(tok Token) {
	tb.send(peekResult{tok: tok})
}

func (tb *TokenBuffer) Fail(err error) {
	tb.send(peekResult{err: err})
}

// Done marks the end of input.
func (tb *TokenBuffer) Done() {
	tb.send(peekResult{tok: Symbol(TokenTypeEOF)})
}

// Close releases a producer blocked on a full buffer. Reads that do not
// already have a peeked or final result fail with ErrBufferClosed.
func (tb *TokenBuffer) Close() {
	tb.closeOnce.Do(func() {
		close(tb.quit)
	})
}
