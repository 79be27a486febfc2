package lib

const tokenBufSize = 64

// tokenBuffer is a FIFO of tokens. The parser consumes from the front; once
// Done has been called and the queue is empty, Next and Peek report done.
type tokenBuffer struct {
	toks         []Token
	head         int
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		toks:         make([]Token, 0, tokenBufSize),
		head:         0,
		doneReceived: false,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.toks[tb.head] = Token{}
		tb.head++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.head < len(tb.toks) {
		return tb.toks[tb.head], false
	}
	return Token{}, tb.doneReceived
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.toks = append(tb.toks, tok)
}

func (tb *tokenBuffer) Done() {
	tb.doneReceived = true
}
