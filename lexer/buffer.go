package lexer

import "github.com/metaphox/c1-lang/token"

// Buffer wraps a [Lexer] and exposes exactly two tokens of lookahead: the
// current token, which the parser is deciding on, and the next one.
//
// After construction and after every [Buffer.Advance], current is the first
// token not yet consumed and next is the one after it. Either may be an EOF
// token once the input runs out.
//
//	b := lexer.NewBuffer("void main() {\n x = 4;\n}")
//	b.CurrentKind() // token.VOID
//	b.PeekKind()    // token.IDENT
//	b.Advance()     // current is now "main"
type Buffer struct {
	lex  *Lexer
	cur  token.Token
	next token.Token
}

// NewBuffer creates a Buffer over input and primes current and next.
func NewBuffer(input string) *Buffer {
	b := &Buffer{lex: New(input)}
	b.cur = b.lex.NextToken()
	b.next = b.lex.NextToken()
	return b
}

// Current returns the current token without consuming it.
func (b *Buffer) Current() token.Token { return b.cur }

// Peek returns the token after the current one without consuming anything.
func (b *Buffer) Peek() token.Token { return b.next }

// CurrentKind returns the kind of the current token.
func (b *Buffer) CurrentKind() token.Kind { return b.cur.Kind }

// CurrentText returns the literal text of the current token; "" at EOF.
func (b *Buffer) CurrentText() string { return b.cur.Literal }

// CurrentLine returns the line of the current token; 0 at EOF.
func (b *Buffer) CurrentLine() int { return b.cur.Line }

// PeekKind returns the kind of the next token.
func (b *Buffer) PeekKind() token.Kind { return b.next.Kind }

// PeekText returns the literal text of the next token; "" at EOF.
func (b *Buffer) PeekText() string { return b.next.Literal }

// PeekLine returns the line of the next token; 0 at EOF.
func (b *Buffer) PeekLine() int { return b.next.Line }

// AtEOF reports whether every token has been consumed.
func (b *Buffer) AtEOF() bool { return b.cur.IsEOF() }

// Advance drops the current token, shifts next into current and reads a new
// next token. At EOF it does nothing.
func (b *Buffer) Advance() {
	if b.cur.IsEOF() {
		return
	}
	b.cur = b.next
	b.next = b.lex.NextToken()
}
