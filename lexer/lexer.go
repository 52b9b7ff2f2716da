// Package lexer implements the C1 lexer and the two-token lookahead buffer the
// parser reads from.
//
// The lexer converts a C1 source string into a lazy stream of [token.Token]
// values. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Kind == [token.EOF].
//
// Design notes:
//   - Every position is classified by an ordered rule table (see rules.go).
//     The longest match wins; on equal length the earlier rule wins, so
//     keyword spellings beat identifiers and "==" beats "=" "=".
//   - Whitespace and comments are matched like any other lexeme and dropped.
//   - A newline is scanned as a LINEBREAK lexeme that only bumps the line
//     counter. Newlines inside a block comment are swallowed with the comment
//     and are not counted.
//   - Input no rule matches becomes a one-character ERROR token; the lexer
//     never fails.
package lexer

import (
	"unicode/utf8"

	"github.com/metaphox/c1-lang/token"
)

// Lexer holds all state required to tokenise a single C1 source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input string // the full source text
	pos   int    // byte offset of the next unread character
	line  int    // current 1-based line number
}

// New creates a [Lexer] that tokenises the given input string.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken returns the next token from the input.
//
// Whitespace, comments and line breaks are consumed before the token. When the
// input is exhausted NextToken returns an EOF token on every subsequent call.
func (l *Lexer) NextToken() token.Token {
	for l.pos < len(l.input) {
		src := l.input[l.pos:]
		r, n := longestMatch(src)
		if r == nil {
			_, n = utf8.DecodeRuneInString(src)
			return l.emit(token.ERROR, n)
		}

		switch r.action {
		case actSkip:
			l.pos += n
		case actLinebreak:
			l.pos += n
			l.line++
		default:
			return l.emit(r.kind, n)
		}
	}
	return token.Token{Kind: token.EOF}
}

// emit consumes n bytes and returns them as a token of kind k.
func (l *Lexer) emit(k token.Kind, n int) token.Token {
	tok := token.Token{Kind: k, Literal: l.input[l.pos : l.pos+n], Line: l.line}
	l.pos += n
	return tok
}

// Tokenize scans the whole input and returns every token before EOF.
// It is meant for tooling and tests; the parser pulls tokens lazily.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for tok := l.NextToken(); !tok.IsEOF(); tok = l.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}
