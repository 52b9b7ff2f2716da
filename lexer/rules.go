package lexer

import (
	"strings"

	"github.com/metaphox/c1-lang/token"
)

// action tells NextToken what to do with a matched lexeme.
type action int

const (
	actEmit      action = iota // hand the lexeme to the caller as a token
	actSkip                    // drop it (whitespace, comments)
	actLinebreak               // drop it and bump the line counter
)

// rule is one entry of the lexical rule table. match reports how many bytes at
// the start of src the rule accepts; 0 means no match.
type rule struct {
	kind   token.Kind
	action action
	match  func(src string) int
}

// rules is ordered by priority. Literal spellings come before the general
// patterns so that a tie in length is resolved in their favour.
var rules = buildRules()

func buildRules() []rule {
	var rs []rule
	for _, k := range token.Keywords() {
		rs = append(rs, rule{kind: k, match: literal(k.String())})
	}
	for _, k := range token.Operators() {
		rs = append(rs, rule{kind: k, match: literal(k.String())})
	}
	return append(rs,
		rule{kind: token.CONST_INT, match: matchDigits},
		rule{kind: token.CONST_FLOAT, match: matchFloat},
		rule{kind: token.CONST_BOOLEAN, match: matchBoolean},
		rule{kind: token.CONST_STRING, match: matchString},
		rule{kind: token.IDENT, match: matchIdent},
		rule{action: actSkip, match: matchBlockComment},
		rule{action: actSkip, match: matchLineComment},
		rule{action: actSkip, match: matchWhitespace},
		rule{kind: token.LINEBREAK, action: actLinebreak, match: matchLinebreak},
	)
}

// longestMatch returns the rule with the longest match at the start of src and
// the match length. Among rules of equal length the first one wins. A nil rule
// means nothing matched.
func longestMatch(src string) (*rule, int) {
	var best *rule
	bestLen := 0
	for i := range rules {
		if n := rules[i].match(src); n > bestLen {
			best, bestLen = &rules[i], n
		}
	}
	return best, bestLen
}

// ── Matchers ──────────────────────────────────────────────────────────────────

func literal(spelling string) func(string) int {
	return func(src string) int {
		if strings.HasPrefix(src, spelling) {
			return len(spelling)
		}
		return 0
	}
}

// matchDigits accepts [0-9]+.
func matchDigits(src string) int {
	n := 0
	for n < len(src) && isDigit(src[n]) {
		n++
	}
	return n
}

// matchFloat accepts
//
//	digits "." digits [exponent]
//	"." digits [exponent]
//	digits exponent
func matchFloat(src string) int {
	n := matchDigits(src)
	if n < len(src) && src[n] == '.' {
		if frac := matchDigits(src[n+1:]); frac > 0 {
			end := n + 1 + frac
			return end + matchExponent(src[end:])
		}
	}
	if n > 0 {
		if e := matchExponent(src[n:]); e > 0 {
			return n + e
		}
	}
	return 0
}

// matchExponent accepts ("e"|"E") ["+"|"-"] digits.
func matchExponent(src string) int {
	if len(src) == 0 || (src[0] != 'e' && src[0] != 'E') {
		return 0
	}
	i := 1
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		i++
	}
	d := matchDigits(src[i:])
	if d == 0 {
		return 0
	}
	return i + d
}

func matchBoolean(src string) int {
	switch {
	case strings.HasPrefix(src, "true"):
		return len("true")
	case strings.HasPrefix(src, "false"):
		return len("false")
	}
	return 0
}

// matchString accepts a quoted run without quote or newline.
func matchString(src string) int {
	if len(src) == 0 || src[0] != '"' {
		return 0
	}
	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '"':
			return i + 1
		case '\n':
			return 0
		}
	}
	return 0
}

// matchIdent accepts [a-zA-Z][a-zA-Z0-9]*.
func matchIdent(src string) int {
	if len(src) == 0 || !isLetter(src[0]) {
		return 0
	}
	n := 1
	for n < len(src) && (isLetter(src[n]) || isDigit(src[n])) {
		n++
	}
	return n
}

// matchBlockComment accepts "/*" followed by characters other than '*' and '/'
// and then "*/". A comment whose body holds either character does not match
// and is scanned as ordinary operators instead.
func matchBlockComment(src string) int {
	if !strings.HasPrefix(src, "/*") {
		return 0
	}
	i := 2
	for i < len(src) && src[i] != '*' && src[i] != '/' {
		i++
	}
	if strings.HasPrefix(src[i:], "*/") {
		return i + 2
	}
	return 0
}

// matchLineComment accepts "//" up to, not including, the next newline.
func matchLineComment(src string) int {
	if !strings.HasPrefix(src, "//") {
		return 0
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		return i
	}
	return len(src)
}

func matchWhitespace(src string) int {
	n := 0
	for n < len(src) {
		switch src[n] {
		case ' ', '\t', '\f', '\v', '\r':
			n++
		default:
			return n
		}
	}
	return n
}

func matchLinebreak(src string) int {
	if len(src) > 0 && src[0] == '\n' {
		return 1
	}
	return 0
}

// isLetter reports whether b is an ASCII letter. C1 identifiers have no
// underscore.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
