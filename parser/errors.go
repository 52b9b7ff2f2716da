package parser

import (
	"fmt"
	"strings"

	"github.com/metaphox/c1-lang/token"
)

// Reason is the static description carried by a [SyntaxError].
type Reason string

const (
	// ReasonUnexpectedToken is reported when the current token is not one the rule expects.
	ReasonUnexpectedToken Reason = "unexpected token"
	// ReasonUnexpectedType is reported when a function definition lacks a return type.
	ReasonUnexpectedType Reason = "unexpected type"
	// ReasonEmptyStatement is reported when no statement form starts with the current token.
	ReasonEmptyStatement Reason = "empty statement"
)

// SyntaxError is the single diagnostic of a failed parse. It names the first
// token no active production could accept.
//
// The fields are kept apart from their rendering so callers can use
// errors.As and inspect them instead of parsing the message.
type SyntaxError struct {
	Reason   Reason
	Line     int          // 1-based line of the offending token; 0 at EOF
	Text     string       // literal text of the offending token; "" at EOF
	Kind     token.Kind   // kind of the offending token; token.EOF at EOF
	Expected []token.Kind // kinds that would have been accepted instead
}

// AtEOF reports whether the parse ran out of input.
func (e *SyntaxError) AtEOF() bool { return e.Kind == token.EOF }

// Error renders the diagnostic as
//
//	unexpected token at line 3 with text: ')'
//	unexpected token. Reached EOF
func (e *SyntaxError) Error() string {
	if e.AtEOF() {
		return fmt.Sprintf("%s. Reached EOF", e.Reason)
	}
	return fmt.Sprintf("%s at line %d with text: '%s'", e.Reason, e.Line, e.Text)
}

// Expecting lists the accepted kinds in source spelling, e.g. `";" or "("`.
// It returns "" when the set is empty.
func (e *SyntaxError) Expecting() string {
	if len(e.Expected) == 0 {
		return ""
	}
	parts := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		parts[i] = fmt.Sprintf("%q", k.String())
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
