package parser_test

import (
	"errors"
	"testing"

	"github.com/metaphox/c1-lang/parser"
	"github.com/metaphox/c1-lang/token"
)

func TestSyntaxError_Error(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"void f() {\n  x = 1 +;\n}", "unexpected token at line 2 with text: ';'"},
		{"main() {}", "unexpected type at line 1 with text: 'main'"},
		{"void f() {\n\n  42;\n}", "empty statement at line 3 with text: '42'"},
		{"void f() {", "unexpected token. Reached EOF"},
		{"void f", "unexpected token. Reached EOF"},
	}
	for _, tt := range tests {
		err := parser.Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): expected an error", tt.input)
			continue
		}
		if got := err.Error(); got != tt.want {
			t.Errorf("Parse(%q):\n got  %q\n want %q", tt.input, got, tt.want)
		}
	}
}

func TestSyntaxError_Expecting(t *testing.T) {
	tests := []struct {
		expected []token.Kind
		want     string
	}{
		{nil, ""},
		{[]token.Kind{token.SEMICOLON}, `";"`},
		{[]token.Kind{token.LPAREN, token.IDENT}, `"(" or "identifier"`},
		{[]token.Kind{token.BOOL, token.FLOAT, token.INT}, `"bool", "float" or "int"`},
	}
	for _, tt := range tests {
		se := &parser.SyntaxError{Reason: parser.ReasonUnexpectedToken, Expected: tt.expected}
		if got := se.Expecting(); got != tt.want {
			t.Errorf("Expecting(%v) = %q, want %q", tt.expected, got, tt.want)
		}
	}
}

// TestSyntaxError_ExpectedIsCopied checks that editing an error's Expected
// list leaves later parses unaffected.
func TestSyntaxError_ExpectedIsCopied(t *testing.T) {
	var se *parser.SyntaxError
	if !errors.As(parser.Parse("x"), &se) {
		t.Fatal("Parse(\"x\"): expected a *SyntaxError")
	}
	if len(se.Expected) == 0 || se.Expected[0] != token.BOOL {
		t.Fatalf("Expected = %v, want the return types", se.Expected)
	}
	se.Expected[0] = token.IDENT
	if err := parser.Parse("bool f() {}"); err != nil {
		t.Errorf("Parse after editing Expected: %v", err)
	}

	// The same holds for the statement and factor sets.
	for _, src := range []string{"void f() { 42; }", "void f() { x = ; }"} {
		if !errors.As(parser.Parse(src), &se) || len(se.Expected) == 0 {
			t.Fatalf("Parse(%q): expected a *SyntaxError with an expected set", src)
		}
		for i := range se.Expected {
			se.Expected[i] = token.EOF
		}
	}
	if err := parser.Parse("void f() { if (x) y = -(1 + 2); return f(true); }"); err != nil {
		t.Errorf("Parse after editing Expected: %v", err)
	}
}
