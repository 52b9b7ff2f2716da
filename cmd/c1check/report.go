package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/metaphox/c1-lang/parser"
)

// reportError prints err for the named source. Syntax errors are followed by
// the offending source line and the tokens that would have been accepted.
// The line is left out when a block comment spanning lines precedes it, since
// the reported line number no longer counts those newlines.
//
//	prog.c1:2: unexpected token at line 2 with text: ';'
//	    x = 1 +;
//	    expected "int constant", "float constant", ... or "("
func reportError(w io.Writer, name, src string, err error) {
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		fmt.Fprintf(w, "%s: %s\n", name, err)
		return
	}
	if se.AtEOF() {
		fmt.Fprintf(w, "%s: %s\n", name, se)
	} else {
		fmt.Fprintf(w, "%s:%d: %s\n", name, se.Line, se)
		if line, ok := sourceLine(src, se.Line); ok && !foldedComment(src, se.Line) {
			fmt.Fprintf(w, "    %s\n", strings.TrimSpace(line))
		}
	}
	if exp := se.Expecting(); exp != "" {
		fmt.Fprintf(w, "    expected %s\n", exp)
	}
}

// sourceLine returns the 1-based line n of src.
func sourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// foldedComment reports whether a block comment containing a newline starts
// within the first n lines of src. The lexer does not count newlines inside
// comments, so line numbers after such a comment are short of the real ones.
func foldedComment(src string, n int) bool {
	line := 1
	for i := 0; i < len(src) && line <= n; i++ {
		switch {
		case src[i] == '\n':
			line++
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return false
			}
			body := src[i+2 : i+2+end]
			if strings.Contains(body, "\n") {
				return true
			}
			i += end + 3
		}
	}
	return false
}
