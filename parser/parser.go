// Package parser implements the C1 recursive-descent recognizer.
//
// The parser reads tokens from a [lexer.Buffer] and decides whether they form
// a C1 program. It builds no tree: the position in the derivation is the call
// stack of the methods below, one per grammar nonterminal.
//
// Usage:
//
//	if err := parser.Parse(source); err != nil {
//		var se *parser.SyntaxError
//		errors.As(err, &se) // se.Line, se.Text, se.Expected
//	}
//
// Parsing is fail-fast. Each method returns nil or the first error it sees,
// unchanged. A token is never put back once a production has been chosen, and
// there is no recovery: exactly one diagnostic is reported.
//
// Grammar:
//
//	program            ::= ( functiondefinition )*
//	functiondefinition ::= returntype ID "(" ")" "{" statementlist "}"
//	returntype         ::= "bool" | "float" | "int" | "void"
//	statementlist      ::= ( block )*
//	block              ::= "{" statementlist "}" | statement
//	statement          ::= ifstatement
//	                     | "return" ( assignment )? ";"
//	                     | "printf" "(" assignment ")" ";"
//	                     | ID "=" assignment ";"
//	                     | functioncall ";"
//	ifstatement        ::= "if" "(" assignment ")" block
//	functioncall       ::= ID "(" ")"
//	assignment         ::= ( ID "=" assignment ) | expr
//	expr               ::= simpexpr ( ("=="|"!="|"<="|">="|"<"|">") simpexpr )?
//	simpexpr           ::= ("-")? term ( ("+"|"-"|"||") term )*
//	term               ::= factor ( ("*"|"/"|"&&") factor )*
//	factor             ::= ConstInt | ConstFloat | ConstBoolean
//	                     | functioncall | ID | "(" assignment ")"
package parser

import (
	"io"

	"github.com/metaphox/c1-lang/lexer"
	"github.com/metaphox/c1-lang/token"
)

// ── Token sets ────────────────────────────────────────────────────────────────

var (
	returnTypes    = []token.Kind{token.BOOL, token.FLOAT, token.INT, token.VOID}
	relOps         = []token.Kind{token.EQ, token.NEQ, token.LTE, token.GTE, token.LT, token.GT}
	addOps         = []token.Kind{token.PLUS, token.MINUS, token.OR}
	mulOps         = []token.Kind{token.ASTERISK, token.SLASH, token.AND}
	statementFirst = []token.Kind{token.IF, token.RETURN, token.PRINTF, token.IDENT}
)

// factorFirst is every token a factor can start with.
var factorFirst = []token.Kind{
	token.CONST_INT, token.CONST_FLOAT, token.CONST_BOOLEAN, token.IDENT, token.LPAREN,
}

// assignmentFirst is every token an assignment can start with.
var assignmentFirst = append([]token.Kind{token.MINUS}, factorFirst...)

// ── Entry points ──────────────────────────────────────────────────────────────

// Parse reports whether text is a valid C1 program. It returns nil on success
// and a *SyntaxError naming the first offending token otherwise.
func Parse(text string) error {
	return New(text).Program()
}

// ParseReader reads all of r and parses it with [Parse].
func ParseReader(r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Parse(string(src))
}

// Parser holds the lookahead buffer for a single parse. Create one with [New].
// The exported methods each recognise one nonterminal starting at the current
// token, so a harness can run any rule against a fragment.
type Parser struct {
	buf *lexer.Buffer
}

// New creates a Parser over text with the buffer primed on its first two
// tokens.
func New(text string) *Parser {
	return &Parser{buf: lexer.NewBuffer(text)}
}

// Buffer returns the underlying lookahead buffer.
func (p *Parser) Buffer() *lexer.Buffer { return p.buf }

// ── Internal token management ─────────────────────────────────────────────────

// curIs reports whether the current token has one of the given kinds.
func (p *Parser) curIs(kinds ...token.Kind) bool {
	cur := p.buf.CurrentKind()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// peekIs reports whether the token after the current one has kind k.
func (p *Parser) peekIs(k token.Kind) bool { return p.buf.PeekKind() == k }

// expect consumes the current token if it has kind k and fails otherwise.
func (p *Parser) expect(k token.Kind) error {
	if p.curIs(k) {
		p.buf.Advance()
		return nil
	}
	return p.errorAtCurrent(ReasonUnexpectedToken, k)
}

// expectAll runs expect for each kind in order and stops at the first failure.
func (p *Parser) expectAll(kinds ...token.Kind) error {
	for _, k := range kinds {
		if err := p.expect(k); err != nil {
			return err
		}
	}
	return nil
}

// errorAtCurrent builds a SyntaxError citing the current token. expected is
// copied; callers pass the package's token sets.
func (p *Parser) errorAtCurrent(reason Reason, expected ...token.Kind) *SyntaxError {
	cur := p.buf.Current()
	return &SyntaxError{
		Reason:   reason,
		Line:     cur.Line,
		Text:     cur.Literal,
		Kind:     cur.Kind,
		Expected: append([]token.Kind(nil), expected...),
	}
}

// ── Program structure ─────────────────────────────────────────────────────────

// Program parses functiondefinitions for as long as input remains.
func (p *Parser) Program() error {
	for !p.buf.AtEOF() {
		if err := p.FunctionDefinition(); err != nil {
			return err
		}
	}
	return nil
}

// FunctionDefinition parses `returntype ID ( ) { statementlist }`.
func (p *Parser) FunctionDefinition() error {
	if err := p.ReturnType(); err != nil {
		return err
	}
	if err := p.expectAll(token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE); err != nil {
		return err
	}
	if err := p.StatementList(); err != nil {
		return err
	}
	return p.expect(token.RBRACE)
}

// ReturnType parses one of bool, float, int, void.
func (p *Parser) ReturnType() error {
	if !p.curIs(returnTypes...) {
		return p.errorAtCurrent(ReasonUnexpectedType, returnTypes...)
	}
	p.buf.Advance()
	return nil
}

// StatementList parses blocks until the input ends or a '}' is current. The
// '}' itself is left for the caller.
func (p *Parser) StatementList() error {
	for !p.buf.AtEOF() && !p.curIs(token.RBRACE) {
		if err := p.Block(); err != nil {
			return err
		}
	}
	return nil
}

// Block parses a braced statementlist or a single statement.
func (p *Parser) Block() error {
	if !p.curIs(token.LBRACE) {
		return p.Statement()
	}
	p.buf.Advance()
	if err := p.StatementList(); err != nil {
		return err
	}
	return p.expect(token.RBRACE)
}

// ── Statements ────────────────────────────────────────────────────────────────

// Statement dispatches on the current token. An identifier followed by '='
// starts an assignment; any other identifier must start a function call, so a
// bare `foo;` is rejected.
func (p *Parser) Statement() error {
	var err error
	switch {
	case p.curIs(token.IF):
		return p.IfStatement()
	case p.curIs(token.RETURN):
		err = p.ReturnStatement()
	case p.curIs(token.PRINTF):
		err = p.Printf()
	case p.curIs(token.IDENT) && p.peekIs(token.ASSIGN):
		err = p.StatAssignment()
	case p.curIs(token.IDENT):
		err = p.FunctionCall()
	default:
		return p.errorAtCurrent(ReasonEmptyStatement, statementFirst...)
	}
	if err != nil {
		return err
	}
	return p.expect(token.SEMICOLON)
}

// IfStatement parses `if ( assignment ) block`.
func (p *Parser) IfStatement() error {
	if err := p.expectAll(token.IF, token.LPAREN); err != nil {
		return err
	}
	if err := p.Assignment(); err != nil {
		return err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return err
	}
	return p.Block()
}

// ReturnStatement parses `return` with an optional assignment. The value is
// present when the current token can start one. The ';' is left to Statement.
func (p *Parser) ReturnStatement() error {
	if err := p.expect(token.RETURN); err != nil {
		return err
	}
	if p.curIs(assignmentFirst...) {
		return p.Assignment()
	}
	return nil
}

// Printf parses `printf ( assignment )` without the trailing ';'.
func (p *Parser) Printf() error {
	if err := p.expectAll(token.PRINTF, token.LPAREN); err != nil {
		return err
	}
	if err := p.Assignment(); err != nil {
		return err
	}
	return p.expect(token.RPAREN)
}

// StatAssignment parses `ID = assignment` without the trailing ';'.
func (p *Parser) StatAssignment() error {
	if err := p.expectAll(token.IDENT, token.ASSIGN); err != nil {
		return err
	}
	return p.Assignment()
}

// FunctionCall parses `ID ( )`. C1 calls take no arguments.
func (p *Parser) FunctionCall() error {
	return p.expectAll(token.IDENT, token.LPAREN, token.RPAREN)
}

// ── Expressions ───────────────────────────────────────────────────────────────
//
// Precedence is encoded by nesting, loosest first:
//   assignment (right-assoc) → expr (one relational op at most)
//   → simpexpr (+ - ||, leading unary -) → term (* / &&) → factor

// Assignment parses a chain `a = b = ... = expr`. The peek at the token after
// an identifier decides between a target and an expression operand.
func (p *Parser) Assignment() error {
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		p.buf.Advance()
		p.buf.Advance()
		return p.Assignment()
	}
	return p.Expr()
}

// Expr parses a simpexpr optionally compared with a second one. Relational
// operators do not chain: after `a < b` a further '<' is left unconsumed.
func (p *Parser) Expr() error {
	if err := p.SimpExpr(); err != nil {
		return err
	}
	if !p.curIs(relOps...) {
		return nil
	}
	p.buf.Advance()
	return p.SimpExpr()
}

// SimpExpr parses an optional leading '-' and a sequence of terms joined by
// '+', '-' or '||'.
func (p *Parser) SimpExpr() error {
	if p.curIs(token.MINUS) {
		p.buf.Advance()
	}
	if err := p.Term(); err != nil {
		return err
	}
	for p.curIs(addOps...) {
		p.buf.Advance()
		if err := p.Term(); err != nil {
			return err
		}
	}
	return nil
}

// Term parses factors joined by '*', '/' or '&&'.
func (p *Parser) Term() error {
	if err := p.Factor(); err != nil {
		return err
	}
	for p.curIs(mulOps...) {
		p.buf.Advance()
		if err := p.Factor(); err != nil {
			return err
		}
	}
	return nil
}

// Factor parses a literal, a call, a variable or a parenthesised assignment.
func (p *Parser) Factor() error {
	switch {
	case p.curIs(token.CONST_INT, token.CONST_FLOAT, token.CONST_BOOLEAN):
		p.buf.Advance()
		return nil
	case p.curIs(token.IDENT) && p.peekIs(token.LPAREN):
		return p.FunctionCall()
	case p.curIs(token.IDENT):
		p.buf.Advance()
		return nil
	case !p.curIs(token.LPAREN):
		return p.errorAtCurrent(ReasonUnexpectedToken, factorFirst...)
	}
	p.buf.Advance()
	if err := p.Assignment(); err != nil {
		return err
	}
	return p.expect(token.RPAREN)
}
