// Package token defines the token kinds and the Token struct shared by the C1
// lexer and parser.
//
// Tokens are the smallest meaningful units of a C1 source text. Every token
// carries its kind, the exact slice of source it was scanned from, and the
// 1-based line it starts on. The set of kinds is closed: the lexer never
// produces anything outside the constants below.
package token

// Kind identifies the lexical category of a token.
type Kind int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ERROR is produced for input that matches no lexical rule. The lexer does
	// not stop on it; no grammar rule accepts it, so the parser reports it.
	ERROR Kind = iota
	// EOF marks the end of the token stream. It stands in for "no token" and
	// is returned on every read once the input is exhausted.
	EOF
	// LINEBREAK is a bare newline. It only bumps the line counter inside the
	// lexer and is never handed to the parser.
	LINEBREAK

	// ── Keywords ───────────────────────────────────────────────────────────────

	BOOL   // bool
	DO     // do
	ELSE   // else
	FLOAT  // float
	FOR    // for
	IF     // if
	INT    // int
	PRINTF // printf
	RETURN // return
	VOID   // void
	WHILE  // while

	// ── Operators and punctuation ──────────────────────────────────────────────

	PLUS      // +
	MINUS     // -
	ASTERISK  // *
	SLASH     // /
	ASSIGN    // =
	EQ        // ==
	NEQ       // !=
	LT        // <
	GT        // >
	LTE       // <=
	GTE       // >=
	AND       // &&
	OR        // ||
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// ── Literals ───────────────────────────────────────────────────────────────

	// CONST_INT is a run of decimal digits: 0, 42.
	CONST_INT
	// CONST_FLOAT is a decimal float: 1.5, .5, 1.5e-3, .5E2, 33E+2.
	CONST_FLOAT
	// CONST_BOOLEAN is one of the literals true or false.
	CONST_BOOLEAN
	// CONST_STRING is a double-quoted run of characters without newline or
	// quote. The literal keeps its quotes.
	CONST_STRING
	// IDENT is an identifier: [a-zA-Z][a-zA-Z0-9]*. There is no underscore.
	IDENT
)

// names holds the display form of every kind. Keywords and operators use their
// source spelling so diagnostics read like the program text.
var names = [...]string{
	ERROR:     "error",
	EOF:       "end of input",
	LINEBREAK: "line break",

	BOOL:   "bool",
	DO:     "do",
	ELSE:   "else",
	FLOAT:  "float",
	FOR:    "for",
	IF:     "if",
	INT:    "int",
	PRINTF: "printf",
	RETURN: "return",
	VOID:   "void",
	WHILE:  "while",

	PLUS:      "+",
	MINUS:     "-",
	ASTERISK:  "*",
	SLASH:     "/",
	ASSIGN:    "=",
	EQ:        "==",
	NEQ:       "!=",
	LT:        "<",
	GT:        ">",
	LTE:       "<=",
	GTE:       ">=",
	AND:       "&&",
	OR:        "||",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",

	CONST_INT:     "int constant",
	CONST_FLOAT:   "float constant",
	CONST_BOOLEAN: "boolean constant",
	CONST_STRING:  "string constant",
	IDENT:         "identifier",
}

// String returns the source spelling of keyword and operator kinds and a short
// category name for everything else.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

var keywordKinds = []Kind{BOOL, DO, ELSE, FLOAT, FOR, IF, INT, PRINTF, RETURN, VOID, WHILE}

var operatorKinds = []Kind{
	EQ, NEQ, LTE, GTE, AND, OR,
	PLUS, MINUS, ASTERISK, SLASH, ASSIGN, LT, GT, COMMA, SEMICOLON,
	LPAREN, RPAREN, LBRACE, RBRACE,
}

// Keywords returns the reserved words in declaration order. The lexer matches
// them as literal spellings ahead of the identifier pattern. Each call returns
// a new slice.
func Keywords() []Kind {
	return append([]Kind(nil), keywordKinds...)
}

// Operators returns the operator and punctuation kinds. Two-character
// operators come first; the lexer prefers them over their one-character
// prefixes. Each call returns a new slice.
func Operators() []Kind {
	return append([]Kind(nil), operatorKinds...)
}

// keywords maps the literal text of every word that is not an identifier.
var keywords = map[string]Kind{
	"bool":   BOOL,
	"do":     DO,
	"else":   ELSE,
	"float":  FLOAT,
	"for":    FOR,
	"if":     IF,
	"int":    INT,
	"printf": PRINTF,
	"return": RETURN,
	"void":   VOID,
	"while":  WHILE,
	"true":   CONST_BOOLEAN,
	"false":  CONST_BOOLEAN,
}

// LookupIdent classifies a word lexeme. Exact keyword spellings yield their
// keyword kind, true and false yield CONST_BOOLEAN, anything else is IDENT.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

// Token is a single lexical unit produced by the C1 lexer.
//
// Fields:
//   - Kind    — the category of this token (see Kind constants)
//   - Literal — the exact source text that was scanned
//   - Line    — 1-based source line number; 0 for EOF
type Token struct {
	Kind    Kind
	Literal string
	Line    int
}

// IsEOF reports whether t marks the end of the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// String returns the literal text of the token.
func (t Token) String() string {
	return t.Literal
}
