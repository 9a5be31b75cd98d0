// Package token defines the lexical elements of a keymap configuration file
// and the positional information attached to them.
package token

import "fmt"

// Token is an individual lexical element in a keymap file.
type Token int

// List of all lexical elements.
const (
	ILLEGAL Token = iota // Invalid token

	IDENT      // key or command name, like up
	MODIFIER   // ctrl, shift, alt
	MAP        // map
	PLUS       // +
	TERMINATOR // \n
)

var tokenNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	IDENT:      "IDENT",
	MODIFIER:   "MODIFIER",
	MAP:        "MAP",
	PLUS:       "PLUS",
	TERMINATOR: "TERMINATOR",
}

// String returns the name of t.
func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "ILLEGAL"
	}
	return tokenNames[t]
}

// GoString returns the name of t.
func (t Token) GoString() string { return t.String() }

// Lookup classifies an identifier literal as a keyword, a modifier, or a
// plain IDENT.
func Lookup(lit string) Token {
	switch lit {
	case "map":
		return MAP
	case "ctrl", "shift", "alt":
		return MODIFIER
	default:
		return IDENT
	}
}

// Position holds the location of a lexical element within a file. Lines and
// columns start at 1.
type Position struct {
	Filename string // Filename the element is from, if any
	Line     int    // Line number, starting at 1
	Column   int    // Column number, starting at 1 (in characters)
}

// Valid reports whether the position is valid: line must be non-zero.
func (p Position) Valid() bool { return p.Line > 0 }

// String returns a string representation of the position in one of the
// following forms:
//
//	file:line:column   Valid position with a file name
//	line:column        Valid position without a file name
//	file               Invalid position with a file name
//	-                  Invalid position without a file name
func (p Position) String() string {
	s := p.Filename

	if p.Valid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	if s == "" {
		s = "-"
	}
	return s
}

// Tok is a token emitted by the lexer: its kind, its literal text, and the
// position of its first character.
type Tok struct {
	Kind Token
	Lit  string
	Pos  Position
}

// String returns a human-readable representation of t for debugging.
func (t Tok) String() string {
	if t.Lit == "" {
		return fmt.Sprintf("%s: %s", t.Pos, t.Kind)
	}
	return fmt.Sprintf("%s: %s %q", t.Pos, t.Kind, t.Lit)
}
