// Package keymap implements a high-level API for parsing and formatting
// keymap configuration files. A keymap file binds keys to commands, one
// binding per line:
//
//	map ctrl+k up
//	map j down
//
// A key is an identifier optionally qualified by one of the modifiers ctrl,
// shift, or alt, joined with "+". Commands are plain identifiers whose
// meaning belongs to the program applying the bindings.
//
// Lower-level APIs which give more control are available in the inner
// packages: scanner holds the character cursor, lexer the tokenizer, parser
// the grammar, and diag the error types with their console printer. The
// implementation of this package is minimal and serves as a reference for
// how to consume the lower-level packages.
package keymap

import (
	"strings"

	"github.com/Superchig/keymap/ast"
	"github.com/Superchig/keymap/parser"
	"github.com/Superchig/keymap/printer"
)

// Parse parses src as a keymap file. The filename is used for reporting
// errors. When the returned error is non-nil it is a diag.Diagnostics
// covering every problem found; the returned file holds the statements that
// parsed cleanly.
func Parse(filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(filename, src)
}

// ParseString parses str as a keymap file without a filename.
func ParseString(str string) (*ast.File, error) {
	return parser.ParseFile("", []byte(str))
}

// Format returns the canonical text form of f.
func Format(f *ast.File) (string, error) {
	var sb strings.Builder
	if err := printer.Fprint(&sb, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Binding is a key bound to a command, with the key in its canonical
// spelling (like "ctrl+k").
type Binding struct {
	Key     string
	Command string
}

// Bindings flattens f's map statements into a list of bindings in file
// order. Repeated keys are kept; callers applying bindings in order get
// last-one-wins behavior.
func Bindings(f *ast.File) []Binding {
	var out []Binding
	for _, stmt := range f.Body {
		switch stmt := stmt.(type) {
		case *ast.MapStatement:
			out = append(out, Binding{
				Key:     stmt.Key.String(),
				Command: stmt.Command,
			})
		}
	}
	return out
}
