// Package ast exposes AST elements used by keymap configuration files.
package ast

import (
	"fmt"

	"github.com/Superchig/keymap/token"
)

// Modifier is a key modifier. The zero value means no modifier.
type Modifier int

// Supported modifiers.
const (
	ModNone Modifier = iota
	ModCtrl
	ModShift
	ModAlt
)

// String returns the spelling of m as it appears in source text. ModNone
// returns the empty string.
func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModShift:
		return "shift"
	case ModAlt:
		return "alt"
	default:
		return ""
	}
}

// LookupModifier returns the Modifier spelled lit, or ModNone with false if
// lit names no modifier.
func LookupModifier(lit string) (Modifier, bool) {
	switch lit {
	case "ctrl":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "alt":
		return ModAlt, true
	default:
		return ModNone, false
	}
}

// File is a parsed keymap file.
type File struct {
	Name string      // Filename the file was parsed from, if any
	Body []Statement // Statements in the order they appear
}

// Statement is a single top-level directive in a keymap file.
type Statement interface {
	astStmt()

	// Pos returns the position of the first character belonging to the
	// statement.
	Pos() token.Position
}

// MapStatement binds a key to a command:
//
//	map ctrl+k up
type MapStatement struct {
	Key     Key    // Key being bound
	Command string // Command the key is bound to

	MapPos token.Position // Position of the map keyword
}

func (*MapStatement) astStmt() {}

// Pos returns the position of the map keyword.
func (s *MapStatement) Pos() token.Position { return s.MapPos }

// Key is a key reference, optionally qualified by a modifier.
type Key struct {
	Modifier Modifier // ModNone when the key is unqualified
	Name     string   // Key name, like k or up
}

// String returns the canonical spelling of k, like "ctrl+k" or "up".
func (k Key) String() string {
	if k.Modifier == ModNone {
		return k.Name
	}
	return fmt.Sprintf("%s+%s", k.Modifier, k.Name)
}
