// Package keymapjson encodes parsed keymap files as JSON.
package keymapjson

import (
	"github.com/ohler55/ojg/oj"

	"github.com/Superchig/keymap/ast"
)

// Various concrete types used to marshal keymap statements.
type (
	// jsonStatement represents a keymap statement as JSON.
	jsonStatement struct {
		Type    string  `json:"type"` // Always "map"
		Key     jsonKey `json:"key"`
		Command string  `json:"command"`
	}

	// jsonKey represents a key reference as JSON.
	jsonKey struct {
		Modifier string `json:"modifier,omitempty"`
		Name     string `json:"name"`
	}
)

// MarshalFile returns the JSON encoding of f's statements as an array of
// statement objects.
func MarshalFile(f *ast.File) ([]byte, error) {
	stmts := make([]jsonStatement, 0, len(f.Body))

	for _, stmt := range f.Body {
		switch stmt := stmt.(type) {
		case *ast.MapStatement:
			stmts = append(stmts, jsonStatement{
				Type: "map",
				Key: jsonKey{
					Modifier: stmt.Key.Modifier.String(),
					Name:     stmt.Key.Name,
				},
				Command: stmt.Command,
			})
		}
	}

	return oj.Marshal(stmts)
}
