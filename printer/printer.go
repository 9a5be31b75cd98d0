// Package printer contains utilities for pretty-printing keymap files to
// their canonical text form.
package printer

import (
	"fmt"
	"io"

	"github.com/Superchig/keymap/ast"
)

// Fprint pretty-prints f to w: one statement per line, single spaces between
// elements, keys in their canonical modifier+name spelling.
func Fprint(w io.Writer, f *ast.File) error {
	for _, stmt := range f.Body {
		switch stmt := stmt.(type) {
		case *ast.MapStatement:
			if _, err := fmt.Fprintf(w, "map %s %s\n", stmt.Key, stmt.Command); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported statement type %T", stmt)
		}
	}
	return nil
}
