package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Superchig/keymap/ast"
	"github.com/Superchig/keymap/parser"
	"github.com/Superchig/keymap/printer"
)

func TestFprint(t *testing.T) {
	f := &ast.File{
		Body: []ast.Statement{
			&ast.MapStatement{
				Key:     ast.Key{Modifier: ast.ModCtrl, Name: "k"},
				Command: "up",
			},
			&ast.MapStatement{
				Key:     ast.Key{Name: "j"},
				Command: "down",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, f))
	require.Equal(t, "map ctrl+k up\nmap j down\n", buf.String())
}

func TestFprint_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, &ast.File{}))
	require.Equal(t, "", buf.String())
}

// Printing normalizes whitespace but never changes meaning: parsing the
// printed form gives back the same statements.
func TestFprint_RoundTrip(t *testing.T) {
	src := "\nmap   alt+x   quit\n\nmap\tdown\tdown"

	f, err := parser.ParseFile("", []byte(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, f))
	require.Equal(t, "map alt+x quit\nmap down down\n", buf.String())

	again, err := parser.ParseFile("", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, again.Body, len(f.Body))
	for i := range f.Body {
		want := f.Body[i].(*ast.MapStatement)
		got := again.Body[i].(*ast.MapStatement)
		require.Equal(t, want.Key, got.Key)
		require.Equal(t, want.Command, got.Command)
	}
}
