package keymapyaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Superchig/keymap/encoding/keymapyaml"
	"github.com/Superchig/keymap/parser"
)

func TestToKeymap(t *testing.T) {
	src := []byte(`
bindings:
  j: down
  ctrl+k: up
`)

	out, err := keymapyaml.ToKeymap(src)
	require.NoError(t, err)
	require.Equal(t, "map ctrl+k up\nmap j down\n", string(out))
}

func TestToKeymap_Empty(t *testing.T) {
	out, err := keymapyaml.ToKeymap([]byte("bindings: {}"))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestToKeymap_InvalidYAML(t *testing.T) {
	_, err := keymapyaml.ToKeymap([]byte("bindings: ["))
	require.ErrorContains(t, err, "invalid YAML")
}

func TestToKeymap_InvalidBinding(t *testing.T) {
	_, err := keymapyaml.ToKeymap([]byte("bindings: {\"ctrl+\": up}"))
	require.ErrorContains(t, err, "invalid bindings")
}

func TestFromFile(t *testing.T) {
	f, err := parser.ParseFile("", []byte("map ctrl+k up\nmap j down"))
	require.NoError(t, err)

	out, err := keymapyaml.FromFile(f)
	require.NoError(t, err)
	require.Equal(t, "bindings:\n    ctrl+k: up\n    j: down\n", string(out))
}

// YAML in, YAML out: the two conversions agree with each other.
func TestRoundTrip(t *testing.T) {
	src := []byte("bindings:\n    alt+x: quit\n    j: down\n")

	text, err := keymapyaml.ToKeymap(src)
	require.NoError(t, err)

	f, err := parser.ParseFile("", text)
	require.NoError(t, err)

	back, err := keymapyaml.FromFile(f)
	require.NoError(t, err)
	require.Equal(t, string(src), string(back))
}
