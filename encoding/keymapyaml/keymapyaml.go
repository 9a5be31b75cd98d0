// Package keymapyaml provides conversion between YAML and keymap
// configuration syntax.
//
// The YAML form is a mapping from key spellings to commands:
//
//	bindings:
//	  ctrl+k: up
//	  j: down
//
// which converts to:
//
//	map ctrl+k up
//	map j down
//
// This enables keeping bindings in YAML while using the standard keymap
// parser for everything downstream.
package keymapyaml

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Superchig/keymap/ast"
	"github.com/Superchig/keymap/parser"
)

type yamlFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// ToKeymap converts YAML bindings to keymap configuration syntax. Keys are
// emitted in sorted order so the output is deterministic. The generated text
// is checked with the keymap parser before being returned, so invalid key or
// command spellings surface here rather than at some later parse.
func ToKeymap(yamlData []byte) ([]byte, error) {
	var file yamlFile
	if err := yaml.Unmarshal(yamlData, &file); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	keys := make([]string, 0, len(file.Bindings))
	for key := range file.Bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&buf, "map %s %s\n", key, file.Bindings[key])
	}

	if _, err := parser.ParseFile("", buf.Bytes()); err != nil {
		return nil, fmt.Errorf("invalid bindings: %w", err)
	}
	return buf.Bytes(), nil
}

// FromFile converts a parsed keymap file to the YAML bindings form. When a
// key is bound more than once, the last binding wins, matching how callers
// apply map statements in order.
func FromFile(f *ast.File) ([]byte, error) {
	file := yamlFile{Bindings: map[string]string{}}

	for _, stmt := range f.Body {
		switch stmt := stmt.(type) {
		case *ast.MapStatement:
			file.Bindings[stmt.Key.String()] = stmt.Command
		}
	}

	return yaml.Marshal(file)
}
