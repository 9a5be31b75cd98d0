package lexer

import "github.com/Superchig/keymap/token"

// IsValidIdentifier reports whether in is a valid keymap identifier, i.e. a
// single key or command name. Modifier names and the map keyword are not
// identifiers.
func IsValidIdentifier(in string) bool {
	toks, diags := Lex("", in)
	if len(diags) > 0 || len(toks) != 1 {
		return false
	}
	tk := toks[0]
	return tk.Kind == token.IDENT && tk.Lit == in
}
