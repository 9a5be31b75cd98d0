// Package lexer splits keymap source text into tokens.
package lexer

import (
	"fmt"

	"github.com/Superchig/keymap/diag"
	"github.com/Superchig/keymap/scanner"
	"github.com/Superchig/keymap/token"
)

// Lex tokenizes src, returning the tokens in source order. Whitespace is
// consumed and dropped; newlines produce TERMINATOR tokens. Each token
// carries the position of its first character.
//
// Characters that start no token are reported as error diagnostics and
// skipped, so a single bad character does not hide later problems.
func Lex(filename, src string) ([]token.Tok, diag.Diagnostics) {
	l := lexer{
		filename: filename,
		s:        scanner.New(src),
	}
	return l.run()
}

type lexer struct {
	filename string
	s        *scanner.Scanner

	toks  []token.Tok
	diags diag.Diagnostics
}

func (l *lexer) run() ([]token.Tok, diag.Diagnostics) {
	for !l.s.IsDone() {
		if l.skipWhitespace() {
			continue
		}

		start := l.pos()

		switch {
		case l.s.Take('\n'):
			l.emit(token.TERMINATOR, "\n", start)
		case l.s.Take('+'):
			l.emit(token.PLUS, "+", start)
		default:
			l.lexIdent(start)
		}
	}

	return l.toks, l.diags
}

// skipWhitespace consumes a run of spaces and tabs, reporting whether any
// were present.
func (l *lexer) skipWhitespace() bool {
	skipped := false
	for {
		if _, ok := l.s.PopAny(' ', '\t'); !ok {
			return skipped
		}
		skipped = true
	}
}

// lexIdent scans a maximal identifier run starting at the current character
// and classifies it as a keyword, a modifier, or a plain identifier. If the
// current character cannot start an identifier, it is reported and skipped.
func (l *lexer) lexIdent(start token.Position) {
	first, ok := scanner.Transform(l.s, func(ch rune) (rune, bool) {
		return ch, isLetter(ch)
	})
	if !ok {
		ch, _ := l.s.Pop()
		l.diags.Add(diag.Diagnostic{
			Severity: diag.SeverityLevelError,
			StartPos: start,
			Message:  fmt.Sprintf("unexpected character %q", ch),
			Value:    string(ch),
		})
		return
	}

	lit := []rune{first}
	for {
		ch, ok := scanner.Transform(l.s, func(ch rune) (rune, bool) {
			return ch, isLetter(ch) || isDigit(ch) || ch == '_'
		})
		if !ok {
			break
		}
		lit = append(lit, ch)
	}

	l.emit(token.Lookup(string(lit)), string(lit), start)
}

func (l *lexer) emit(kind token.Token, lit string, pos token.Position) {
	l.toks = append(l.toks, token.Tok{Kind: kind, Lit: lit, Pos: pos})
}

func (l *lexer) pos() token.Position {
	pos := l.s.Position()
	pos.Filename = l.filename
	return pos
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
