// Package parser implements utilities for parsing keymap configuration
// files.
package parser

import (
	"fmt"

	"github.com/Superchig/keymap/ast"
	"github.com/Superchig/keymap/diag"
	"github.com/Superchig/keymap/lexer"
	"github.com/Superchig/keymap/token"
)

// ParseFile lexes and parses the keymap file specified by src. The filename
// is used for reporting errors.
//
// If a parse error is encountered, the parser resynchronizes at the next
// line and continues, so the returned error (a diag.Diagnostics when
// non-nil) covers as much of the file as possible. The returned file holds
// every statement that parsed cleanly.
func ParseFile(filename string, src []byte) (*ast.File, error) {
	toks, diags := lexer.Lex(filename, string(src))

	p := parser{
		filename: filename,
		toks:     toks,
		diags:    diags,
	}

	f := p.parseFile()
	return f, p.diags.ErrorOrNil()
}

// parser reads a token stream with one token of lookahead. Failed matches
// never consume tokens, mirroring the scanner the tokens came from.
type parser struct {
	filename string
	toks     []token.Tok
	cursor   int

	diags diag.Diagnostics
}

func (p *parser) parseFile() *ast.File {
	f := &ast.File{Name: p.filename}

	for {
		// Blank lines between statements.
		for p.take(token.TERMINATOR) {
		}
		if p.atEOF() {
			return f
		}

		stmt, ok := p.parseStatement()
		if ok {
			f.Body = append(f.Body, stmt)

			if p.atEOF() {
				return f
			}
			if p.take(token.TERMINATOR) {
				continue
			}

			tk, _ := p.peek()
			p.errorf(tk.Pos, "expected end of line, got %s", tk.Kind)
		}

		p.resync()
	}
}

// parseStatement parses a single statement. Only map statements exist today.
func (p *parser) parseStatement() (ast.Statement, bool) {
	return p.parseMap()
}

func (p *parser) parseMap() (*ast.MapStatement, bool) {
	mapTok, ok := p.expect(token.MAP)
	if !ok {
		return nil, false
	}

	key, ok := p.parseKey()
	if !ok {
		return nil, false
	}

	cmd, ok := p.expect(token.IDENT)
	if !ok {
		return nil, false
	}

	return &ast.MapStatement{
		Key:     key,
		Command: cmd.Lit,
		MapPos:  mapTok.Pos,
	}, true
}

func (p *parser) parseKey() (ast.Key, bool) {
	var key ast.Key

	if mod, ok := p.takeLit(token.MODIFIER); ok {
		key.Modifier, _ = ast.LookupModifier(mod.Lit)

		if _, ok := p.expect(token.PLUS); !ok {
			return ast.Key{}, false
		}
	}

	name, ok := p.expect(token.IDENT)
	if !ok {
		return ast.Key{}, false
	}
	key.Name = name.Lit
	return key, true
}

// resync discards tokens through the next TERMINATOR so parsing can resume
// on the following line.
func (p *parser) resync() {
	for !p.atEOF() {
		tk := p.pop()
		if tk.Kind == token.TERMINATOR {
			return
		}
	}
}

func (p *parser) atEOF() bool { return p.cursor >= len(p.toks) }

func (p *parser) peek() (token.Tok, bool) {
	if p.atEOF() {
		return token.Tok{}, false
	}
	return p.toks[p.cursor], true
}

func (p *parser) pop() token.Tok {
	tk := p.toks[p.cursor]
	p.cursor++
	return tk
}

// take consumes the next token iff it has the given kind.
func (p *parser) take(kind token.Token) bool {
	_, ok := p.takeLit(kind)
	return ok
}

// takeLit is take, returning the consumed token.
func (p *parser) takeLit(kind token.Token) (token.Tok, bool) {
	if tk, ok := p.peek(); ok && tk.Kind == kind {
		return p.pop(), true
	}
	return token.Tok{}, false
}

// expect is takeLit, reporting a diagnostic when the next token does not
// have the given kind.
func (p *parser) expect(kind token.Token) (token.Tok, bool) {
	tk, ok := p.peek()
	if !ok {
		p.errorf(p.eofPos(), "expected %s, got end of file", describe(kind))
		return token.Tok{}, false
	}
	if tk.Kind != kind {
		p.errorf(tk.Pos, "expected %s, got %s", describe(kind), tk.Kind)
		return token.Tok{}, false
	}
	return p.pop(), true
}

func (p *parser) errorf(pos token.Position, format string, args ...any) {
	p.diags.Add(diag.Diagnostic{
		Severity: diag.SeverityLevelError,
		StartPos: pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// eofPos returns the position just past the last token, for errors about
// missing input.
func (p *parser) eofPos() token.Position {
	if len(p.toks) == 0 {
		return token.Position{Filename: p.filename, Line: 1, Column: 1}
	}
	last := p.toks[len(p.toks)-1]
	pos := last.Pos
	pos.Column += len([]rune(last.Lit))
	return pos
}

func describe(kind token.Token) string {
	switch kind {
	case token.IDENT:
		return "identifier"
	case token.MODIFIER:
		return "modifier"
	case token.MAP:
		return "map keyword"
	case token.PLUS:
		return `"+"`
	case token.TERMINATOR:
		return "end of line"
	default:
		return kind.String()
	}
}
