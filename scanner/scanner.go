// Package scanner implements a character-level cursor over keymap source
// text. It is the primitive the lexer is built on: callers compose parse
// functions out of lookahead and conditional consumption.
//
// Every operation either advances the cursor past exactly the characters it
// matched or leaves it untouched. A failed match is always side-effect-free,
// so callers can try one rule and fall back to another from the same
// position. The cursor never rewinds.
package scanner

import "github.com/Superchig/keymap/token"

// Scanner is a cursor over a fixed sequence of characters. The sequence is
// set at construction and never mutated afterwards; only the cursor moves,
// and only forwards.
//
// A Scanner must not be mutated from multiple goroutines.
type Scanner struct {
	chars  []rune
	cursor int

	// Current line and column, both starting at 1. Used to mark token
	// start positions for diagnostics.
	line int
	col  int
}

// New returns a Scanner reading the characters of input from the beginning.
// Any input is accepted, including the empty string.
func New(input string) *Scanner {
	return &Scanner{
		chars: []rune(input),
		line:  1,
		col:   1,
	}
}

// Cursor returns the current cursor position as a character offset from the
// start of the input. Useful for reporting errors.
func (s *Scanner) Cursor() int { return s.cursor }

// Position returns the line and column of the next character to be read.
// The Filename field is left empty; the lexer fills it in.
func (s *Scanner) Position() token.Position {
	return token.Position{Line: s.line, Column: s.col}
}

// IsDone reports whether the input is exhausted and further progress is
// impossible.
func (s *Scanner) IsDone() bool { return s.cursor >= len(s.chars) }

// Peek returns the next character without advancing the cursor. The second
// return value is false if the input is exhausted.
func (s *Scanner) Peek() (rune, bool) {
	if s.IsDone() {
		return 0, false
	}
	return s.chars[s.cursor], true
}

// Pop returns the next character and advances the cursor past it. If the
// input is exhausted, Pop returns false and the cursor is unchanged.
func (s *Scanner) Pop() (rune, bool) {
	if s.IsDone() {
		return 0, false
	}

	ch := s.chars[s.cursor]
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.cursor++
	return ch, true
}

// Take consumes the next character iff it equals target. It reports whether
// the character was consumed; on a mismatch or exhausted input the cursor is
// unchanged.
func (s *Scanner) Take(target rune) bool {
	if ch, ok := s.Peek(); ok && ch == target {
		s.Pop()
		return true
	}
	return false
}

// TakeString consumes the characters of target iff they all appear at the
// current cursor position, in order. It reports whether the phrase was
// consumed; on any mismatch the cursor is unchanged.
func (s *Scanner) TakeString(target string) bool {
	phrase := []rune(target)
	if s.cursor+len(phrase) > len(s.chars) {
		return false
	}
	for i, ch := range phrase {
		if s.chars[s.cursor+i] != ch {
			return false
		}
	}

	// Pop rune by rune so line and column tracking stay correct.
	for range phrase {
		s.Pop()
	}
	return true
}

// PopInRange consumes and returns the next character iff it falls within the
// inclusive range [lo, hi]. Otherwise it returns false and the cursor is
// unchanged.
func (s *Scanner) PopInRange(lo, hi rune) (rune, bool) {
	if ch, ok := s.Peek(); ok && lo <= ch && ch <= hi {
		s.Pop()
		return ch, true
	}
	return 0, false
}

// PopAny consumes and returns the next character iff it is one of set.
// Otherwise it returns false and the cursor is unchanged.
func (s *Scanner) PopAny(set ...rune) (rune, bool) {
	ch, ok := s.Peek()
	if !ok {
		return 0, false
	}
	for _, want := range set {
		if ch == want {
			s.Pop()
			return ch, true
		}
	}
	return 0, false
}

// Transform invokes fn at most once with the next character. If fn reports a
// match, the character is consumed and fn's value returned. If fn reports no
// match or the input is exhausted, the cursor is unchanged and Transform
// returns the zero value and false.
//
// Transform generalizes Take to arbitrary per-character classification:
// Take(t) behaves exactly like a Transform whose fn matches only t.
func Transform[T any](s *Scanner, fn func(ch rune) (T, bool)) (T, bool) {
	ch, ok := s.Peek()
	if !ok {
		var zero T
		return zero, false
	}

	out, ok := fn(ch)
	if !ok {
		var zero T
		return zero, false
	}
	s.Pop()
	return out, true
}
