// Package ecma provides the shared scanning primitives used by the ECMAScript
// lexer in the js subpackage: a code-point cursor, source position recovery,
// and the lexical error type. It carries no language-specific knowledge.
package ecma // import "github.com/arwyn/ecma"

import (
	"bufio"
	"errors"
	"io"
)

// minRunes and maxRunes bound the buffer grown by NewCursorReader. A hostile
// or runaway io.Reader cannot force unbounded memory use; callers that know
// their source size should prefer NewCursor or NewCursorString instead.
var minRunes = 4096
var maxRunes = 1 << 22 // ~4M code points

// ErrSourceExceeded is returned when decoding from an io.Reader would grow
// the rune buffer past maxRunes.
var ErrSourceExceeded = errors.New("ecma: source exceeds maximum buffer size")

// Cursor is a capability object exposing the minimal surface a scanner needs
// to walk a sequence of Unicode code points: peek the next code point,
// consume it, and report position for span bookkeeping. It is the only
// collaborator the trie matcher and the scanner's sublexers depend on, so
// both can be exercised against a fake cursor in tests without involving I/O.
//
// Code point 0 is reserved as the end-of-input sentinel for Peek only; a
// source containing a real U+0000 is indistinguishable from end-of-input by
// Peek alone, so hot paths that care must gate on CanShift.
type Cursor struct {
	r   []rune
	pos int
	end int
}

// NewCursor wraps an already-decoded sequence of code points. The cursor is
// positioned at the start of the sequence.
func NewCursor(codePoints []rune) *Cursor {
	return &Cursor{r: codePoints, end: len(codePoints)}
}

// NewCursorString decodes a UTF-8 string into code points and wraps it. This
// is a convenience for callers that have not already decoded their input;
// the decoding itself is not part of the scanner's contract.
func NewCursorString(s string) *Cursor {
	return NewCursor([]rune(s))
}

// NewCursorReader decodes an io.Reader's UTF-8 bytes into code points,
// growing the internal buffer the way a streaming reader would, and returns
// the resulting Cursor. It returns ErrSourceExceeded if the source is larger
// than maxRunes.
func NewCursorReader(r io.Reader) (*Cursor, error) {
	br := bufio.NewReader(r)
	buf := make([]rune, 0, minRunes)
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(buf) == cap(buf) {
			if 2*cap(buf) > maxRunes {
				return nil, ErrSourceExceeded
			}
			grown := make([]rune, len(buf), 2*cap(buf))
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, c)
	}
	return NewCursor(buf), nil
}

// Peek returns the next unconsumed code point without advancing the cursor,
// or 0 if the cursor is exhausted.
func (c *Cursor) Peek() rune {
	if c.pos >= c.end {
		return 0
	}
	return c.r[c.pos]
}

// PeekAt returns the code point n positions ahead of the cursor (PeekAt(0)
// is equivalent to Peek), or 0 if that position is out of range. The
// scanner and trie matcher in this module look no further than PeekAt(1).
func (c *Cursor) PeekAt(n int) rune {
	i := c.pos + n
	if i < 0 || i >= c.end {
		return 0
	}
	return c.r[i]
}

// PeekRange reports whether the next code point lies within [lo, hi]
// inclusive. It does not special-case the end-of-input sentinel.
func (c *Cursor) PeekRange(lo, hi rune) bool {
	p := c.Peek()
	return p >= lo && p <= hi
}

// CanShift reports whether there is at least one more code point to
// consume. Code that must distinguish a real U+0000 from end-of-input uses
// this instead of comparing Peek against 0.
func (c *Cursor) CanShift() bool {
	return c.pos < c.end
}

// Shift consumes and returns the next code point. Its result is undefined
// if CanShift is false; callers gate on CanShift when the value matters.
func (c *Cursor) Shift() rune {
	r := c.r[c.pos]
	c.pos++
	return r
}

// Advance consumes the next code point without returning it. It is a no-op
// once the cursor is exhausted.
func (c *Cursor) Advance() {
	if c.pos < c.end {
		c.pos++
	}
}

// Pos returns the cursor's current position as a code-point offset from the
// start of the sequence.
func (c *Cursor) Pos() int {
	return c.pos
}

// Mark returns an opaque position usable with Rewind.
func (c *Cursor) Mark() int {
	return c.pos
}

// Rewind resets the cursor to a position previously returned by Mark or Pos.
func (c *Cursor) Rewind(mark int) {
	c.pos = mark
}

// Len returns the total number of code points in the underlying sequence.
func (c *Cursor) Len() int {
	return c.end
}

// Slice returns the code points in [lo, hi) of the underlying sequence. It
// is a convenience for rendering a token's text from its span; the scanner
// itself never calls it on the hot path.
func (c *Cursor) Slice(lo, hi int) []rune {
	return c.r[lo:hi]
}
