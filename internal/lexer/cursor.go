package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// Cursor tracks a position within a SourceFile. Off and Limit are GLOBAL
// offsets (SourceFile.StartPos + local index) so that Cursor.Mark/SpanFrom
// produce source.Span values directly, with no separate file-relative to
// global translation step.
type Cursor struct {
	File  *source.SourceFile
	Off   uint32
	Limit uint32
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.SourceFile) Cursor {
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   f.StartPos,
		Limit: f.StartPos + contentLen,
	}
}

func (c *Cursor) local(off uint32) uint32 { return off - c.File.StartPos }

// EOF reports whether the cursor has consumed the whole range.
func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.local(c.Off)]
}

// Peek2 reads the current and next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	i := c.local(c.Off)
	return c.File.Content[i], c.File.Content[i+1], true
}

// Peek3 reads the current and next two bytes.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.Limit {
		return 0, 0, 0, false
	}
	i := c.local(c.Off)
	return c.File.Content[i], c.File.Content[i+1], c.File.Content[i+2], true
}

// Bump consumes and returns the current byte.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.local(c.Off)]
	c.Off++
	return b
}

// Mark is a saved cursor position, used to compute the Span of a scanned token.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom builds the Span from a saved Mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Lo: uint32(m), Hi: c.Off}
}

// Reset rewinds the cursor to a saved Mark.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.local(c.Off)] == b {
		c.Off++
		return true
	}
	return false
}
