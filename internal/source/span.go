package source

import "fmt"

// Span is a half-open [Lo, Hi) byte range over the concatenated source map.
// It is 8 bytes, comparable, and carries no file identity of its own: the
// owning SourceMap resolves a Span to a file by locating the disjoint
// per-file range that contains it.
type Span struct {
	Lo uint32
	Hi uint32
}

// DummySpan indicates no source location is available.
var DummySpan = Span{Lo: 0, Hi: 0}

// IsDummy reports whether s is the reserved empty marker.
func (s Span) IsDummy() bool {
	return s.Lo == 0 && s.Hi == 0
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

// Empty reports whether the span has zero length.
func (s Span) Empty() bool {
	return s.Lo == s.Hi
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}

// To returns the smallest span covering both s and other.
func (s Span) To(other Span) Span {
	lo, hi := s.Lo, s.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Span{Lo: lo, Hi: hi}
}

// Until returns a span from the start of s up to (not including) the start of other.
func (s Span) Until(other Span) Span {
	return Span{Lo: s.Lo, Hi: other.Lo}
}

// Between returns the span strictly between the end of s and the start of other.
func (s Span) Between(other Span) Span {
	return Span{Lo: s.Hi, Hi: other.Lo}
}

// Contains reports whether s fully contains other.
func (s Span) Contains(other Span) bool {
	return s.Lo <= other.Lo && other.Hi <= s.Hi
}

// Overlaps reports whether s and other share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Lo < other.Hi && other.Lo < s.Hi
}

// SplitAt splits s into [Lo,at) and [at,Hi); at is clamped into [Lo,Hi].
func (s Span) SplitAt(at uint32) (Span, Span) {
	if at < s.Lo {
		at = s.Lo
	}
	if at > s.Hi {
		at = s.Hi
	}
	return Span{Lo: s.Lo, Hi: at}, Span{Lo: at, Hi: s.Hi}
}

// ShiftLeft moves the span left by n bytes. If n exceeds Lo the span is
// returned unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Lo {
		return s
	}
	return Span{Lo: s.Lo - n, Hi: s.Hi - n}
}

// ShiftRight moves the span right by n bytes.
func (s Span) ShiftRight(n uint32) Span {
	return Span{Lo: s.Lo + n, Hi: s.Hi + n}
}

// ShrinkToLo returns a zero-length span at the start of s.
func (s Span) ShrinkToLo() Span {
	return Span{Lo: s.Lo, Hi: s.Lo}
}

// ShrinkToHi returns a zero-length span at the end of s.
func (s Span) ShrinkToHi() Span {
	return Span{Lo: s.Hi, Hi: s.Hi}
}
