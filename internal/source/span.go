package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// DummySpan marks nodes synthesised by desugaring that have no source text.
var DummySpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) IsDummy() bool {
	return s == DummySpan
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens s so that it also includes other. Spans from different files
// are left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// To returns the span from the start of s to the end of end.
func (s Span) To(end Span) Span {
	if s.IsDummy() {
		return end
	}
	if end.IsDummy() || s.File != end.File {
		return s
	}
	out := Span{File: s.File, Start: s.Start, End: end.End}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// ShrinkToLo returns the empty span at the start of s.
func (s Span) ShrinkToLo() Span {
	return Span{File: s.File, Start: s.Start, End: s.Start}
}

// ShrinkToHi returns the empty span at the end of s.
func (s Span) ShrinkToHi() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
