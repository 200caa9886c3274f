package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// NoSpan is the zero span: no file, no range. Symbols synthesized without a
// syntactic anchor carry NoSpan.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// IsZero reports whether the span carries no location at all.
func (s Span) IsZero() bool {
	return s.File == NoFileID && s.Start == 0 && s.End == 0
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files are
// left unchanged.
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
