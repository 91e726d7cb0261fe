package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) within one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Sub narrows s to the byte range [from, to) counted from s.Start.
// Offsets beyond s are clamped.
func (s Span) Sub(from, to uint32) Span {
	n := s.Len()
	from = min(from, n)
	to = min(max(to, from), n)
	return Span{File: s.File, Start: s.Start + from, End: s.Start + to}
}

// Cover returns the smallest span containing s and other; spans of different
// files leave s unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}
