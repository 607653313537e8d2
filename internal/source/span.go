package source

import (
	"fmt"
)

// Span is a half-open byte range inside a single input expression.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Slice returns the bytes of src covered by the span, clamped to src.
func (s Span) Slice(src []byte) []byte {
	n := uint32(len(src)) // #nosec G115 -- inputs are single expressions
	start, end := min(s.Start, n), min(s.End, n)
	if start > end {
		return nil
	}
	return src[start:end]
}
