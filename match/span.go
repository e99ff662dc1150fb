package match

import "fmt"

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true for zero-width spans
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// In returns the bytes of line covered by the span
func (s Span) In(line []byte) []byte {
	return line[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
