package match

import "unicode/utf8"

// NewSegmenter creates a Segmenter that walks line using m
func NewSegmenter(m Matcher, line []byte) *Segmenter {
	s := &Segmenter{matcher: m}
	s.Reset(line)
	return s
}

// Reset rewinds the Segmenter and points it at a new line, so that one
// Segmenter can be reused for every line of an input.
func (s *Segmenter) Reset(line []byte) {
	s.line = line
	s.cursor = 0
	s.prevEnd = -1
}

// Cursor returns the offset in the line where the next search starts
func (s *Segmenter) Cursor() int {
	return s.cursor
}

// Next returns the next match in the line. The second return value is
// false once the line has no more matches, and stays false until Reset
// is called.
//
// Each search looks at the part of the line after the previous match,
// and the returned offsets are relative to the whole line. A zero-width
// match moves the search forward by one code point. A zero-width match
// immediately following the previous match is not reported.
func (s *Segmenter) Next() (Span, bool) {
	for s.cursor < len(s.line) {
		loc := s.matcher.FindIndex(s.line[s.cursor:])
		if loc == nil {
			break
		}

		span := Span{Start: s.cursor + loc[0], End: s.cursor + loc[1]}
		if !span.IsEmpty() {
			s.cursor = span.End
			s.prevEnd = span.End
			return span, true
		}

		s.cursor = min(span.End+codePointLen(s.line[span.End:]), len(s.line))
		if span.Start == s.prevEnd {
			continue
		}
		s.prevEnd = span.End
		return span, true
	}

	s.cursor = len(s.line)
	return Span{}, false
}

func codePointLen(b []byte) int {
	_, n := utf8.DecodeRune(b)
	if n == 0 {
		return 1
	}
	return n
}

// Spans returns all the spans matched by m in line
func Spans(m Matcher, line []byte) []Span {
	var spans []Span
	s := NewSegmenter(m, line)
	for {
		span, ok := s.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}

// Pieces splits line into the text between matches and the matched text,
// in order: gap, match, gap, ..., match, gap. The gaps may be empty.
// spans must be ordered and non-overlapping, as produced by a Segmenter.
// Joining the text of all pieces gives back the original line.
func Pieces(line []byte, spans []Span) []Piece {
	pieces := make([]Piece, 0, len(spans)*2+1)
	prev := 0
	for _, span := range spans {
		pieces = append(pieces, Piece{Text: line[prev:span.Start]})
		pieces = append(pieces, Piece{Text: span.In(line), Matched: true})
		prev = span.End
	}
	return append(pieces, Piece{Text: line[prev:]})
}
