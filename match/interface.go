// Package match splits a single line into the non-overlapping
// occurrences of a compiled pattern, and the literal text between them.
package match

// Matcher is the pattern matching capability consumed by the Segmenter.
// It must be safe to share: a Matcher is never modified by a search, and
// a search only depends on the bytes it is given. *regexp.Regexp
// satisfies this interface.
type Matcher interface {
	// FindIndex returns the location of the leftmost match in b as a
	// two-element slice, or nil if there is no match
	FindIndex(b []byte) []int
}

// Span is a half-open [Start, End) byte range within a line
type Span struct {
	Start int
	End   int
}

// Segmenter walks a line from left to right, producing the disjoint
// spans matched by a Matcher. A Segmenter is owned by a single goroutine,
// but any number of Segmenters may share the same Matcher.
type Segmenter struct {
	matcher Matcher
	line    []byte
	cursor  int
	prevEnd int // end of the last emitted span, or -1
}

// Piece is a part of a line as produced by Pieces: either the text
// between matches, or a matched span.
type Piece struct {
	Text    []byte
	Matched bool
}

// CompileOption configures Compile
type CompileOption func(*compileConfig)

type compileConfig struct {
	ignoreCase   bool
	smartCase    bool
	fixedStrings bool
}
