package seqs

import (
	"io"
	"iter"
	"strings"
)

const (
	openBracket  = "["
	closeBracket = "]"
	separator    = ", "

	// maxGrowHint caps how many elements Format preallocates for.
	maxGrowHint = 1 << 16
)

// PrintCollection writes c to s as "[e1, e2, ..., en]" and returns s.
//
// Elements are formatted with the %v verb, so Stringer and error values use
// their own text. An empty collection is written as "[]".
func PrintCollection[T any](s *Sink, c Collection[T]) *Sink {
	s.Text(openBracket)
	first := true
	for v := range c.All() {
		if s.Err() != nil {
			return s
		}
		if !first {
			s.Text(separator)
		}
		first = false
		s.Print(v)
	}
	return s.Text(closeBracket)
}

// Fprint writes c to w and reports the number of bytes written.
func Fprint[T any](w io.Writer, c Collection[T]) (int64, error) {
	s := PrintCollection(NewSink(w), c)
	return s.Written(), s.Err()
}

// Format returns the bracketed text form of c.
func Format[T any](c Collection[T]) string {
	var b strings.Builder
	// rough guess: one digit per element plus separators
	if n := c.Len(); n > 0 {
		b.Grow(len(openBracket) + len(closeBracket) + min(n, maxGrowHint)*(1+len(separator)))
	}
	PrintCollection(NewSink(&b), c)
	return b.String()
}

// FormatSeq is Format for a finite iterator of unknown size.
func FormatSeq[T any](seq iter.Seq[T]) string {
	return Format(Collect(seq))
}
