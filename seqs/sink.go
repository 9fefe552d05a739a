package seqs

import (
	"fmt"
	"io"
)

// Sink is an output destination for sequential text.
//
// The first write error is kept and every later write becomes a no-op, so a
// chain of calls only needs one check of Err at the end.
type Sink struct {
	w   io.Writer
	n   int64
	err error
}

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Text writes str verbatim.
func (s *Sink) Text(str string) *Sink {
	if s.err == nil {
		_, _ = io.WriteString(s, str)
	}
	return s
}

// Print writes args using fmt.Fprint.
func (s *Sink) Print(args ...any) *Sink {
	if s.err == nil {
		_, _ = fmt.Fprint(s, args...)
	}
	return s
}

// Err returns the first error encountered while writing, if any.
func (s *Sink) Err() error { return s.err }

// Written returns the number of bytes accepted by the underlying writer.
func (s *Sink) Written() int64 { return s.n }
