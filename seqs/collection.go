package seqs

import (
	"iter"
	"slices"
)

// Collection is a finite, ordered sequence whose size is known up front.
type Collection[T any] interface {
	// Len returns the number of elements All yields.
	Len() int
	// All yields the elements in order.
	All() iter.Seq[T]
}

// Slice adapts a slice to Collection.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) All() iter.Seq[T] { return slices.Values(s) }

// Sized pairs an iterator with its element count.
type Sized[T any] struct {
	seq iter.Seq[T]
	n   int
}

// FromSeq wraps seq, which must yield exactly n elements.
func FromSeq[T any](seq iter.Seq[T], n int) Sized[T] {
	return Sized[T]{seq: seq, n: n}
}

func (s Sized[T]) Len() int { return s.n }

func (s Sized[T]) All() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

// Collect drains a finite sequence into a Slice.
func Collect[T any](seq iter.Seq[T]) Slice[T] {
	return slices.Collect(seq)
}
