package seqs

import (
	"iter"

	"silo/randx"
)

// Random yields size values drawn from g with randx.Between(g, min, max).
// Values are drawn lazily, one per element consumed.
func Random[T randx.Number](g *randx.Generator, size int, min, max T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range size {
			if !yield(randx.Between(g, min, max)) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but not including end.
// A zero step yields nothing. The sequence stops before i+step would overflow.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		switch {
		case step > 0:
			stride := uint(step)
			for i := start; i < end; i += step {
				// uint(end-i) is the exact distance even when end-i wraps
				if !yield(i) || uint(end-i) <= stride {
					return
				}
			}
		case step < 0:
			stride := -uint(step)
			for i := start; i > end; i += step {
				if !yield(i) || uint(i-end) <= stride {
					return
				}
			}
		}
	}
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}
