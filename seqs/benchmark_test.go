package seqs_test

import (
	"io"
	"slices"
	"strconv"
	"testing"

	"silo/randx"
	"silo/seqs"
)

// BenchmarkFormat compares the string and io.Writer forms across collection sizes.
func BenchmarkFormat(b *testing.B) {
	sizes := []int{0, 10, 1_000, 100_000}
	for _, size := range sizes {
		input := seqs.Slice[int](slices.Collect(seqs.Random(randx.New(1), size, 0, 1<<20)))

		b.Run("Format/"+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = seqs.Format(input)
			}
		})

		b.Run("Fprint/"+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = seqs.Fprint(io.Discard, input)
			}
		})
	}
}

func BenchmarkBetween(b *testing.B) {
	g := randx.New(1)
	b.Run("Int", func(b *testing.B) {
		for b.Loop() {
			_ = randx.Between(g, -1000, 1000)
		}
	})
	b.Run("Float64", func(b *testing.B) {
		for b.Loop() {
			_ = randx.Between(g, -1.0, 1.0)
		}
	})
}
