package seqs_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silo/seqs"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   seqs.Slice[int]
		want string
	}{
		{"Empty", nil, "[]"},
		{"Single", seqs.Slice[int]{5}, "[5]"},
		{"Three", seqs.Slice[int]{1, 2, 3}, "[1, 2, 3]"},
		{"Negative", seqs.Slice[int]{-1, 0, 1}, "[-1, 0, 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqs.Format(tt.in))
		})
	}
}

func TestFormat_SeparatorCount(t *testing.T) {
	got := seqs.Format(seqs.Slice[int]{1, 2, 3})
	assert.Equal(t, 2, strings.Count(got, ", "))
	assert.False(t, strings.HasSuffix(got, ", ]"))
}

func TestFormat_Repeatable(t *testing.T) {
	in := seqs.Slice[string]{"a", "b c", ""}
	first := seqs.Format(in)
	for range 10 {
		require.Equal(t, first, seqs.Format(in))
	}
	assert.Equal(t, "[a, b c, ]", first)
}

type point struct{ X, Y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func TestFormat_ElementKinds(t *testing.T) {
	assert.Equal(t, "[(1,2), (-3,0)]", seqs.Format(seqs.Slice[point]{{1, 2}, {-3, 0}}))
	assert.Equal(t, "[1.5, 2]", seqs.Format(seqs.Slice[float64]{1.5, 2}))
	assert.Equal(t, "[true, false]", seqs.Format(seqs.Slice[bool]{true, false}))
	assert.Equal(t, "[boom]", seqs.Format(seqs.Slice[error]{errors.New("boom")}))
	assert.Equal(t, "[[1 2], []]", seqs.Format(seqs.Slice[[]int]{{1, 2}, {}}))
}

func TestFormatSeq(t *testing.T) {
	assert.Equal(t, "[0, 2, 4]", seqs.FormatSeq(seqs.Range(0, 6, 2)))
	assert.Equal(t, "[]", seqs.FormatSeq(seqs.Range(0, 0, 1)))
}

func TestFromSeq(t *testing.T) {
	c := seqs.FromSeq(seqs.Repeat("x", 3), 3)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "[x, x, x]", seqs.Format(c))

	var zero seqs.Sized[int]
	assert.Equal(t, "[]", seqs.Format(zero))
}

func TestFormat_LenDisagreesWithElements(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Negative", -1},
		{"Zero", 0},
		{"TooSmall", 1},
		{"Huge", math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := seqs.FromSeq(seqs.Range(0, 3, 1), tt.n)
			require.NotPanics(t, func() { seqs.Format(c) })
			assert.Equal(t, "[0, 1, 2]", seqs.Format(c))
		})
	}
}

func TestPrintCollection_Chaining(t *testing.T) {
	var b strings.Builder
	s := seqs.NewSink(&b)

	seqs.PrintCollection(s.Text("a="), seqs.Slice[int]{1, 2}).Text(" b=")
	seqs.PrintCollection(s, seqs.Slice[string]{}).Print(" n=", 2)

	require.NoError(t, s.Err())
	assert.Equal(t, "a=[1, 2] b=[] n=2", b.String())
	assert.Equal(t, int64(b.Len()), s.Written())
}

// failAfter accepts limit bytes, then fails.
type failAfter struct {
	limit int
	buf   []byte
}

var errFull = errors.New("sink full")

func (w *failAfter) Write(p []byte) (int, error) {
	if len(w.buf)+len(p) > w.limit {
		return 0, errFull
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func TestPrintCollection_StopsOnWriteError(t *testing.T) {
	w := &failAfter{limit: 3}
	s := seqs.PrintCollection(seqs.NewSink(w), seqs.Slice[int]{1, 2, 3})

	require.ErrorIs(t, s.Err(), errFull)
	assert.Equal(t, "[1", string(w.buf))
	assert.Equal(t, int64(2), s.Written())

	// later writes are dropped
	s.Text("more").Print(9)
	assert.Equal(t, "[1", string(w.buf))
}

func TestFprint(t *testing.T) {
	var b strings.Builder
	n, err := seqs.Fprint(&b, seqs.Slice[int]{10, 20})
	require.NoError(t, err)
	assert.Equal(t, "[10, 20]", b.String())
	assert.Equal(t, int64(len("[10, 20]")), n)

	_, err = seqs.Fprint(&failAfter{}, seqs.Slice[int]{1})
	assert.ErrorIs(t, err, errFull)
}
