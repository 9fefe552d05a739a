package randx

import "math"

// Between returns a value drawn uniformly from the range bounded by min and max.
//
// Integers are drawn from [min, max]; floats from [min, max). When min == max
// the result is min. When min > max the bounds are swapped.
func Between[T Number](g *Generator, min, max T) T {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}

	if isFloat[T]() {
		return betweenFloat(g, min, max)
	}

	if isSigned[T]() {
		lo, hi := int64(min), int64(max)
		span := uint64(hi - lo)
		return T(lo + int64(g.draw(span)))
	}
	lo, hi := uint64(min), uint64(max)
	return T(lo + g.draw(hi-lo))
}

// draw returns a value in [0, span].
func (g *Generator) draw(span uint64) uint64 {
	if span == math.MaxUint64 {
		return g.Uint64()
	}
	return g.uint64n(span + 1)
}

// maxFloatDraws bounds redraws when rounding lands on max. Spans that never
// produce an in-range value (infinite bounds) fall back to min.
const maxFloatDraws = 64

func betweenFloat[T Number](g *Generator, min, max T) T {
	lo, hi := float64(min), float64(max)
	for range maxFloatDraws {
		// interpolate rather than scale max-min, which overflows for wide finite bounds
		u := g.unit()
		v := T(lo*(1-u) + hi*u)
		if v >= min && v < max {
			return v
		}
	}
	return min
}
