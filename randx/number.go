package randx

// Integer is any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any type Between can draw.
type Number interface {
	Integer | Float
}

// isFloat reports whether T is a floating-point type.
// The conversion is not constant for a type parameter, so 0.5 truncates to 0 for integers.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	zero := T(0)
	return zero-1 < zero
}
