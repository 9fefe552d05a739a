/*
Package randx draws bounded random values from an explicitly owned generator.

There is no package-level generator. Callers create a [Generator] and pass it
where values are needed, which keeps draws reproducible under a fixed seed and
lets several goroutines share one instance.

	g := randx.New(42)
	n := randx.Between(g, 1, 6)        // int in [1, 6]
	f := randx.Between(g, 0.0, 1.0)    // float64 in [0, 1)

# Bounds

Integer draws cover the closed interval [min, max], including the full width
of the type. Float draws cover [min, max). Inverted bounds are swapped, so
Between(g, 9, 3) behaves like Between(g, 3, 9).
*/
package randx
