package randx

import (
	"math/rand/v2"
	"sync"
)

// Generator is a pseudo-random generator owned by its caller.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a generator seeded with seed. Generators with the same seed
// produce the same stream.
func New(seed uint64) *Generator {
	return NewFromSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a generator with an unpredictable seed.
func NewRandom() *Generator {
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		v := rand.Uint64()
		for j := range 8 {
			key[i+j] = byte(v >> (8 * j))
		}
	}
	return NewFromSource(rand.NewChaCha8(key))
}

// NewFromSource wraps src. The generator takes ownership of src; callers must
// not draw from it directly afterwards.
func NewFromSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Uint64 returns a uniformly distributed 64-bit value.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Uint64()
}

// Int returns an int in [min, max].
func (g *Generator) Int(min, max int) int {
	return Between(g, min, max)
}

// Float64 returns a float64 in [min, max).
func (g *Generator) Float64(min, max float64) float64 {
	return Between(g, min, max)
}

// uint64n returns a value in [0, n). n must be non-zero.
func (g *Generator) uint64n(n uint64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Uint64N(n)
}

func (g *Generator) unit() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}
