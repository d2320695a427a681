package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/blade"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Angle returns a pseudo-random angle in [-π, π).
func (r *RNG) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (2*r.rand.Float64() - 1) * math.Pi
}

// Coordinates returns dim values uniform in [-1, 1).
func (r *RNG) Coordinates(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, dim)
	for i := range out {
		out[i] = 2*r.rand.Float64() - 1
	}
	return out
}

// Vector returns a grade 1 multivector with coordinates in [-1, 1).
func (r *RNG) Vector(dim int) cliffgo.Multivector {
	return cliffgo.FromArray(r.Coordinates(dim))
}

// Multivector returns a sum of terms random blades over basis indices
// 1..dim with coefficients in [-1, 1).
func (r *RNG) Multivector(dim, terms int) cliffgo.Multivector {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := cliffgo.Zero()
	for range terms {
		var bases []blade.Index
		for b := 1; b <= dim; b++ {
			if r.rand.Intn(2) == 1 {
				bases = append(bases, blade.Index(b))
			}
		}
		m = m.Add(cliffgo.NVector(2*r.rand.Float64()-1, bases...))
	}
	return m
}

// Bounds clamps the raw coordinates drawn by Direction.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// FullBounds leaves directions unconstrained.
func FullBounds() Bounds {
	return Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1, MinZ: -1, MaxZ: 1}
}

// Direction draws x, y, z uniform in [-1, 1), clamps them to b and returns
// the normalized result. Restricting MinX to 0 yields a hemisphere.
func (r *RNG) Direction(b Bounds) [3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		x := clamp(2*r.rand.Float64()-1, b.MinX, b.MaxX)
		y := clamp(2*r.rand.Float64()-1, b.MinY, b.MaxY)
		z := clamp(2*r.rand.Float64()-1, b.MinZ, b.MaxZ)

		n := math.Sqrt(x*x + y*y + z*z)
		if n == 0 {
			continue
		}
		return [3]float64{x / n, y / n, z / n}
	}
}

// Directions returns num directions drawn with Direction.
func (r *RNG) Directions(num int, b Bounds) [][3]float64 {
	out := make([][3]float64, num)
	for i := range out {
		out[i] = r.Direction(b)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
