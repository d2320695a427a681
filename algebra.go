package cliffgo

import (
	"math"

	"github.com/hupe1980/cliffgo/blade"
	"github.com/hupe1980/cliffgo/internal/bladestore"
)

// Add returns m + o.
func (m Multivector) Add(o Multivector) Multivector {
	if o.terms == nil {
		return m
	}
	if m.terms == nil {
		return o
	}

	s := m.terms.Clone()
	for b, v := range o.terms.Entries() {
		accumulate(s, b, v)
	}

	return newMultivector(s)
}

// AddScalar returns m + v.
func (m Multivector) AddScalar(v float64) Multivector {
	return m.Add(Scalar(v))
}

// Sub returns m - o.
func (m Multivector) Sub(o Multivector) Multivector {
	return m.Add(o.ProductScalar(-1))
}

// Neg returns -m.
func (m Multivector) Neg() Multivector {
	return m.ProductScalar(-1)
}

// Product returns the geometric product m·o.
//
// Each pair of terms is multiplied by concatenating their blades and
// reducing the result with blade.Mul. The product is associative but not
// commutative; it costs O(m.Len()·o.Len()).
func (m Multivector) Product(o Multivector) Multivector {
	if m.terms == nil || o.terms == nil {
		return Multivector{}
	}

	s := bladestore.WithCapacity(m.terms.Len() * o.terms.Len())
	for ob, ov := range o.terms.Entries() {
		for mb, mv := range m.terms.Entries() {
			b, sign := blade.Mul(mb, ob)
			accumulate(s, b, mv*ov*sign)
		}
	}

	return newMultivector(s)
}

// ProductScalar returns m·v.
func (m Multivector) ProductScalar(v float64) Multivector {
	return m.Product(Scalar(v))
}

// Pow returns m multiplied by itself n times. Pow(0) is One().
func (m Multivector) Pow(n uint) Multivector {
	out := One()
	for range n {
		out = out.Product(m)
	}
	return out
}

// Grade returns the projection of m onto blades of grade g.
func (m Multivector) Grade(g int) Multivector {
	return m.filter(func(b blade.Blade) bool {
		return b.Grade() == g
	})
}

// NonScalarPart returns m without its grade 0 term.
func (m Multivector) NonScalarPart() Multivector {
	if m.ScalarComponent() == 0 {
		return m
	}
	return m.filter(func(b blade.Blade) bool {
		return !b.IsScalar()
	})
}

// Conjugate flips the sign of every blade whose grade is even and nonzero.
// Scalars and odd grades are kept.
func (m Multivector) Conjugate() Multivector {
	if m.terms == nil {
		return m
	}
	s := bladestore.WithCapacity(m.terms.Len())
	for b, v := range m.terms.Entries() {
		if g := b.Grade(); g != 0 && g%2 == 0 {
			v = -v
		}
		s.Set(b, v)
	}
	return newMultivector(s)
}

// ModuleSquare returns the scalar part of m·Conjugate(m).
func (m Multivector) ModuleSquare() float64 {
	return m.Product(m.Conjugate()).ScalarComponent()
}

// Module returns the square root of ModuleSquare. It is NaN when
// ModuleSquare is negative.
func (m Multivector) Module() float64 {
	return math.Sqrt(m.ModuleSquare())
}

func (m Multivector) filter(keep func(blade.Blade) bool) Multivector {
	if m.terms == nil {
		return m
	}
	s := bladestore.New()
	for b, v := range m.terms.Entries() {
		if keep(b) {
			s.Set(b, v)
		}
	}
	return newMultivector(s)
}

// accumulate adds v to the coefficient of b and drops the entry once the
// running sum is exactly zero.
func accumulate(s *bladestore.Store, b blade.Blade, v float64) {
	s.Update(b, func(cur float64) float64 { return cur + v }, 0)
	if cur, _ := s.Get(b); cur == 0 {
		s.Remove(b)
	}
}
