package cliffgo

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cliffgo/blade"
	"github.com/hupe1980/cliffgo/internal/bladestore"
)

// Multivector is an immutable linear combination of basis blades.
//
// Stored coefficients are never zero and blades are always canonical.
// The zero value is the zero multivector.
type Multivector struct {
	terms *bladestore.Store
}

// Term is one blade of a multivector with its coefficient.
type Term struct {
	Blade blade.Blade
	Value float64
}

func newMultivector(s *bladestore.Store) Multivector {
	if s == nil || s.Len() == 0 {
		return Multivector{}
	}
	return Multivector{terms: s}
}

// Scalar returns the grade 0 multivector v.
func Scalar(v float64) Multivector {
	return NVector(v)
}

// Zero returns the additive identity.
func Zero() Multivector {
	return Multivector{}
}

// One returns the multiplicative identity.
func One() Multivector {
	return Scalar(1)
}

// Vector returns v·e_base.
func Vector(v float64, base blade.Index) Multivector {
	return NVector(v, base)
}

// Bivector returns v·e_base1·e_base2 in canonical form. Swapped bases flip
// the sign; equal bases collapse to the scalar v.
func Bivector(v float64, base1, base2 blade.Index) Multivector {
	return NVector(v, base1, base2)
}

// NVector returns v times the geometric product of the given basis vectors.
func NVector(v float64, bases ...blade.Index) Multivector {
	b, value := blade.Canonicalize(bases, v)
	if value == 0 {
		return Multivector{}
	}
	return newMultivector(bladestore.WithCapacity(1).Set(b, value))
}

// FromArray builds a grade 1 multivector from dense coordinates. Position i
// maps to basis index i+1; zero entries are omitted.
func FromArray(values []float64) Multivector {
	s := bladestore.WithCapacity(len(values))
	for i, v := range values {
		if v == 0 {
			continue
		}
		s.Set(blade.Of(blade.Index(i+1)), v)
	}
	return newMultivector(s)
}

// FromXYZ returns x·e₁ + y·e₂ + z·e₃.
func FromXYZ(x, y, z float64) Multivector {
	return FromArray([]float64{x, y, z})
}

// XYZ returns the e₁, e₂ and e₃ coefficients.
func (m Multivector) XYZ() (x, y, z float64) {
	return m.Component(1), m.Component(2), m.Component(3)
}

// ToArray returns the grade 1 coefficients for basis indices 1..dim.
// A non-positive dim uses Dimension.
func (m Multivector) ToArray(dim int) []float64 {
	if dim <= 0 {
		dim = int(m.Dimension())
	}
	out := make([]float64, dim)
	for i := range out {
		out[i] = m.Component(blade.Index(i + 1))
	}
	return out
}

// Component returns the coefficient of the blade with exactly the given
// indices, or 0. Indices are not reordered.
func (m Multivector) Component(bases ...blade.Index) float64 {
	if m.terms == nil {
		return 0
	}
	v, _ := m.terms.Get(blade.Of(bases...))
	return v
}

// ScalarComponent returns the grade 0 coefficient.
func (m Multivector) ScalarComponent() float64 {
	return m.Component()
}

// Len returns the number of nonzero terms.
func (m Multivector) Len() int {
	if m.terms == nil {
		return 0
	}
	return m.terms.Len()
}

// IsZero reports whether m has no terms.
func (m Multivector) IsZero() bool {
	return m.Len() == 0
}

// Terms returns all terms in display order (see blade.Blade.Compare).
func (m Multivector) Terms() []Term {
	if m.terms == nil {
		return nil
	}
	out := make([]Term, 0, m.terms.Len())
	for b, v := range m.terms.Entries() {
		out = append(out, Term{Blade: b, Value: v})
	}
	slices.SortFunc(out, func(a, b Term) int {
		return a.Blade.Compare(b.Blade)
	})
	return out
}

// Grades returns the distinct grades present in m, ascending.
func (m Multivector) Grades() []int {
	if m.terms == nil {
		return nil
	}
	var out []int
	for b := range m.terms.Entries() {
		if !slices.Contains(out, b.Grade()) {
			out = append(out, b.Grade())
		}
	}
	slices.Sort(out)
	return out
}

// Support returns the set of basis indices used by any term.
func (m Multivector) Support() *roaring.Bitmap {
	bm := roaring.New()
	if m.terms == nil {
		return bm
	}
	for b := range m.terms.Entries() {
		for i := 0; i < b.Grade(); i++ {
			bm.Add(uint32(b.At(i)))
		}
	}
	return bm
}

// Dimension returns the highest basis index used, or 0 for scalars.
func (m Multivector) Dimension() blade.Index {
	bm := m.Support()
	if bm.IsEmpty() {
		return 0
	}
	return blade.Index(bm.Maximum())
}

// Equal reports whether m and o hold the same blade→coefficient mapping.
func (m Multivector) Equal(o Multivector) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m.terms == nil {
		return true
	}
	for b, v := range m.terms.Entries() {
		ov, ok := o.terms.Get(b)
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every coefficient of m and o differs by at
// most tol. Missing blades count as 0.
func (m Multivector) ApproxEqual(o Multivector, tol float64) bool {
	return m.Sub(o).maxAbs() <= tol
}

func (m Multivector) maxAbs() float64 {
	out := 0.0
	if m.terms == nil {
		return out
	}
	for v := range m.terms.Values() {
		out = max(out, math.Abs(v))
	}
	return out
}
