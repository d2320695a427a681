package cliffgo

import (
	"math"

	"github.com/hupe1980/cliffgo/blade"
)

// Rotor is a pair of multivectors applied to a vector as Left·v·Right.
type Rotor struct {
	Left  Multivector
	Right Multivector
}

// NewRotor returns the rotor turning vectors by angle radians in the
// base1∧base2 plane, from e_base1 towards e_base2.
//
// It fails with *ErrEqualBases when base1 == base2.
func NewRotor(angle float64, base1, base2 blade.Index) (Rotor, error) {
	if base1 == base2 {
		return Rotor{}, &ErrEqualBases{Base: base1}
	}
	return RotorFromGenerator(angle, Bivector(1, base1, base2)), nil
}

// RotorFromGenerator builds the pair
//
//	Left  = cos(-angle/2) + sin(-angle/2)·generator
//	Right = cos(angle/2)  + sin(angle/2)·generator
//
// The generator is used as given; it is a pure rotation only when the
// generator is a unit bivector.
func RotorFromGenerator(angle float64, generator Multivector) Rotor {
	half := angle / 2
	return Rotor{
		Left:  Scalar(math.Cos(-half)).Add(generator.ProductScalar(math.Sin(-half))),
		Right: Scalar(math.Cos(half)).Add(generator.ProductScalar(math.Sin(half))),
	}
}

// Apply returns the sandwich product Left·v·Right.
func (r Rotor) Apply(v Multivector) Multivector {
	return r.Left.Product(v).Product(r.Right)
}

// Inverse returns the rotor undoing r.
func (r Rotor) Inverse() Rotor {
	return Rotor{Left: r.Right, Right: r.Left}
}

// Rotate turns v by angle radians in the base1∧base2 plane.
func Rotate(v Multivector, angle float64, base1, base2 blade.Index) (Multivector, error) {
	r, err := NewRotor(angle, base1, base2)
	if err != nil {
		return Multivector{}, err
	}
	return r.Apply(v), nil
}
