// Package cliffgo implements a geometric (Clifford) algebra over an
// n-dimensional Euclidean space.
//
// A Multivector is an immutable, sparse linear combination of canonical
// basis blades (see package blade). Every operation returns a new value,
// so multivectors can be shared between goroutines without coordination.
//
// # Quick Start
//
//	e1 := cliffgo.Vector(1, 1)
//	e2 := cliffgo.Vector(1, 2)
//
//	fmt.Println(e1.Add(e2))     // e₁ + e₂
//	fmt.Println(e2.Product(e1)) // - e₁e₂
//
// # Rotations
//
// Rotors act on vectors through the sandwich product Left·v·Right:
//
//	r, _ := cliffgo.NewRotor(math.Pi/2, 1, 2)
//	v := r.Apply(e1) // ≈ e₂
//
// Two derived operators move whole point clouds:
//
//   - Torsion twists vectors around a fixed plane, weighting the angle by
//     how much each vector lies in that plane.
//   - Inflation rotates each vector in the plane it spans with an axis.
//
// # Conventions
//
// Basis vectors square to +1. Conjugate flips the sign of every blade of
// even, nonzero grade; Module is derived from it.
package cliffgo
