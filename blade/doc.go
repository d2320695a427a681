// Package blade implements canonical basis blades of a Euclidean geometric
// algebra.
//
// A blade is written as a strictly increasing sequence of basis indices:
// [1 3] denotes e₁∧e₃ and the empty sequence denotes the scalar blade.
// Canonicalize turns any product of basis vectors into that form while
// keeping track of the sign:
//
//	b, v := blade.Canonicalize([]blade.Index{2, 1}, 1) // e₁e₂, -1
//	b, v = blade.Canonicalize([]blade.Index{1, 1}, 3)  // scalar, 3
//
// Every basis vector squares to +1; there is no upper bound on indices.
package blade
