package cliffgo

// Torsion twists vectors around a fixed plane.
//
// The plane's bivector part is normalized once; each Twist weights the
// requested angle by how much the vector lies in that plane, so vectors in
// the plane turn by the full amount and vectors orthogonal to it stay put.
type Torsion struct {
	plane     Multivector
	generator Multivector
}

// NewTorsion prepares a twist around the grade 2 part of plane.
// A plane without bivector part yields a zero generator, which leaves
// vectors unchanged.
func NewTorsion(plane Multivector) *Torsion {
	rotation := plane.Grade(2)
	return &Torsion{
		plane:     plane,
		generator: rotation.ProductScalar(1 / rotation.Module()),
	}
}

// Plane returns the multivector the torsion was built from.
func (t *Torsion) Plane() Multivector {
	return t.plane
}

// Generator returns the normalized bivector used for every twist.
func (t *Torsion) Generator() Multivector {
	return t.generator
}

// Weight returns the in-plane share of v: the squared module of the vector
// part of Generator()·v. It scales the twist angle.
func (t *Torsion) Weight(v Multivector) float64 {
	return t.generator.Product(v).Grade(1).ModuleSquare()
}

// Twist turns v around the plane by Weight(v)·amount radians and returns
// the grade 1 part of the result.
func (t *Torsion) Twist(v Multivector, amount float64) Multivector {
	mixed := t.Weight(v) * amount
	return RotorFromGenerator(mixed, t.generator).Apply(v).Grade(1)
}
