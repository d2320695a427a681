package cliffgo

// Inflation rotates vectors in the plane each of them spans with an axis.
//
// Unlike Torsion the generator differs per vector: it is the bivector part
// of axis·v, left unnormalized.
type Inflation struct {
	axis Multivector
}

// NewInflation returns an inflation around axis.
func NewInflation(axis Multivector) *Inflation {
	return &Inflation{axis: axis}
}

// Axis returns the inflation axis.
func (in *Inflation) Axis() Multivector {
	return in.axis
}

// Inflate applies the rotor generated by axis∧v for amount to v and
// returns the grade 1 part of the result.
func (in *Inflation) Inflate(v Multivector, amount float64) Multivector {
	generator := in.axis.Product(v).Grade(2)
	return RotorFromGenerator(amount, generator).Apply(v).Grade(1)
}
