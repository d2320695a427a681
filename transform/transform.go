package transform

import (
	"fmt"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/blade"
)

// Point is a position in three-dimensional space.
type Point struct {
	X, Y, Z float64
}

// Multivector returns X·e₁ + Y·e₂ + Z·e₃.
func (p Point) Multivector() cliffgo.Multivector {
	return cliffgo.FromXYZ(p.X, p.Y, p.Z)
}

// PointOf reads the e₁, e₂ and e₃ components of m.
func PointOf(m cliffgo.Multivector) Point {
	x, y, z := m.XYZ()
	return Point{X: x, Y: y, Z: z}
}

// Func transforms a grade 1 multivector.
type Func func(cliffgo.Multivector) cliffgo.Multivector

// Inflate returns a Func inflating vectors around axis by amount.
func Inflate(axis cliffgo.Multivector, amount float64) (Func, error) {
	if err := checkSpace(axis); err != nil {
		return nil, err
	}
	if axis.Grade(1).IsZero() {
		return nil, fmt.Errorf("%w: axis %v has no vector part", ErrDegenerate, axis)
	}

	in := cliffgo.NewInflation(axis)

	return func(v cliffgo.Multivector) cliffgo.Multivector {
		return in.Inflate(v, amount)
	}, nil
}

// InflateAlong is Inflate with the axis given as a direction.
func InflateAlong(direction Point, amount float64) (Func, error) {
	return Inflate(direction.Multivector(), amount)
}

// Twist returns a Func twisting vectors around plane by amount radians.
func Twist(plane cliffgo.Multivector, amount float64) (Func, error) {
	if err := checkSpace(plane); err != nil {
		return nil, err
	}
	if plane.Grade(2).IsZero() {
		return nil, fmt.Errorf("%w: plane %v has no bivector part", ErrDegenerate, plane)
	}

	t := cliffgo.NewTorsion(plane)

	return func(v cliffgo.Multivector) cliffgo.Multivector {
		return t.Twist(v, amount)
	}, nil
}

// TwistXY twists around the e₁e₂ plane.
func TwistXY(amount float64) Func {
	t := cliffgo.NewTorsion(cliffgo.Bivector(1, 1, 2))

	return func(v cliffgo.Multivector) cliffgo.Multivector {
		return t.Twist(v, amount)
	}
}

// Rotation returns a Func rotating vectors by angle in the base1∧base2
// plane.
func Rotation(angle float64, base1, base2 blade.Index) (Func, error) {
	r, err := cliffgo.NewRotor(angle, base1, base2)
	if err != nil {
		return nil, err
	}
	if err := checkSpace(cliffgo.Bivector(1, base1, base2)); err != nil {
		return nil, err
	}

	return func(v cliffgo.Multivector) cliffgo.Multivector {
		return r.Apply(v).Grade(1)
	}, nil
}

// Chain composes fns left to right.
func Chain(fns ...Func) Func {
	return func(v cliffgo.Multivector) cliffgo.Multivector {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

func checkSpace(m cliffgo.Multivector) error {
	if d := m.Dimension(); d > 3 {
		return &ErrDimension{Dimension: d}
	}
	return nil
}
