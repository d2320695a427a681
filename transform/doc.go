// Package transform applies geometric algebra operators to point clouds.
//
// A Func maps a grade 1 multivector to another one; the constructors in
// this package wrap cliffgo.Torsion, cliffgo.Inflation and rotors. Apply
// runs a Func over many points in parallel chunks:
//
//	fn, _ := transform.InflateAlong(transform.Point{X: 1}, 0.1)
//	out, err := transform.Apply(ctx, points, fn,
//	    transform.WithConcurrency(4),
//	    transform.WithLogger(cliffgo.NewTextLogger(slog.LevelDebug)),
//	)
//
// Only the e₁, e₂ and e₃ components are read back into a Point.
package transform
