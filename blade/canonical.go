package blade

import "slices"

// Canonicalize reduces a product of basis vectors to its canonical blade.
//
// The indices are bubble-sorted into ascending order; every adjacent swap
// anticommutes two basis vectors and flips the sign of value. Every index
// that then sits next to an equal index is removed (e_i·e_i = 1), so a run
// of any length drops out entirely. The input slice is not modified.
func Canonicalize(indices []Index, value float64) (Blade, float64) {
	if len(indices) == 0 {
		return Scalar, value
	}

	buf := slices.Clone(indices)
	swaps := 0

	for {
		n := 0
		for i := 0; i+1 < len(buf); i++ {
			if buf[i] > buf[i+1] {
				buf[i], buf[i+1] = buf[i+1], buf[i]
				n++
			}
		}
		if n == 0 {
			break
		}
		swaps += n
	}

	out := make([]Index, 0, len(buf))
	for i, idx := range buf {
		if i+1 < len(buf) && idx == buf[i+1] {
			continue
		}
		if i > 0 && idx == buf[i-1] {
			continue
		}
		out = append(out, idx)
	}

	if swaps%2 == 1 {
		value = -value
	}

	if len(out) == 0 {
		return Scalar, value
	}

	return Blade{indices: out}, value
}

// Mul returns the canonical blade of the geometric product a·b and the
// sign (+1 or -1) picked up while reordering.
func Mul(a, b Blade) (Blade, float64) {
	if a.IsScalar() {
		return b, 1
	}
	if b.IsScalar() {
		return a, 1
	}

	joined := make([]Index, 0, len(a.indices)+len(b.indices))
	joined = append(joined, a.indices...)
	joined = append(joined, b.indices...)

	return Canonicalize(joined, 1)
}
