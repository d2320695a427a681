package blade

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/cliffgo/internal/hash"
)

// Index identifies one orthonormal basis vector (1, 2, 3 for x, y, z).
type Index uint32

// Blade is a wedge product of distinct basis vectors.
//
// Blades produced by Canonicalize and Mul hold strictly increasing indices.
// The zero value is the scalar blade. A Blade never mutates its indices
// after construction, so values may be copied and shared freely.
type Blade struct {
	indices []Index
}

// Scalar is the empty (grade 0) blade.
var Scalar = Blade{}

// Of returns a blade holding indices verbatim.
//
// No reordering or cancellation is applied: Of is meant for lookups by an
// already canonical index sequence. Use Canonicalize for arbitrary input.
func Of(indices ...Index) Blade {
	if len(indices) == 0 {
		return Scalar
	}
	return Blade{indices: slices.Clone(indices)}
}

// Grade returns the number of basis vectors in the blade.
func (b Blade) Grade() int {
	return len(b.indices)
}

// IsScalar reports whether b is the grade 0 blade.
func (b Blade) IsScalar() bool {
	return len(b.indices) == 0
}

// At returns the i-th basis index.
func (b Blade) At(i int) Index {
	return b.indices[i]
}

// Indices returns a copy of the basis indices.
func (b Blade) Indices() []Index {
	return slices.Clone(b.indices)
}

// Max returns the highest basis index, or 0 for the scalar blade.
func (b Blade) Max() Index {
	if len(b.indices) == 0 {
		return 0
	}
	return b.indices[len(b.indices)-1]
}

// Equal reports whether a and b hold the same index sequence.
func (b Blade) Equal(o Blade) bool {
	return slices.Equal(b.indices, o.indices)
}

// Hash returns a 32-bit key for the index sequence.
// Equal blades always hash equally.
func (b Blade) Hash() uint32 {
	return hash.Indices(b.indices)
}

// Compare orders blades for display.
//
// Lower grades come first. Blades of equal grade have their indices ordered
// as decimal strings and are then compared index by index starting from the
// last one, so e₁e₂ < e₁e₃ < e₂e₃ < e₁e₄ and e₂e₁₀ < e₃e₉.
// It returns -1, 0 or +1.
func (b Blade) Compare(o Blade) int {
	if len(b.indices) != len(o.indices) {
		if len(b.indices) < len(o.indices) {
			return -1
		}
		return 1
	}

	x, y := displayKey(b.indices), displayKey(o.indices)
	for k := len(x) - 1; k >= 0; k-- {
		switch {
		case x[k] < y[k]:
			return -1
		case x[k] > y[k]:
			return 1
		}
	}

	return 0
}

// displayKey returns indices sorted by their decimal representation.
// Below 10 this is the numeric order, so canonical blades are returned as is.
func displayKey(indices []Index) []Index {
	if len(indices) == 0 || indices[len(indices)-1] < 10 {
		return indices
	}
	key := slices.Clone(indices)
	slices.SortFunc(key, func(x, y Index) int {
		return strings.Compare(strconv.FormatUint(uint64(x), 10), strconv.FormatUint(uint64(y), 10))
	})
	return key
}

// String renders the blade as e symbols with subscript indices (e₁e₂).
// The scalar blade renders as the empty string.
func (b Blade) String() string {
	var sb strings.Builder
	for _, idx := range b.indices {
		sb.WriteString("e")
		sb.WriteString(Subscript(idx))
	}
	return sb.String()
}

// Subscript renders idx with Unicode subscript digits.
func Subscript(idx Index) string {
	digits := strconv.FormatUint(uint64(idx), 10)

	var sb strings.Builder
	sb.Grow(len(digits) * 3)
	for _, d := range digits {
		sb.WriteRune('₀' + (d - '0'))
	}

	return sb.String()
}
