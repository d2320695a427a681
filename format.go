package cliffgo

import (
	"math"
	"strconv"
	"strings"
)

// String renders m as a signed sum of terms in display order, e.g.
// "2 + e₁ - 3e₁e₂". The zero multivector renders as "0".
func (m Multivector) String() string {
	terms := m.Terms()
	if len(terms) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(terms))
	for i, t := range terms {
		if t.Blade.IsScalar() {
			parts = append(parts, formatNumber(t.Value))
			continue
		}

		var sb strings.Builder
		if i > 0 || t.Value < 0 {
			if t.Value > 0 {
				sb.WriteString("+ ")
			} else {
				sb.WriteString("- ")
			}
		}
		if abs := math.Abs(t.Value); abs != 1 {
			sb.WriteString(formatNumber(abs))
		}
		sb.WriteString(t.Blade.String())

		parts = append(parts, sb.String())
	}

	return strings.Join(parts, " ")
}

// formatNumber prints the shortest representation that round-trips,
// switching to exponent notation for very large or very small magnitudes.
// Exponents carry a sign but no zero padding (1e-7, 1.5e+21).
func formatNumber(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
