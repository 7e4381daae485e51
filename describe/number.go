package describe

import (
	"math"
	"strconv"
	"strings"
)

// Plain decimal notation is used for magnitudes in [minPlain, maxPlain).
const (
	minPlain = 1e-6
	maxPlain = 1e21
)

// formatFloat renders f the way a number is conventionally shown to users:
// integral values without a fractional part, the shortest digits that
// round-trip, and exponent notation only for very large or very small
// magnitudes.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	abs := math.Abs(f)
	if abs >= maxPlain || abs < minPlain {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops zero padding from the exponent: 1.5e-07 -> 1.5e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1], s[i+2:]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
