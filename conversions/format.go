package conversions

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultDecimals is the display precision used by converter widgets.
const DefaultDecimals = 4

// FormatNumber rounds v to decimals fractional digits and strips trailing
// zeros. NaN and infinities render as "0".
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	r := scalar.Round(v, decimals)
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatFixed renders v with exactly decimals fractional digits.
// NaN and infinities render as "0".
func FormatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	r := scalar.Round(v, decimals)
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(r, 'f', decimals, 64)
}

// ParseValue parses user-entered text as a finite number. A lone comma is
// accepted as the decimal separator.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
