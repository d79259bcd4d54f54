package eval

import (
	"strings"

	"github.com/shopspring/decimal"
)

// displayDigits is the number of significant digits shown to the user.
// Results are rounded (half away from zero), never truncated.
const displayDigits = 12

// Format renders a decimal for the calculator display: at most displayDigits
// significant digits in the fractional part, trailing zeros and a trailing
// point trimmed, and no "-0".
func Format(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	// Digits to the left of the point; <= 0 for values below one.
	intDigits := int32(d.NumDigits()) + d.Exponent()
	places := displayDigits - intDigits
	if places < 0 {
		places = 0
	}
	s := d.Round(places).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
