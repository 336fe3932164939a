package strfmt

import (
	"math"
	"strconv"
	"strings"
)

// Adaptive precision defaults.
const (
	defaultMinPrecision = 1
	defaultMaxPrecision = 16

	// generalPrecision bounds the 'g' and 'n' presentations, which also
	// switch to scientific notation past this many integer digits.
	generalPrecision = 6

	// scientificLimit is the digit count at which a value with leading
	// fractional zeros switches to scientific notation.
	scientificLimit = 5
)

// digitEpsilon is sqrt(machine epsilon) for float64. A fractional remainder
// within it of zero or one is treated as exhausted.
var digitEpsilon = math.Sqrt(0x1p-52)

// adaptive selects the fewest fractional digits within [min, max] that
// represent a value. ceil is the integer digit count above which scientific
// notation is forced; zero disables it.
type adaptive struct {
	min, max, ceil int
}

// precision returns the number of digits to render a, which must be finite
// and non-negative, and whether to use scientific notation. Digit
// extraction stops once the remainder is within epsilon of zero or of one,
// so binary noise such as the tail of 3.14159 is not counted as digits.
func (ad adaptive) precision(a float64) (n int, scientific bool) {
	whole := math.Trunc(a)
	intDigits, trailingZeros := integerDigits(whole)
	above := ad.ceil > 0 && intDigits > ad.ceil

	switch {
	case above:
		n = intDigits - 1 - trailingZeros
	case intDigits < ad.max:
		leadingZeros := 0
		inLeading := intDigits == 0
		f := a - whole
		for digitEpsilon < f && f < 1-digitEpsilon && n < ad.max {
			f *= 10
			d := math.Trunc(f)
			if inLeading && d < digitEpsilon {
				leadingZeros++
			} else {
				inLeading = false
			}
			f -= d
			n++
		}
		n = max(n, ad.min)
		if n >= scientificLimit && leadingZeros > 0 {
			scientific = true
			n = max(n-leadingZeros-1, 0)
		}
	}

	n = min(n, ad.max)
	switch {
	case above:
		scientific = true
		if n == ad.max {
			n--
		}
	case intDigits+n > ad.max:
		if intDigits < n {
			n -= intDigits
		} else {
			n = 0
		}
	}
	return max(n, 0), scientific
}

// format renders a with the adaptive precision.
func (ad adaptive) format(a float64) string {
	n, scientific := ad.precision(a)
	if scientific {
		return strconv.FormatFloat(a, 'e', n, 64)
	}
	return strconv.FormatFloat(a, 'f', n, 64)
}

// integerDigits returns the number of decimal digits in whole (zero for
// zero) and how many of them are trailing zeros.
func integerDigits(whole float64) (digits, trailingZeros int) {
	if whole < 1 {
		return 0, 0
	}
	s := strconv.FormatFloat(whole, 'f', 0, 64)
	trimmed := strings.TrimRight(s, "0")
	return len(s), len(s) - len(trimmed)
}
