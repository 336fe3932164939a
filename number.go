package strfmt

import (
	"math"
	"strconv"
	"strings"
)

// defaultFloatPrecision applies to e, f and % when no precision is given.
const defaultFloatPrecision = 6

// Locale is the numeric punctuation used when grouping is requested. It is a
// plain value handed to each render call and never installed globally.
type Locale struct {
	Decimal   rune
	Group     rune
	GroupSize int
}

// DefaultLocale groups thousands with commas and uses a period as the
// decimal point regardless of the host locale.
var DefaultLocale = Locale{Decimal: '.', Group: ',', GroupSize: 3}

// group inserts group separators into a run of decimal digits.
func (l Locale) group(digits string) string {
	if l.GroupSize <= 0 || len(digits) <= l.GroupSize {
		return digits
	}
	var sb strings.Builder
	head := len(digits) % l.GroupSize
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += l.GroupSize {
		if sb.Len() > 0 {
			sb.WriteRune(l.Group)
		}
		sb.WriteString(digits[i : i+l.GroupSize])
	}
	return sb.String()
}

// punctuate groups the integer part of a rendered decimal and swaps in the
// locale decimal point.
func (l Locale) punctuate(body string, grouped bool) string {
	end := 0
	for end < len(body) && body[end] >= '0' && body[end] <= '9' {
		end++
	}
	intPart, rest := body[:end], body[end:]
	if grouped {
		intPart = l.group(intPart)
	}
	if l.Decimal != 0 && l.Decimal != '.' && strings.HasPrefix(rest, ".") {
		rest = string(l.Decimal) + rest[1:]
	}
	return intPart + rest
}

func signFor(negative bool, s Sign) string {
	switch {
	case negative:
		return "-"
	case s == SignAlways:
		return "+"
	case s == SignSpace:
		return " "
	default:
		return ""
	}
}

// formatInt renders an integer. Float presentation types hand the value to
// formatFloat; precision is otherwise ignored.
func formatInt(v int64, sp Spec, loc Locale) string {
	if sp.Type.isFloat() {
		return formatFloat(float64(v), sp, loc)
	}
	negative := v < 0
	mag := uint64(v)
	if negative {
		mag = -mag
	}

	var digits, prefix string
	switch sp.Type {
	case TypeBinary:
		digits, prefix = strconv.FormatUint(mag, 2), "0b"
	case TypeOctal:
		digits, prefix = strconv.FormatUint(mag, 8), "0o"
	case TypeHex:
		digits, prefix = strconv.FormatUint(mag, 16), "0x"
	case TypeHexUpper:
		digits, prefix = strings.ToUpper(strconv.FormatUint(mag, 16)), "0X"
	default:
		digits = loc.punctuate(strconv.FormatUint(mag, 10), sp.Type == TypeNumber || sp.Grouping)
	}
	if !sp.Alternate {
		prefix = ""
	}
	return compose(signFor(negative, sp.Sign), prefix, digits, sp, AlignRight)
}

// formatFloat renders a floating point value.
func formatFloat(v float64, sp Spec, loc Locale) string {
	negative := math.Signbit(v) && !math.IsNaN(v)
	a := math.Abs(v)

	var body, suffix string
	upper := false
	switch sp.Type {
	case TypeScientificUpper:
		upper = true
		body = fixedOrExp(a, 'e', precisionOr(sp, defaultFloatPrecision))
	case TypeScientific:
		body = fixedOrExp(a, 'e', precisionOr(sp, defaultFloatPrecision))
	case TypeFixedUpper:
		upper = true
		body = fixedOrExp(a, 'f', precisionOr(sp, defaultFloatPrecision))
	case TypeFixed:
		body = fixedOrExp(a, 'f', precisionOr(sp, defaultFloatPrecision))
	case TypePercent:
		body = fixedOrExp(a*100, 'f', precisionOr(sp, defaultFloatPrecision))
		suffix = "%"
	case TypeGeneralUpper, TypeGeneral, TypeNumber:
		upper = sp.Type == TypeGeneralUpper
		switch {
		case !finite(a):
			body = nonFinite(a)
		case sp.HasPrecision():
			body = strconv.FormatFloat(a, 'g', sp.Precision, 64)
		default:
			body = adaptive{min: 0, max: generalPrecision, ceil: generalPrecision}.format(a)
		}
	default:
		switch {
		case !finite(a):
			body = nonFinite(a)
		case sp.HasPrecision() && sp.Precision == 0:
			body = strconv.FormatFloat(math.Trunc(a), 'f', 0, 64)
		case sp.HasPrecision():
			body = strconv.FormatFloat(a, 'f', sp.Precision, 64)
		default:
			body = adaptive{min: defaultMinPrecision, max: defaultMaxPrecision}.format(a)
		}
	}
	if upper {
		body = strings.ToUpper(body)
	}
	body = loc.punctuate(body, sp.Type == TypeNumber || sp.Grouping)
	return compose(signFor(negative, sp.Sign), "", body+suffix, sp, AlignRight)
}

func precisionOr(sp Spec, def int) int {
	if sp.HasPrecision() {
		return sp.Precision
	}
	return def
}

func finite(a float64) bool { return !math.IsNaN(a) && !math.IsInf(a, 0) }

func nonFinite(a float64) string {
	if math.IsNaN(a) {
		return "nan"
	}
	return "inf"
}

func fixedOrExp(a float64, verb byte, prec int) string {
	if !finite(a) {
		return nonFinite(a)
	}
	return strconv.FormatFloat(a, verb, prec, 64)
}
