package strfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// renderer carries the per-call configuration into the dispatch below.
type renderer struct {
	seq    Delimiters
	mapd   Delimiters
	pair   Delimiters
	locale Locale
}

func (f *Formatter) renderer() *renderer {
	return &renderer{seq: f.seq, mapd: f.mapd, pair: f.pair, locale: f.locale}
}

// render consumes selectors front to back, then renders what is left with
// the field's conversion and specifier.
func (r *renderer) render(v Value, selectors []string, frag *fragment) (string, error) {
	switch v := v.(type) {
	case Int:
		return r.renderInt(v, selectors, frag)
	case Float:
		return r.renderFloat(v, selectors, frag)
	case Bool:
		return r.renderBool(v, selectors, frag)
	case Text:
		return r.renderText(v, selectors, frag)
	case Seq:
		return r.renderSeq(v, selectors, frag)
	case Map:
		return r.renderMap(v, selectors, frag)
	case Pair:
		return r.renderPair(v, selectors, frag)
	}
	return "", ErrUnsupportedValue
}

func (r *renderer) renderInt(v Int, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		next, err := intSelector(v, selectors[0])
		if err != nil {
			return "", err
		}
		return r.render(next, selectors[1:], frag)
	}
	switch frag.conv {
	case ConvString, ConvRepr:
		return formatText(strconv.FormatInt(int64(v), 10), frag.spec), nil
	case ConvDecimal:
		return formatFloat(float64(v), frag.spec, r.locale), nil
	default:
		return formatInt(int64(v), frag.spec, r.locale), nil
	}
}

// intSelector applies one of the value mutating selectors.
func intSelector(v Int, name string) (Value, error) {
	switch name {
	case "abs":
		if v == math.MinInt64 {
			return nil, &CapabilityError{Op: name, Kind: KindInt, Reason: "overflows int64"}
		}
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case "sign":
		if v < 0 {
			return Int(-1), nil
		}
		return Int(1), nil
	case "inc":
		if v == math.MaxInt64 {
			return nil, &CapabilityError{Op: name, Kind: KindInt, Reason: "overflows int64"}
		}
		return v + 1, nil
	case "dec":
		if v == math.MinInt64 {
			return nil, &CapabilityError{Op: name, Kind: KindInt, Reason: "overflows int64"}
		}
		return v - 1, nil
	case "sqrt":
		if v < 0 {
			return nil, &CapabilityError{Op: name, Kind: KindInt, Reason: "negative operand"}
		}
		n, err := safecast.Truncate[int64](math.Sqrt(float64(v)))
		if err != nil {
			return nil, &CapabilityError{Op: name, Kind: KindInt, Reason: err.Error()}
		}
		return Int(n), nil
	}
	return nil, &CapabilityError{Op: name, Kind: KindInt}
}

func (r *renderer) renderFloat(v Float, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		return "", &CapabilityError{Op: selectors[0], Kind: KindFloat}
	}
	switch frag.conv {
	case ConvString, ConvRepr:
		return formatText(strconv.FormatFloat(float64(v), 'f', defaultFloatPrecision, 64), frag.spec), nil
	case ConvInt:
		n, err := safecast.Truncate[int64](float64(v))
		if err != nil {
			return "", &CapabilityError{Op: "!i", Kind: KindFloat, Reason: err.Error()}
		}
		return formatInt(n, frag.spec, r.locale), nil
	default:
		return formatFloat(float64(v), frag.spec, r.locale), nil
	}
}

// renderBool writes True or False unless a specifier or a numeric
// conversion asks for the numeric form.
func (r *renderer) renderBool(v Bool, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		return "", &CapabilityError{Op: selectors[0], Kind: KindBool}
	}
	conv := frag.conv
	if frag.raw == "" && conv == ConvNone {
		conv = ConvString
	}
	var n int64
	if v {
		n = 1
	}
	switch conv {
	case ConvString, ConvRepr:
		text := "False"
		if v {
			text = "True"
		}
		return formatText(text, frag.spec), nil
	case ConvDecimal:
		return formatFloat(float64(n), frag.spec, r.locale), nil
	default:
		return formatInt(n, frag.spec, r.locale), nil
	}
}

func (r *renderer) renderText(v Text, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		return "", &CapabilityError{Op: selectors[0], Kind: KindText}
	}
	switch frag.conv {
	case ConvInt:
		return formatInt(parseIntPrefix(string(v)), frag.spec, r.locale), nil
	case ConvDecimal:
		return formatFloat(parseFloatPrefix(string(v)), frag.spec, r.locale), nil
	default:
		return formatText(string(v), frag.spec), nil
	}
}

// containerConv rejects numeric conversions on containers; string
// conversions leave them unchanged.
func containerConv(kind Kind, conv Conversion) error {
	if conv == ConvInt || conv == ConvDecimal {
		return &CapabilityError{Op: "!" + string(rune(conv)), Kind: kind}
	}
	return nil
}

func (r *renderer) renderSeq(v Seq, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		i, err := strconv.Atoi(selectors[0])
		if err != nil {
			return "", &CapabilityError{Op: selectors[0], Kind: KindSeq, Reason: "sequence selectors must be indexes"}
		}
		if i >= len(v) {
			return "", &CapabilityError{Op: selectors[0], Kind: KindSeq, Reason: "index out of range"}
		}
		return r.render(v[i], selectors[1:], frag)
	}
	if err := containerConv(KindSeq, frag.conv); err != nil {
		return "", err
	}
	return r.join(len(v), r.seq, frag, func(i int) Value { return v[i] })
}

// renderMap looks the first selector up as a key. A missing key renders the
// whole map and drops the rest of the chain.
func (r *renderer) renderMap(v Map, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		if !v.textKeyed() {
			return "", &CapabilityError{Op: selectors[0], Kind: KindMap, Reason: "map keys are not text"}
		}
		if next, ok := v.Lookup(selectors[0]); ok {
			return r.render(next, selectors[1:], frag)
		}
	}
	if err := containerConv(KindMap, frag.conv); err != nil {
		return "", err
	}
	return r.join(len(v), r.mapd, frag, func(i int) Value {
		return Pair{First: v[i].Key, Second: v[i].Value}
	})
}

func (r *renderer) renderPair(v Pair, selectors []string, frag *fragment) (string, error) {
	if len(selectors) > 0 {
		return "", &CapabilityError{Op: selectors[0], Kind: KindPair}
	}
	if err := containerConv(KindPair, frag.conv); err != nil {
		return "", err
	}
	elems := [2]Value{v.First, v.Second}
	return r.join(2, r.pair, frag, func(i int) Value { return elems[i] })
}

// parseIntPrefix reads the longest leading base 10 integer, skipping leading
// white space. Text without one yields zero; out of range values saturate.
func parseIntPrefix(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}

// parseFloatPrefix reads the longest leading decimal floating point number,
// including inf and nan spellings. Text without one yields zero.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	for end := len(s); end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
	}
	return 0
}
