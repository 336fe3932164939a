package strfmt

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Align selects where padding goes when a value is narrower than its field.
type Align int

const (
	AlignDefault  Align = iota // left for text, right for numbers
	AlignLeft                  // <
	AlignRight                 // >
	AlignCenter                // ^
	AlignInternal              // = padding between sign and digits
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	case AlignInternal:
		return "="
	default:
		return ""
	}
}

// Sign controls which numbers carry a sign character.
type Sign int

const (
	SignNegative Sign = iota // -
	SignAlways               // +
	SignSpace                // leading space on non-negative numbers
)

func (s Sign) String() string {
	switch s {
	case SignAlways:
		return "+"
	case SignSpace:
		return " "
	default:
		return "-"
	}
}

// Presentation is the presentation type letter of a specifier.
type Presentation byte

const (
	TypeUnset           Presentation = 0
	TypeBinary          Presentation = 'b'
	TypeDecimal         Presentation = 'd'
	TypeOctal           Presentation = 'o'
	TypeHex             Presentation = 'x'
	TypeHexUpper        Presentation = 'X'
	TypeNumber          Presentation = 'n'
	TypeScientific      Presentation = 'e'
	TypeScientificUpper Presentation = 'E'
	TypeFixed           Presentation = 'f'
	TypeFixedUpper      Presentation = 'F'
	TypeGeneral         Presentation = 'g'
	TypeGeneralUpper    Presentation = 'G'
	TypePercent         Presentation = '%'
)

func (p Presentation) String() string {
	if p == TypeUnset {
		return ""
	}
	return string(rune(p))
}

func (p Presentation) isFloat() bool {
	switch p {
	case TypeScientific, TypeScientificUpper, TypeFixed, TypeFixedUpper,
		TypeGeneral, TypeGeneralUpper, TypePercent:
		return true
	}
	return false
}

// NoPrecision marks an unset precision.
const NoPrecision = -1

// maxLiteral bounds index, width and precision literals.
const maxLiteral = math.MaxInt32

// Spec is a parsed format specifier:
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
type Spec struct {
	Width     int
	Precision int
	Fill      rune
	Align     Align
	Sign      Sign
	Type      Presentation
	Alternate bool
	Grouping  bool
}

// HasPrecision reports whether a precision was given.
func (s Spec) HasPrecision() bool { return s.Precision != NoPrecision }

func (s Spec) fill() rune {
	if s.Fill == 0 {
		return ' '
	}
	return s.Fill
}

// ParseSpec parses raw specifier text. Characters left over after the last
// recognised option are reported as a [ParseError] positioned within raw.
func ParseSpec(raw string) (Spec, error) {
	p := specParser{raw: raw}
	return p.parse()
}

type specParser struct {
	raw string
	pos int
}

func (p *specParser) parse() (Spec, error) {
	sp := Spec{Precision: NoPrecision}
	if p.raw == "" {
		return sp, nil
	}
	p.readAlign(&sp)
	p.readSign(&sp)
	p.readAlternate(&sp)
	p.readZero(&sp)
	if err := p.readWidth(&sp); err != nil {
		return sp, err
	}
	p.readGrouping(&sp)
	if err := p.readPrecision(&sp); err != nil {
		return sp, err
	}
	p.readType(&sp)
	if p.pos < len(p.raw) {
		r, _ := utf8.DecodeRuneInString(p.raw[p.pos:])
		return sp, p.errorf(p.pos, "unexpected %q in format specifier", r)
	}
	return sp, nil
}

func (p *specParser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Template: p.raw, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *specParser) peek() byte {
	if p.pos < len(p.raw) {
		return p.raw[p.pos]
	}
	return 0
}

func alignOf(c byte) (Align, bool) {
	switch c {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	case '=':
		return AlignInternal, true
	}
	return AlignDefault, false
}

// readAlign tries fill+align first, then align alone.
func (p *specParser) readAlign(sp *Spec) {
	fill, size := utf8.DecodeRuneInString(p.raw[p.pos:])
	if p.pos+size < len(p.raw) {
		if a, ok := alignOf(p.raw[p.pos+size]); ok {
			sp.Fill = fill
			sp.Align = a
			p.pos += size + 1
			return
		}
	}
	if a, ok := alignOf(p.peek()); ok {
		sp.Align = a
		p.pos++
	}
}

func (p *specParser) readSign(sp *Spec) {
	switch p.peek() {
	case '+':
		sp.Sign = SignAlways
	case '-':
		sp.Sign = SignNegative
	case ' ':
		sp.Sign = SignSpace
	default:
		return
	}
	p.pos++
}

func (p *specParser) readAlternate(sp *Spec) {
	if p.peek() == '#' {
		sp.Alternate = true
		p.pos++
	}
}

// readZero handles the sign-aware zero fill toggle. An explicit fill
// character wins over the zero.
func (p *specParser) readZero(sp *Spec) {
	if p.peek() == '0' {
		if sp.Fill == 0 {
			sp.Fill = '0'
		}
		if sp.Align == AlignDefault {
			sp.Align = AlignInternal
		}
		p.pos++
	}
}

func (p *specParser) readWidth(sp *Spec) error {
	n, next, ok, err := parseDecimal(p.raw, p.pos)
	if err != nil {
		return err
	}
	if ok {
		sp.Width = n
		p.pos = next
	}
	return nil
}

func (p *specParser) readGrouping(sp *Spec) {
	if p.peek() == ',' {
		sp.Grouping = true
		p.pos++
	}
}

func (p *specParser) readPrecision(sp *Spec) error {
	if p.peek() != '.' {
		return nil
	}
	p.pos++
	n, next, ok, err := parseDecimal(p.raw, p.pos)
	if err != nil {
		return err
	}
	if !ok {
		return p.errorf(p.pos, "format specifier missing precision after '.'")
	}
	sp.Precision = n
	p.pos = next
	return nil
}

func (p *specParser) readType(sp *Spec) {
	switch t := Presentation(p.peek()); t {
	case TypeBinary, TypeDecimal, TypeOctal, TypeHex, TypeHexUpper, TypeNumber,
		TypeScientific, TypeScientificUpper, TypeFixed, TypeFixedUpper,
		TypeGeneral, TypeGeneralUpper, TypePercent:
		sp.Type = t
		p.pos++
	}
}

// parseDecimal reads an unsigned decimal literal starting at pos. ok is false
// when no digit is present.
func parseDecimal(s string, pos int) (n, next int, ok bool, err error) {
	next = pos
	for next < len(s) && s[next] >= '0' && s[next] <= '9' {
		d := int(s[next] - '0')
		if n > (maxLiteral-d)/10 {
			return 0, next, false, &ParseError{Template: s, Pos: next, Msg: "integer value overflows, use a smaller number"}
		}
		n = n*10 + d
		next++
	}
	return n, next, next > pos, nil
}
