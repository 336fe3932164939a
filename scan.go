package strfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel argument indexes for fragments that do not bind to an argument.
const (
	literalIndex = -1
	envIndex     = -2
)

// Conversion is an explicit conversion requested with '!'.
type Conversion byte

const (
	ConvNone    Conversion = 0
	ConvString  Conversion = 's'
	ConvRepr    Conversion = 'r'
	ConvInt     Conversion = 'i'
	ConvDecimal Conversion = 'd'
)

// fragment is either literal text (index == literalIndex) or a field. For
// fields, text holds the rendered output once handled is set. For
// environment fields, text holds the variable name until it is resolved.
type fragment struct {
	index     int
	text      string
	selectors []string
	conv      Conversion
	raw       string
	spec      Spec
	handled   bool
}

// scanner splits a template into fragments. It lives for a single render
// call.
type scanner struct {
	f    *Formatter
	tmpl string
	pos  int
	next int
}

func (f *Formatter) parse(tmpl string) ([]*fragment, error) {
	s := &scanner{f: f, tmpl: tmpl}
	var frags []*fragment
	for s.pos < len(s.tmpl) {
		text, err := s.literal()
		if err != nil {
			return nil, err
		}
		if text != "" {
			frags = append(frags, &fragment{index: literalIndex, text: text, handled: true})
		}
		if s.pos >= len(s.tmpl) {
			break
		}
		frag, err := s.field()
		if err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	return frags, nil
}

func (s *scanner) errorf(pos int, format string, args ...any) error {
	return &ParseError{Template: s.tmpl, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.tmpl) {
		return s.tmpl[s.pos+n]
	}
	return 0
}

// literal copies text up to the next unescaped '{' or the end of the
// template, collapsing "{{" and "}}".
func (s *scanner) literal() (string, error) {
	var sb strings.Builder
	for s.pos < len(s.tmpl) {
		c := s.tmpl[s.pos]
		switch c {
		case '{':
			if s.peek(1) != '{' {
				return sb.String(), nil
			}
			sb.WriteByte('{')
			s.pos += 2
		case '}':
			if s.peek(1) != '}' {
				return "", s.errorf(s.pos, "single '}' encountered, is this supposed to be escaped?")
			}
			sb.WriteByte('}')
			s.pos += 2
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}
	return sb.String(), nil
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.tmpl) {
		switch s.tmpl[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func isIdentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func (s *scanner) identifier() string {
	start := s.pos
	for s.pos < len(s.tmpl) && isIdentByte(s.tmpl[s.pos]) {
		s.pos++
	}
	return s.tmpl[start:s.pos]
}

// field parses one field starting at its opening brace.
func (s *scanner) field() (*fragment, error) {
	s.pos++
	s.skipSpace()

	frag := &fragment{spec: Spec{Precision: NoPrecision}}
	if s.peek(0) == '$' {
		s.pos++
		start := s.pos
		name := s.identifier()
		if name == "" {
			return nil, s.errorf(start, "expected environment variable name after '$'")
		}
		frag.index = envIndex
		frag.text = name
	} else {
		idx, err := s.index()
		if err != nil {
			return nil, err
		}
		frag.index = idx
		s.next = idx + 1
	}

	if err := s.selectors(frag); err != nil {
		return nil, err
	}
	if err := s.conversion(frag); err != nil {
		return nil, err
	}
	if err := s.specifier(frag); err != nil {
		return nil, err
	}

	s.skipSpace()
	if s.peek(0) != '}' {
		return nil, s.errorf(s.pos, "expected '}' to close the field")
	}
	s.pos++

	if frag.index == envIndex {
		if err := s.f.resolveEnv(frag); err != nil {
			return nil, err
		}
	}
	return frag, nil
}

// index reads an explicit argument index, or returns the running automatic
// index when none is written.
func (s *scanner) index() (int, error) {
	if s.peek(0) == '-' {
		n, next, ok, _ := parseDecimal(s.tmpl, s.pos+1)
		if ok && n == 0 {
			return 0, s.errorf(next, "-0 is not a valid integer")
		}
		return 0, s.errorf(s.pos, "a sign character is not allowed in a field index")
	}
	n, next, ok, err := parseDecimal(s.tmpl, s.pos)
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.next, nil
	}
	s.pos = next
	return n, nil
}

func (s *scanner) selectors(frag *fragment) error {
	for {
		open := s.peek(0)
		if open != '.' && open != '[' {
			return nil
		}
		s.pos++
		start := s.pos
		name := s.identifier()
		if name == "" {
			return s.errorf(start, "illegal selector syntax, expected a name after %q", open)
		}
		if open == '[' {
			if s.peek(0) != ']' {
				return s.errorf(s.pos, "illegal selector syntax, expected ']'")
			}
			s.pos++
		}
		frag.selectors = append(frag.selectors, name)
	}
}

func (s *scanner) conversion(frag *fragment) error {
	if s.peek(0) != '!' {
		return nil
	}
	s.pos++
	switch c := Conversion(s.peek(0)); c {
	case ConvString, ConvRepr, ConvInt, ConvDecimal:
		frag.conv = c
		s.pos++
		return nil
	}
	return s.errorf(s.pos, "unknown format conversion specifier, expected one of: s, r, i, d")
}

// specifier reads the raw text after ':' up to the closing brace. Doubled
// braces inside the specifier stand for themselves.
func (s *scanner) specifier(frag *fragment) error {
	if s.peek(0) != ':' {
		return nil
	}
	s.pos++
	var sb strings.Builder
	// offsets maps each byte of the unescaped specifier back to the template.
	var offsets []int
	for s.pos < len(s.tmpl) {
		c := s.tmpl[s.pos]
		if c == '{' || c == '}' {
			if s.peek(1) != c {
				if c == '{' {
					return s.errorf(s.pos, "unexpected '{' in format specifier, is this supposed to be escaped?")
				}
				break
			}
			offsets = append(offsets, s.pos)
			sb.WriteByte(c)
			s.pos += 2
			continue
		}
		offsets = append(offsets, s.pos)
		sb.WriteByte(c)
		s.pos++
	}
	frag.raw = sb.String()

	sp, err := ParseSpec(frag.raw)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pos := s.pos
			if pe.Pos < len(offsets) {
				pos = offsets[pe.Pos]
			}
			return s.errorf(pos, "%s", pe.Msg)
		}
		return err
	}
	frag.spec = sp
	return nil
}
