package strfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrParse            = errors.New("invalid format string")
	ErrUnboundField     = errors.New("unbound field")
	ErrCapability       = errors.New("unsupported operation")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// ParseError reports a malformed template or format specifier. Pos is the
// zero based byte offset into Template where the problem was detected.
type ParseError struct {
	Template string
	Pos      int
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", ErrParse, e.Pos, e.Msg)
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Location returns the template line containing the error and the display
// column of the error within that line.
func (e *ParseError) Location() (line string, col int) {
	pos := min(max(e.Pos, 0), len(e.Template))
	start := strings.LastIndexByte(e.Template[:pos], '\n') + 1
	end := len(e.Template)
	if i := strings.IndexByte(e.Template[pos:], '\n'); i >= 0 {
		end = pos + i
	}
	return e.Template[start:end], runewidth.StringWidth(e.Template[start:pos])
}

// Pointer renders a multi-line diagnostic with a caret under the offending
// character:
//
//	invalid format string at position 5
//	{0:<5z}
//	     ^
//	unexpected 'z' in format specifier
func (e *ParseError) Pointer() string {
	line, col := e.Location()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at position %d\n", ErrParse, e.Pos)
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString("^\n")
	sb.WriteString(e.Msg)
	sb.WriteByte('\n')
	return sb.String()
}

// UnboundFieldError is returned in strict mode when a field references an
// argument that was not supplied.
type UnboundFieldError struct {
	Index int
}

func (e *UnboundFieldError) Error() string {
	return fmt.Sprintf("%s: field {%d} does not refer to a valid argument", ErrUnboundField, e.Index)
}

// Is reports whether target is [ErrUnboundField].
func (e *UnboundFieldError) Is(target error) bool { return target == ErrUnboundField }

// CapabilityError is returned when a selector or conversion is applied to a
// value that cannot support it. Op is the selector name or the conversion
// marker (for example "!i").
type CapabilityError struct {
	Op     string
	Kind   Kind
	Reason string
}

func (e *CapabilityError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q is not supported by %s values", ErrCapability, e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %q on %s value: %s", ErrCapability, e.Op, e.Kind, e.Reason)
}

// Is reports whether target is [ErrCapability].
func (e *CapabilityError) Is(target error) bool { return target == ErrCapability }
