package strfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// compose lays out [sign][prefix][body] in a field of sp.Width columns.
// Internal alignment pads between the prefix and the body.
func compose(sign, prefix, body string, sp Spec, def Align) string {
	content := sign + prefix + body
	gap := sp.Width - runewidth.StringWidth(content)
	if gap <= 0 {
		return content
	}
	align := sp.Align
	if align == AlignDefault {
		align = def
	}
	if align == AlignInternal {
		return sign + prefix + fillRun(sp.fill(), gap) + body
	}
	return alignCell(content, gap, align, sp.fill())
}

// formatText renders text. A positive precision truncates the text to that
// many columns before padding; a precision of zero leaves it whole, so ".0"
// never erases a value.
func formatText(s string, sp Spec) string {
	if sp.Precision > 0 && runewidth.StringWidth(s) > sp.Precision {
		s = runewidth.Truncate(s, sp.Precision, "")
	}
	gap := sp.Width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	align := sp.Align
	switch align {
	case AlignDefault:
		align = AlignLeft
	case AlignInternal:
		align = AlignRight
	}
	return alignCell(s, gap, align, sp.fill())
}

func alignCell(s string, gap int, align Align, fill rune) string {
	switch align {
	case AlignLeft:
		return s + fillRun(fill, gap)
	case AlignCenter:
		left := gap / 2
		return fillRun(fill, left) + s + fillRun(fill, gap-left)
	default:
		return fillRun(fill, gap) + s
	}
}

// fillRun repeats fill to cover exactly cols display columns. Columns a
// wide fill cannot cover are padded with spaces.
func fillRun(fill rune, cols int) string {
	if cols <= 0 {
		return ""
	}
	w := max(runewidth.RuneWidth(fill), 1)
	return strings.Repeat(string(fill), cols/w) + strings.Repeat(" ", cols%w)
}
