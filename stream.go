package strfmt

import (
	"io"
	"iter"
	"strings"
)

// WriteIter renders tmpl once per argument tuple from seq and writes each
// result to w as a line, using the default Formatter.
func WriteIter(w io.Writer, tmpl string, seq iter.Seq[[]any]) error {
	return std.WriteIter(w, tmpl, seq)
}

// WriteChan renders tmpl once per argument tuple received from ch. It is a
// thin wrapper around [WriteIter].
func WriteChan(w io.Writer, tmpl string, ch <-chan []any) error {
	return std.WriteChan(w, tmpl, ch)
}

// WriteIter renders tmpl once per argument tuple from seq. The template is
// parsed afresh for every tuple. Iteration stops at the first error; lines
// already written stay written.
func (f *Formatter) WriteIter(w io.Writer, tmpl string, seq iter.Seq[[]any]) error {
	var werr error
	seq(func(args []any) bool {
		out, err := f.render(tmpl, args)
		if err != nil {
			werr = err
			return false
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			werr = err
			return false
		}
		return true
	})
	return werr
}

// WriteChan renders tmpl once per argument tuple received from ch.
func (f *Formatter) WriteChan(w io.Writer, tmpl string, ch <-chan []any) error {
	return f.WriteIter(w, tmpl, chanToIter(ch))
}

// RenderAll renders tmpl for every tuple and returns the lines joined by
// newlines, with a trailing newline.
func (f *Formatter) RenderAll(tmpl string, tuples ...[]any) (string, error) {
	var sb strings.Builder
	if err := f.WriteIter(&sb, tmpl, func(yield func([]any) bool) {
		for _, t := range tuples {
			if !yield(t) {
				return
			}
		}
	}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
