package strfmt

import (
	"fmt"
	"io"
)

// bind renders every field that refers to an argument. Arguments no field
// refers to are never converted.
func (f *Formatter) bind(frags []*fragment, args []any) error {
	r := f.renderer()
	for i, arg := range args {
		var val Value
		for _, frag := range frags {
			if frag.handled || frag.index != i {
				continue
			}
			if val == nil {
				v, err := ValueOf(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
				val = v
			}
			out, err := r.render(val, frag.selectors, frag)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
			frag.text = out
			frag.handled = true
		}
	}
	return nil
}

// assemble concatenates fragments in template order. In strict mode a field
// that was never bound is an error; otherwise it renders as empty text.
func (f *Formatter) assemble(w io.StringWriter, frags []*fragment) error {
	for _, frag := range frags {
		if !frag.handled {
			if f.strict {
				return &UnboundFieldError{Index: frag.index}
			}
			continue
		}
		if _, err := w.WriteString(frag.text); err != nil {
			return err
		}
	}
	return nil
}
