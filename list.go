package strfmt

import "strings"

// join renders n elements with the field's specifier and wraps them in d.
// Elements never inherit the field's conversion.
func (r *renderer) join(n int, d Delimiters, frag *fragment, elem func(int) Value) (string, error) {
	inner := *frag
	inner.conv = ConvNone
	inner.selectors = nil

	parts := make([]string, n)
	for i := range n {
		s, err := r.render(elem(i), nil, &inner)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return d.Open + strings.Join(parts, d.Sep) + d.Close, nil
}
