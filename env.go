package strfmt

import "fmt"

// resolveEnv renders an environment field while the template is parsed.
// An unset variable renders as empty text.
func (f *Formatter) resolveEnv(frag *fragment) error {
	val, _ := f.lookup(frag.text)
	out, err := f.renderer().render(Text(val), frag.selectors, frag)
	if err != nil {
		return fmt.Errorf("environment variable %s: %w", frag.text, err)
	}
	frag.text = out
	frag.handled = true
	return nil
}
