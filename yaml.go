package strfmt

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML fills cfg from a YAML document. Unknown keys are rejected and an
// empty document leaves cfg untouched.
func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
