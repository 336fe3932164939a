package strfmt

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// decodeTOML fills cfg from a TOML document. Unknown keys are rejected.
func decodeTOML(r io.Reader, cfg *Config) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}
