package strfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedConfig is returned for configuration formats other than YAML
// and TOML.
var ErrUnsupportedConfig = errors.New("unsupported config format")

// ConfigFormat selects the decoder used by [DecodeConfig].
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
)

// Config is the file representation of a Formatter's options. Fields left out
// of a file keep their defaults.
type Config struct {
	Strict   bool         `yaml:"strict" toml:"strict"`
	Sequence Delimiters   `yaml:"sequence" toml:"sequence"`
	Map      Delimiters   `yaml:"map" toml:"map"`
	Pair     Delimiters   `yaml:"pair" toml:"pair"`
	Locale   LocaleConfig `yaml:"locale" toml:"locale"`
}

// LocaleConfig spells the locale punctuation as single character strings.
type LocaleConfig struct {
	Decimal   string `yaml:"decimal" toml:"decimal"`
	Group     string `yaml:"group" toml:"group"`
	GroupSize int    `yaml:"group_size" toml:"group_size"`
}

// DefaultConfig returns the configuration matching [New] with no options.
func DefaultConfig() Config {
	return Config{
		Strict:   true,
		Sequence: DefaultSequenceDelimiters,
		Map:      DefaultMapDelimiters,
		Pair:     DefaultPairDelimiters,
		Locale: LocaleConfig{
			Decimal:   string(DefaultLocale.Decimal),
			Group:     string(DefaultLocale.Group),
			GroupSize: DefaultLocale.GroupSize,
		},
	}
}

// Options converts the configuration into options for [New].
func (c Config) Options() ([]Option, error) {
	dec, err := singleRune("locale.decimal", c.Locale.Decimal)
	if err != nil {
		return nil, err
	}
	grp, err := singleRune("locale.group", c.Locale.Group)
	if err != nil {
		return nil, err
	}
	if c.Locale.GroupSize < 0 {
		return nil, fmt.Errorf("locale.group_size: must not be negative, got %d", c.Locale.GroupSize)
	}
	return []Option{
		WithStrict(c.Strict),
		WithSequenceDelimiters(c.Sequence),
		WithMapDelimiters(c.Map),
		WithPairDelimiters(c.Pair),
		WithLocale(Locale{Decimal: dec, Group: grp, GroupSize: c.Locale.GroupSize}),
	}, nil
}

func singleRune(key, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%s: expected a single character, got %q", key, s)
	}
	return r, nil
}

// ParseConfigFormat maps a file extension or format name to a [ConfigFormat].
func ParseConfigFormat(s string) (ConfigFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return ConfigYAML, nil
	case "toml":
		return ConfigTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfig, s)
	}
}

// LoadConfig reads a YAML or TOML file, chosen by extension, and returns the
// options it describes.
func LoadConfig(path string) ([]Option, error) {
	format, err := ParseConfigFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts, err := DecodeConfig(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// DecodeConfig reads a configuration in the given format from r.
func DecodeConfig(r io.Reader, format ConfigFormat) ([]Option, error) {
	cfg := DefaultConfig()
	var err error
	switch format {
	case ConfigYAML:
		err = decodeYAML(r, &cfg)
	case ConfigTOML:
		err = decodeTOML(r, &cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfig, format)
	}
	if err != nil {
		return nil, err
	}
	return cfg.Options()
}
