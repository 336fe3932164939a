package strfmt

import (
	"io"
	"os"
	"strings"
)

// Delimiters control how containers are wrapped and joined.
type Delimiters struct {
	Open  string `yaml:"open" toml:"open"`
	Sep   string `yaml:"sep" toml:"sep"`
	Close string `yaml:"close" toml:"close"`
}

// Default container delimiters.
var (
	DefaultSequenceDelimiters = Delimiters{Open: "[", Sep: ", ", Close: "]"}
	DefaultMapDelimiters      = Delimiters{Open: "{", Sep: ", ", Close: "}"}
	DefaultPairDelimiters     = Delimiters{Open: "", Sep: ": ", Close: ""}
)

// Formatter renders templates. The zero value is not usable; create one with
// [New]. A Formatter never changes after construction and may be shared
// between goroutines.
type Formatter struct {
	strict bool
	seq    Delimiters
	mapd   Delimiters
	pair   Delimiters
	locale Locale
	lookup func(string) (string, bool)
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithStrict controls whether a field that matches no argument is an error
// (the default) or renders as empty text.
func WithStrict(strict bool) Option {
	return func(f *Formatter) { f.strict = strict }
}

// WithSequenceDelimiters overrides the delimiters used for sequences.
func WithSequenceDelimiters(d Delimiters) Option {
	return func(f *Formatter) { f.seq = d }
}

// WithMapDelimiters overrides the delimiters used for maps.
func WithMapDelimiters(d Delimiters) Option {
	return func(f *Formatter) { f.mapd = d }
}

// WithPairDelimiters overrides the delimiters used for pairs and map entries.
func WithPairDelimiters(d Delimiters) Option {
	return func(f *Formatter) { f.pair = d }
}

// WithLocale sets the numeric punctuation used for grouped output.
func WithLocale(l Locale) Option {
	return func(f *Formatter) { f.locale = l }
}

// WithLookup replaces the environment lookup used by {$NAME} fields.
// Default: os.LookupEnv.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(f *Formatter) { f.lookup = lookup }
}

// New returns a Formatter with the given options applied over the defaults.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		strict: true,
		seq:    DefaultSequenceDelimiters,
		mapd:   DefaultMapDelimiters,
		pair:   DefaultPairDelimiters,
		locale: DefaultLocale,
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.lookup == nil {
		f.lookup = func(string) (string, bool) { return "", false }
	}
	return f
}

var std = New()

// Render formats tmpl with args using the default Formatter.
func Render(tmpl string, args ...any) (string, error) {
	return std.Render(tmpl, args...)
}

// Write formats tmpl with args and writes the result to w using the default
// Formatter.
func Write(w io.Writer, tmpl string, args ...any) error {
	return std.Write(w, tmpl, args...)
}

// FormatValue renders a single value with a raw format specifier, the text
// that would follow ':' inside a field.
func FormatValue(v any, spec string) (string, error) {
	return std.FormatValue(v, spec)
}

// Render formats tmpl with args.
func (f *Formatter) Render(tmpl string, args ...any) (string, error) {
	return f.render(tmpl, args)
}

// Write formats tmpl with args and writes the result to w. Nothing is written
// when rendering fails.
func (f *Formatter) Write(w io.Writer, tmpl string, args ...any) error {
	out, err := f.render(tmpl, args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// FormatValue renders a single value with a raw format specifier.
func (f *Formatter) FormatValue(v any, spec string) (string, error) {
	sp, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	val, err := ValueOf(v)
	if err != nil {
		return "", err
	}
	return f.renderer().render(val, nil, &fragment{raw: spec, spec: sp})
}

func (f *Formatter) render(tmpl string, args []any) (string, error) {
	frags, err := f.parse(tmpl)
	if err != nil {
		return "", err
	}
	if err := f.bind(frags, args); err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := f.assemble(&sb, frags); err != nil {
		return "", err
	}
	return sb.String(), nil
}
