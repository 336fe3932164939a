package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/strfmt"
)

// options holds the flags shared by every subcommand.
type options struct {
	config  string
	lenient bool
	color   string
	verbose bool
}

// AddFlags registers the shared flags on flagSet.
func (o *options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.config, "config", "", "YAML or TOML file with formatter options")
	flagSet.BoolVar(&o.lenient, "lenient", false, "render unbound fields as empty text instead of failing")
	flagSet.StringVar(&o.color, "color", "auto", "colorize diagnostics (auto|on|off)")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// formatter builds the Formatter described by the config file and flags.
func (o *options) formatter(logger *slog.Logger) (*strfmt.Formatter, error) {
	var fopts []strfmt.Option
	if o.config != "" {
		loaded, err := strfmt.LoadConfig(o.config)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("loaded config", "path", o.config, "options", len(loaded))
		fopts = append(fopts, loaded...)
	}
	if o.lenient {
		fopts = append(fopts, strfmt.WithStrict(false))
	}
	return strfmt.New(fopts...), nil
}

func (o *options) useColor(f *os.File) bool {
	switch o.color {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}
