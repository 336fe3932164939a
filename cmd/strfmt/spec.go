package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
)

var specCmd = &cobra.Command{
	Use:   "spec RAW",
	Short: "Print a parsed format specifier as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpec,
}

// specView is the YAML shape of a parsed specifier.
type specView struct {
	Fill      string `yaml:"fill"`
	Align     string `yaml:"align"`
	Sign      string `yaml:"sign"`
	Alternate bool   `yaml:"alternate"`
	Width     int    `yaml:"width"`
	Grouping  bool   `yaml:"grouping"`
	Precision *int   `yaml:"precision"`
	Type      string `yaml:"type"`
}

func newSpecView(sp strfmt.Spec) specView {
	v := specView{
		Align:     sp.Align.String(),
		Sign:      sp.Sign.String(),
		Alternate: sp.Alternate,
		Width:     sp.Width,
		Grouping:  sp.Grouping,
		Type:      sp.Type.String(),
	}
	if sp.Fill != 0 {
		v.Fill = string(sp.Fill)
	}
	if sp.HasPrecision() {
		p := sp.Precision
		v.Precision = &p
	}
	return v
}

func runSpec(cmd *cobra.Command, args []string) error {
	sp, err := strfmt.ParseSpec(args[0])
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(newSpecView(sp)); err != nil {
		return err
	}
	return enc.Close()
}
