package main

import (
	"os"

	"github.com/spf13/cobra"
)

var opts = &options{}

var rootCmd = &cobra.Command{
	Use:           "strfmt",
	Short:         "Render format templates from the command line",
	Long:          `strfmt renders templates with positional {} fields and a format specifier mini-language`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	opts.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(specCmd)

	if err := rootCmd.Execute(); err != nil {
		report(os.Stderr, err, opts.useColor(os.Stderr))
		os.Exit(1)
	}
}
