package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE [ARG...]",
	Short: "Render a template with arguments",
	Long: `Render formats TEMPLATE with the given arguments. Each argument is read as a
YAML value, so 12 is an integer, 2.5 a float, [1, 2] a sequence and {a: 1} a map.
Anything that is not valid YAML is passed as text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := opts.logger()
	f, err := opts.formatter(logger)
	if err != nil {
		return err
	}

	values := make([]any, 0, len(args)-1)
	for _, raw := range args[1:] {
		values = append(values, normalize(parseArg(raw)))
	}
	logger.Debug("rendering", "template", args[0], "args", len(values))

	out, err := f.Render(args[0], values...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
