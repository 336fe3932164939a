package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bjaus/strfmt"
)

// report writes err to w. Parse errors get a caret pointing into the
// template.
func report(w io.Writer, err error, useColor bool) {
	errorColor := color.New(color.FgRed, color.Bold)
	caretColor := color.New(color.FgGreen, color.Bold)
	for _, c := range []*color.Color{errorColor, caretColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var pe *strfmt.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
		return
	}
	// Pointer yields the headline, the template line, the caret and the message.
	lines := strings.Split(strings.TrimSuffix(pe.Pointer(), "\n"), "\n")
	fmt.Fprintf(w, "%s %s\n", errorColor.Sprint("error:"), lines[0])
	for i, line := range lines[1:] {
		if i == 1 {
			line = caretColor.Sprint(line)
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}
