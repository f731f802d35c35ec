// Package cmd implements the CLI application to analyze fund holdings.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package iterates over Commands to register them, then Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&fundsCmd{},
	&showCmd{},
	&topicCmd{},
}

// defaults shared by the commands. As a CLI application it has a very short
// lived lifecycle, so plain constants and globals are fine here.
const (
	defaultDataDir    = "fund_data"
	defaultReportFile = "analysis_report.md"
)

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer cannot be used.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// errorf reports a command failure on stderr.
func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format, args...)
	return subcommands.ExitFailure
}
