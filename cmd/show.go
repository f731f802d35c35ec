package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/qjlxg/fundholdings"
	"github.com/qjlxg/fundholdings/renderer"
)

type showCmd struct {
	dataDir string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "render one fund's analysis in the terminal" }
func (*showCmd) Usage() string {
	return `fha show [-d <dir>] <fund>

  Analyzes a single fund and renders its report section in the terminal,
  without writing the report file.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "d", defaultDataDir, "Directory containing the holdings snapshot CSV files")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return errorf("Error: expected exactly one fund identifier\n")
	}
	fund := f.Arg(0)

	report, err := fundholdings.Run(c.dataDir)
	if err != nil {
		return errorf("Error: %v\n", err)
	}
	for _, a := range report.Funds() {
		if a.Fund == fund {
			printMarkdown(renderer.FundMarkdown(a))
			return subcommands.ExitSuccess
		}
	}
	return errorf("Error: no usable snapshot for fund %q\n", fund)
}
