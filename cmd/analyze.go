package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/qjlxg/fundholdings"
	"github.com/qjlxg/fundholdings/renderer"
)

type analyzeCmd struct {
	dataDir    string
	reportFile string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze holdings snapshots and write the markdown report" }
func (*analyzeCmd) Usage() string {
	return `fha analyze [-d <dir>] [-o <file>]

  Groups the quarterly holdings snapshots by fund, analyzes each fund's
  holdings changes, segment preferences and concentration, and writes the
  combined markdown report. An existing report file is overwritten.

Usage Examples:
# Analyze ./fund_data and write ./analysis_report.md
$ fha analyze

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "d", defaultDataDir, "Directory containing the holdings snapshot CSV files")
	f.StringVar(&c.reportFile, "o", defaultReportFile, "Path of the markdown report to write")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := fundholdings.Run(c.dataDir)
	if err != nil {
		return errorf("Error: %v\n", err)
	}

	md := renderer.ReportMarkdown(report)
	if err := os.WriteFile(c.reportFile, []byte(md), 0644); err != nil {
		return errorf("Error writing report %q: %v\n", c.reportFile, err)
	}

	fmt.Printf("分析报告已生成：%s\n", c.reportFile)
	return subcommands.ExitSuccess
}
