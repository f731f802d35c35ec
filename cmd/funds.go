package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/subcommands"
	"github.com/qjlxg/fundholdings"
)

type fundsCmd struct {
	dataDir string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the funds discovered in the snapshot directory" }
func (*fundsCmd) Usage() string {
	return `fha funds [-d <dir>]

  Lists every fund identifier found in the snapshot directory together with
  its snapshot files and the reporting quarters they cover.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "d", defaultDataDir, "Directory containing the holdings snapshot CSV files")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ff, err := fundholdings.DiscoverFunds(c.dataDir)
	if err != nil {
		return errorf("Error: %v\n", err)
	}

	for _, fund := range ff.Codes() {
		files := ff.Files(fund)
		var recs []fundholdings.Holding
		for _, path := range files {
			holdings, err := fundholdings.ReadSnapshot(path, fund)
			if err != nil {
				log.Printf("skipping %v", err)
				continue
			}
			recs = append(recs, holdings...)
		}
		history := fundholdings.NewFundHistory(fund, recs)
		var quarters []string
		for _, q := range history.Quarters() {
			quarters = append(quarters, q.String())
		}
		fmt.Printf("%s: %d file(s), quarters: %s\n", fund, len(files), strings.Join(quarters, ", "))
	}
	return subcommands.ExitSuccess
}
