package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/qjlxg/fundholdings/cmd"
)

func main() {
	// When invoked by the shell completion machinery this prints the
	// candidates and exits; otherwise it installs/uninstalls on request.
	completion().Complete("fha")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dataFlags := map[string]complete.Predictor{
		"d": predict.Dirs("*"),
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze": {Flags: map[string]complete.Predictor{
				"d": predict.Dirs("*"),
				"o": predict.Files("*.md"),
			}},
			"funds": {Flags: dataFlags},
			"show":  {Flags: dataFlags},
			"topic": {Args: predict.Set{"readme", "data-format", "report-format", "*"}},
		},
	}
}
