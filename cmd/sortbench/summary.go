package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/floatkit/radix"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string { return "summary" }

func (*summaryCmd) Synopsis() string {
	return "prints the throughput tables from a saved session file"
}

func (*summaryCmd) Usage() string { return "summary path/to/session.json\n" }

func (*summaryCmd) SetFlags(fs *flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		log.Print("usage: sortbench summary path/to/session.json")
		return subcommands.ExitUsageError
	}
	results, err := radix.LoadResults(fs.Arg(0))
	if err != nil {
		log.Fatalf("failed to load results: %v", err)
	}
	radix.PrintSummary(os.Stdout, results)
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(summaryCmd)
