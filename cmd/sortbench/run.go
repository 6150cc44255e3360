package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/google/subcommands"

	"github.com/floatkit/radix"
)

type runCmd struct {
	config  string
	logDir  string
	session string
	noTable bool
}

func (*runCmd) Name() string { return "run" }

func (*runCmd) Synopsis() string {
	return "runs the radix-vs-comparison-sort benchmark sweep"
}

func (*runCmd) Usage() string { return "" }

func (c *runCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "c", "", "path to YAML sweep config (default: built-in sweep)")
	fs.StringVar(&c.logDir, "logdir", "benchmark_logs", "directory for JSON session files")
	fs.StringVar(&c.session, "session", "sortbench", "session name for the results file")
	fs.BoolVar(&c.noTable, "q", false, "suppress the live throughput tables")
}

func (c *runCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := radix.DefaultConfig()
	if c.config != "" {
		var err error
		cfg, err = radix.LoadConfig(c.config)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	sessionLog, err := radix.NewSessionLog(c.logDir, c.session)
	if err != nil {
		log.Fatalf("failed to open session log: %v", err)
	}

	fmt.Printf("radix: %s  Go: %s  GOARCH: %s  CPU: %s  prefetch hints: %v\n",
		radix.Version(), runtime.Version(), runtime.GOARCH,
		radix.Features().FeatureString(), radix.PrefetchEnabled)

	runner := radix.NewRunner(cfg)
	runner.Log = sessionLog
	if !c.noTable {
		runner.Table = os.Stdout
	}

	results, err := runner.Run()
	if err != nil {
		log.Fatalf("benchmark run failed: %v", err)
	}

	fmt.Printf("\nresults written to %s\n", sessionLog.Path())
	if err := radix.VerifyResults(results); err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(runCmd)
