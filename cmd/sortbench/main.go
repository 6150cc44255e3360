// Copyright ©2025 The FloatKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sortbench benchmarks the float32 radix sort against the
// standard library's comparison sort across input sizes and
// distributions, and manages the resulting measurement files.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(runCmd), "bench")
	subcommands.Register(new(summaryCmd), "bench")

	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sortbench: ")
	os.Exit(int(subcommands.Execute(context.Background())))
}
