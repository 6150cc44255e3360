// Copyright ©2025 The FloatKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command compare checks a benchmark session against a baseline session
// and flags throughput regressions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/floatkit/radix"
)

type comparison struct {
	Scenario string
	N        int
	Status   string // "OK", "FASTER", "SLOWER", "FAIL"

	BaselineMelems float64
	CurrentMelems  float64
	Ratio          float64
}

func main() {
	var (
		baselineFile = flag.String("baseline", "baseline.json", "baseline session file")
		currentFile  = flag.String("current", "current.json", "current session file")
		regress      = flag.Float64("regress", 0.9, "regression threshold (0.9 = flag if >10% slower)")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("compare: ")

	baseline, err := radix.LoadResults(*baselineFile)
	if err != nil {
		log.Fatalf("failed to load baseline: %v", err)
	}
	current, err := radix.LoadResults(*currentFile)
	if err != nil {
		log.Fatalf("failed to load current results: %v", err)
	}

	comparisons := compare(baseline, current, *regress)
	printSummary(comparisons)

	for _, c := range comparisons {
		if c.Status == "FAIL" || c.Status == "SLOWER" {
			os.Exit(1)
		}
	}
}

func compare(baseline, current []radix.Result, regress float64) []comparison {
	type key struct {
		scenario string
		n        int
	}
	base := make(map[key]radix.Result, len(baseline))
	for _, r := range baseline {
		base[key{r.Scenario, r.N}] = r
	}

	var out []comparison
	for _, r := range current {
		b, ok := base[key{r.Scenario, r.N}]
		if !ok {
			continue
		}
		c := comparison{
			Scenario:       r.Scenario,
			N:              r.N,
			BaselineMelems: b.RadixMelems,
			CurrentMelems:  r.RadixMelems,
		}
		if b.RadixMelems > 0 {
			c.Ratio = r.RadixMelems / b.RadixMelems
		}
		switch {
		case r.VerifyFailures > 0:
			c.Status = "FAIL"
		case c.Ratio < regress:
			c.Status = "SLOWER"
		case c.Ratio > 1/regress:
			c.Status = "FASTER"
		default:
			c.Status = "OK"
		}
		out = append(out, c)
	}
	return out
}

func printSummary(comparisons []comparison) {
	fmt.Printf("%-24s%12s%14s%14s%8s  %s\n",
		"Scenario", "Elements", "Baseline", "Current", "Ratio", "Status")
	for _, c := range comparisons {
		fmt.Printf("%-24s%12d%14.2f%14.2f%7.2fx  %s\n",
			c.Scenario, c.N, c.BaselineMelems, c.CurrentMelems, c.Ratio, c.Status)
	}
}
