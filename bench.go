package radix

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/stat"
)

// Scenario names one input distribution for the benchmark sweep.
type Scenario struct {
	Name         string `json:"name"`
	MostlySorted bool   `json:"mostlySorted"`
}

// Config controls a benchmark sweep: sizes 2^MinExp..2^MaxExp, with the
// trial count per size clamped so N*trials stays under MaxTotal.
type Config struct {
	MinExp    int        `json:"minExp"`
	MaxExp    int        `json:"maxExp"`
	MaxTrials int        `json:"maxTrials"`
	MaxTotal  int        `json:"maxTotal"`
	Seed      uint64     `json:"seed"`
	Verify    bool       `json:"verify"`
	Scenarios []Scenario `json:"scenarios"`
}

// DefaultConfig reproduces the historical demo sweep: sizes 2^1..2^24,
// up to 128 trials capped at 16M total elements per size, random and
// mostly-sorted inputs, sortedness verification on.
func DefaultConfig() Config {
	return Config{
		MinExp:    1,
		MaxExp:    24,
		MaxTrials: DefaultMaxTrials,
		MaxTotal:  DefaultMaxTotal,
		Seed:      DefaultSeed,
		Verify:    true,
		Scenarios: []Scenario{
			{Name: "Random Input", MostlySorted: false},
			{Name: "Mostly-Sorted Input", MostlySorted: true},
		},
	}
}

// LoadConfig reads a YAML sweep description, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigError("LoadConfig", "failed to read config", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, NewConfigError("LoadConfig", "failed to parse config", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.MinExp < 0 || c.MaxExp > 30 || c.MinExp > c.MaxExp:
		return NewConfigError("Config", fmt.Sprintf("bad size range 2^%d..2^%d", c.MinExp, c.MaxExp), nil)
	case c.MaxTrials < 1:
		return NewConfigError("Config", "maxTrials must be at least 1", nil)
	case c.MaxTotal < 1:
		return NewConfigError("Config", "maxTotal must be at least 1", nil)
	case len(c.Scenarios) == 0:
		return NewConfigError("Config", "no scenarios", nil)
	}
	return nil
}

// Runner executes a benchmark sweep. It is a pure caller of the sort
// kernel: it generates inputs, times the comparison sort against the
// radix sort, and independently verifies sortedness of the output.
type Runner struct {
	Config Config

	// Table, when set, receives live per-scenario throughput tables.
	Table io.Writer

	// Log, when set, receives every Result as it is measured.
	Log *SessionLog
}

// NewRunner returns a Runner for cfg with no table output or session log.
func NewRunner(cfg Config) *Runner {
	return &Runner{Config: cfg}
}

// Run executes the full sweep and returns one Result per (scenario, size).
func (r *Runner) Run() ([]Result, error) {
	if err := r.Config.validate(); err != nil {
		return nil, err
	}
	var all []Result
	for _, sc := range r.Config.Scenarios {
		var rows []Result
		for e := r.Config.MinExp; e <= r.Config.MaxExp; e++ {
			n := 1 << e
			trials := max(1, min(r.Config.MaxTrials, r.Config.MaxTotal/n))
			res := r.runSize(sc, n, trials)
			rows = append(rows, res)
			if r.Log != nil {
				if err := r.Log.Append(res); err != nil {
					return nil, err
				}
			}
		}
		if r.Table != nil {
			PrintTable(r.Table, sc.Name, rows)
		}
		all = append(all, rows...)
	}
	return all, nil
}

// runSize measures one (scenario, size) cell: trials timed calls of the
// reference sort and of RadixSort11 on independently generated inputs.
func (r *Runner) runSize(sc Scenario, n, trials int) Result {
	stdIn := GenerateTrials(trials, n, r.Config.Seed, sc.MostlySorted)
	radixIn := GenerateTrials(trials, n, r.Config.Seed, sc.MostlySorted)
	radixOut := make([]float32, n)

	res := Result{Scenario: sc.Name, N: n, Trials: trials}

	// Per-trial latencies: one significant-figure-3 histogram for
	// quantiles, raw slices for moment statistics.
	stdHist := hdrhistogram.New(1, int64(time.Minute), 3)
	radixHist := hdrhistogram.New(1, int64(time.Minute), 3)
	radixNs := make([]float64, 0, trials)

	var ref Reference
	var stdTotal time.Duration
	for t := 0; t < trials; t++ {
		start := time.Now()
		ref.Sort(stdIn[t])
		d := time.Since(start)
		stdTotal += d
		stdHist.RecordValue(d.Nanoseconds())
	}
	if r.Config.Verify && !IsSorted(stdIn[trials-1]) {
		log.Printf("radix: reference sort failed verification at N=%d", n)
		res.VerifyFailures++
	}

	var radixTotal time.Duration
	for t := 0; t < trials; t++ {
		start := time.Now()
		RadixSort11(radixIn[t], radixOut, uint32(n))
		d := time.Since(start)
		radixTotal += d
		radixHist.RecordValue(d.Nanoseconds())
		radixNs = append(radixNs, float64(d.Nanoseconds()))

		if r.Config.Verify && !IsSorted(radixOut) {
			log.Printf("radix: RadixSort11 failed verification at N=%d trial=%d", n, t)
			res.VerifyFailures++
		}
	}

	res.StdMelems = melems(n, trials, stdTotal)
	res.RadixMelems = melems(n, trials, radixTotal)
	if res.StdMelems > 0 {
		res.Speedup = res.RadixMelems / res.StdMelems
	}
	res.StdP50Ns = stdHist.ValueAtQuantile(50)
	res.RadixP50Ns = radixHist.ValueAtQuantile(50)
	res.RadixP99Ns = radixHist.ValueAtQuantile(99)
	res.RadixMean = stat.Mean(radixNs, nil)
	if trials > 1 {
		res.RadixStdev = stat.StdDev(radixNs, nil)
	}
	return res
}

// VerifyResults inspects a finished sweep and returns a verification
// error describing any trial outputs that failed the sortedness check.
// The Runner itself only counts and logs failures so a sweep always
// runs to completion; callers that want a hard failure use this.
func VerifyResults(results []Result) error {
	failures := 0
	for _, r := range results {
		failures += r.VerifyFailures
	}
	if failures == 0 {
		return nil
	}
	return NewVerificationError("Runner",
		fmt.Sprintf("%d trial outputs failed the sortedness check", failures), nil)
}

func melems(n, trials int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) * float64(trials) / d.Seconds() / 1e6
}
