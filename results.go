package radix

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio"
)

// Result captures one measured (scenario, size) cell of a benchmark run.
type Result struct {
	Scenario string `json:"scenario"`
	N        int    `json:"n"`
	Trials   int    `json:"trials"`

	// Throughput in million elements per second
	StdMelems   float64 `json:"std_melems"`
	RadixMelems float64 `json:"radix_melems"`
	Speedup     float64 `json:"speedup"`

	// Per-trial latency distribution (nanoseconds)
	RadixP50Ns int64   `json:"radix_p50_ns,omitempty"`
	RadixP99Ns int64   `json:"radix_p99_ns,omitempty"`
	StdP50Ns   int64   `json:"std_p50_ns,omitempty"`
	RadixMean  float64 `json:"radix_mean_ns,omitempty"`
	RadixStdev float64 `json:"radix_stdev_ns,omitempty"`

	VerifyFailures int       `json:"verify_failures"`
	Timestamp      time.Time `json:"timestamp"`
}

// SessionLog accumulates results for one benchmark session and persists
// them to a timestamped JSON file after every append, so a crash loses
// at most the in-flight measurement. Writes are atomic.
type SessionLog struct {
	mu      sync.Mutex
	results []Result
	path    string
}

// NewSessionLog creates the log directory if needed and starts a new
// session file named after sessionName and the current time.
func NewSessionLog(dir, sessionName string) (*SessionLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, NewIOError("NewSessionLog", "failed to create log directory", err)
	}
	stamp := time.Now().Format("20060102_150405")
	l := &SessionLog{
		path: filepath.Join(dir, fmt.Sprintf("%s_%s.json", sessionName, stamp)),
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the session file location.
func (l *SessionLog) Path() string { return l.path }

// Append records a result and flushes the session file.
func (l *SessionLog) Append(r Result) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	r.Timestamp = time.Now()
	l.results = append(l.results, r)
	return l.flush()
}

func (l *SessionLog) flush() error {
	data, err := json.MarshalIndent(l.results, "", "  ")
	if err != nil {
		return NewIOError("SessionLog.flush", "failed to marshal results", err)
	}
	if err := renameio.WriteFile(l.path, data, 0644); err != nil {
		return NewIOError("SessionLog.flush", "failed to write session file", err)
	}
	return nil
}

// LoadResults reads a session file written by SessionLog.
func LoadResults(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("LoadResults", "failed to read session file", err)
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, NewIOError("LoadResults", "failed to decode session file", err)
	}
	return results, nil
}

// PrintTable writes the per-size throughput rows for one scenario in the
// classic four-column layout.
func PrintTable(w io.Writer, scenario string, results []Result) {
	fmt.Fprintf(w, "\n=== %s (million elements/sec) ===\n", scenario)
	fmt.Fprintf(w, "%12s%16s%16s%12s\n", "Elements", "stdlib sort", "Radix", "Speedup")
	for _, r := range results {
		if r.Scenario != scenario {
			continue
		}
		fmt.Fprintf(w, "%12d%16.2f%16.2f%11.2fx\n",
			r.N, r.StdMelems, r.RadixMelems, r.Speedup)
	}
}

// PrintSummary writes totals and any verification failures for a
// finished session.
func PrintSummary(w io.Writer, results []Result) {
	failures := 0
	for _, r := range results {
		failures += r.VerifyFailures
	}
	scenarios := map[string]bool{}
	for _, r := range results {
		if !scenarios[r.Scenario] {
			scenarios[r.Scenario] = true
			PrintTable(w, r.Scenario, results)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d measurements", len(results))
	if failures > 0 {
		fmt.Fprintf(w, " | VERIFICATION FAILURES: %d", failures)
	}
	fmt.Fprintln(w)
}
