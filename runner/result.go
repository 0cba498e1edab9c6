package runner

import (
	"fmt"
	"strings"
	"time"
)

// RunStatus represents the overall outcome of a run or a single suite
type RunStatus string

const (
	StatusPass    RunStatus = "pass"
	StatusFail    RunStatus = "fail"
	StatusAborted RunStatus = "aborted"
	StatusStopped RunStatus = "stopped"
)

// ResultStats tracks test statistics at each level
type ResultStats struct {
	Total   int
	Passed  int
	Failed  int
	Ignored int
	Pending int
}

func (s *ResultStats) add(o ResultStats) {
	s.Total += o.Total
	s.Passed += o.Passed
	s.Failed += o.Failed
	s.Ignored += o.Ignored
	s.Pending += o.Pending
}

// SuiteResult captures aggregated results for one suite
type SuiteResult struct {
	Name     string
	Status   RunStatus
	Stats    ResultStats
	Duration time.Duration
	Err      error // set when the executor aborted the suite
}

// Result captures the complete run results
type Result struct {
	RunID    string
	Status   RunStatus
	Stats    ResultStats
	Duration time.Duration
	Suites   []SuiteResult
}

// formatDuration formats the duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// String returns a formatted string representation of the run results
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run Results (%s):\n", formatDuration(r.Duration)))
	b.WriteString(fmt.Sprintf("Total: %d, Passed: %d, Failed: %d, Ignored: %d, Pending: %d\n",
		r.Stats.Total, r.Stats.Passed, r.Stats.Failed, r.Stats.Ignored, r.Stats.Pending))

	for _, suite := range r.Suites {
		b.WriteString(fmt.Sprintf("\nSuite: %s (%s)\n", suite.Name, formatDuration(suite.Duration)))
		b.WriteString(fmt.Sprintf("├── Status: %s\n", suite.Status))
		b.WriteString(fmt.Sprintf("└── Tests: %d passed, %d failed, %d ignored, %d pending\n",
			suite.Stats.Passed, suite.Stats.Failed, suite.Stats.Ignored, suite.Stats.Pending))
		if suite.Err != nil {
			b.WriteString(fmt.Sprintf("    Error: %v\n", suite.Err))
		}
	}
	return b.String()
}
