package specrun

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"

	"github.com/specrun/specrun/runner"
)

func createSampleResult() *runner.Result {
	return &runner.Result{
		RunID:    "run-1",
		Status:   runner.StatusFail,
		Duration: 1500 * time.Millisecond,
		Stats:    runner.ResultStats{Total: 3, Passed: 1, Failed: 1, Pending: 1},
		Suites: []runner.SuiteResult{
			{
				Name:     "FirstSuite",
				Status:   runner.StatusPass,
				Stats:    runner.ResultStats{Total: 1, Passed: 1},
				Duration: 500 * time.Millisecond,
			},
			{
				Name:     "SecondSuite",
				Status:   runner.StatusFail,
				Stats:    runner.ResultStats{Total: 2, Failed: 1, Pending: 1},
				Duration: time.Second,
				Err:      errors.New("executor gave up"),
			},
		},
	}
}

// TestConsoleResultFormatter_FormatResults tests the basic functionality of the formatter
func TestConsoleResultFormatter_FormatResults(t *testing.T) {
	result := createSampleResult()
	formatter := NewConsoleResultFormatter(log.New())

	// Format results - this is mostly a visual test, so we're just checking it doesn't error
	err := formatter.FormatResults(result)
	assert.NoError(t, err)
}

// TestConsoleResultFormatter_FormatResults_EmptyResult tests formatting an empty result
func TestConsoleResultFormatter_FormatResults_EmptyResult(t *testing.T) {
	result := &runner.Result{
		RunID:    "empty-run",
		Status:   runner.StatusPass,
		Duration: 100 * time.Millisecond,
	}
	formatter := NewConsoleResultFormatter(log.New())

	err := formatter.FormatResults(result)
	assert.NoError(t, err)
}

func TestGetResultString(t *testing.T) {
	assert.Contains(t, getResultString(runner.StatusPass), "pass")
	assert.Contains(t, getResultString(runner.StatusFail), "fail")
	assert.Contains(t, getResultString(runner.StatusAborted), "aborted")
	assert.Contains(t, getResultString(runner.StatusStopped), "stopped")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "0.0s", formatDuration(0))
}
