// Package events defines the closed vocabulary of run-lifecycle events that
// flows from the run coordinator into the configured reporter sinks.
package events

import "time"

// Kind identifies one event in the run lifecycle
type Kind string

const (
	RunStarting    Kind = "run_starting"
	RunCompleted   Kind = "run_completed"
	RunStopped     Kind = "run_stopped"
	RunAborted     Kind = "run_aborted"
	SuiteStarting  Kind = "suite_starting"
	SuiteCompleted Kind = "suite_completed"
	SuiteAborted   Kind = "suite_aborted"
	TestStarting   Kind = "test_starting"
	TestSucceeded  Kind = "test_succeeded"
	TestFailed     Kind = "test_failed"
	TestIgnored    Kind = "test_ignored"
	TestPending    Kind = "test_pending"
	InfoProvided   Kind = "info_provided"
)

// Kinds lists every event kind, in lifecycle order.
var Kinds = []Kind{
	RunStarting,
	RunCompleted,
	RunStopped,
	RunAborted,
	SuiteStarting,
	SuiteCompleted,
	SuiteAborted,
	TestStarting,
	TestSucceeded,
	TestFailed,
	TestIgnored,
	TestPending,
	InfoProvided,
}

// Event is one occurrence in a run, handed to every configured reporter.
// SuiteName and TestName are empty for run-level events; Err and StackTrace
// are set only on failure/abort kinds.
type Event struct {
	Kind       Kind
	Time       time.Time
	RunID      string
	SuiteName  string
	TestName   string
	Message    string
	Err        error
	StackTrace string
}

// IsFailure reports whether the event represents a failed or aborted outcome.
func (e Event) IsFailure() bool {
	switch e.Kind {
	case TestFailed, SuiteAborted, RunAborted:
		return true
	default:
		return false
	}
}
