// Package runner coordinates one acceptance pass over the configured
// suites, turning executor outcomes into the event stream the reporter
// dispatch consumes. Suite discovery and execution belong to the injected
// SuiteExecutor; the coordinator owns ordering, aggregation and metrics.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/specrun/specrun/events"
	"github.com/specrun/specrun/metrics"
	"github.com/specrun/specrun/reporters"
)

// Plan describes one acceptance pass: which suites run, under which tag
// filters, over which runpath entries.
type Plan struct {
	Suites      []string
	IncludeTags map[string]struct{}
	ExcludeTags map[string]struct{}
	Runpath     []string
	Concurrent  bool
}

// TestOutcome is one test's verdict as reported by the executor. Kind is
// one of TestSucceeded, TestFailed, TestIgnored or TestPending.
type TestOutcome struct {
	Name       string
	Kind       events.Kind
	Message    string
	Err        error
	StackTrace string
}

// SuiteExecutor runs one suite and reports per-test outcomes. Returning an
// error aborts the suite; the run continues with the next suite.
type SuiteExecutor interface {
	ExecuteSuite(ctx context.Context, suite string, plan Plan) ([]TestOutcome, error)
}

// PendingExecutor is the built-in executor used when no execution engine is
// wired in. It reports a single pending placeholder per suite so the whole
// reporting pipeline is exercised without running anything.
type PendingExecutor struct{}

func (PendingExecutor) ExecuteSuite(ctx context.Context, suite string, plan Plan) ([]TestOutcome, error) {
	return []TestOutcome{{
		Name:    suite,
		Kind:    events.TestPending,
		Message: "suite execution is delegated to an external engine",
	}}, nil
}

// Config configures a Runner.
type Config struct {
	Plan     Plan
	Executor SuiteExecutor
	Reporter reporters.Reporter
	Log      log.Logger
}

// Runner drives one or more acceptance passes.
type Runner struct {
	plan     Plan
	executor SuiteExecutor
	reporter reporters.Reporter
	log      log.Logger
	tracer   trace.Tracer
}

// NewRunner creates a Runner. A reporter is required; the executor defaults
// to PendingExecutor.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Reporter == nil {
		return nil, errors.New("reporter is required")
	}
	if cfg.Executor == nil {
		cfg.Executor = PendingExecutor{}
	}
	if cfg.Log == nil {
		cfg.Log = log.Root()
	}
	return &Runner{
		plan:     cfg.Plan,
		executor: cfg.Executor,
		reporter: cfg.Reporter,
		log:      cfg.Log,
		tracer:   otel.Tracer("suite runner"),
	}, nil
}

// Run executes one acceptance pass and returns the aggregated result.
// A canceled context stops the pass between suites and yields a stopped
// result. An executor failure aborts the affected suite and the run moves
// on; when every suite of the pass aborts the run itself is aborted.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	ctx, span := r.tracer.Start(ctx, "run",
		trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()

	r.log.Info("Starting run", "run_id", runID, "suites", len(r.plan.Suites))
	start := time.Now()
	result := &Result{RunID: runID, Status: StatusPass}

	r.emit(events.Event{Kind: events.RunStarting, RunID: runID,
		Message: fmt.Sprintf("%d suites", len(r.plan.Suites))})

	stopped := false
	aborted := 0
	for _, suite := range r.plan.Suites {
		if ctx.Err() != nil {
			stopped = true
			break
		}
		sr := r.runSuite(ctx, runID, suite)
		result.Suites = append(result.Suites, sr)
		result.Stats.add(sr.Stats)
		if sr.Status == StatusAborted {
			aborted++
		}
		if sr.Status == StatusFail || sr.Status == StatusAborted {
			result.Status = StatusFail
		}
	}
	result.Duration = time.Since(start)

	switch {
	case stopped:
		result.Status = StatusStopped
		r.emit(events.Event{Kind: events.RunStopped, RunID: runID})
	case aborted > 0 && aborted == len(result.Suites):
		result.Status = StatusAborted
		r.emit(events.Event{Kind: events.RunAborted, RunID: runID,
			Message: fmt.Sprintf("all %d suites aborted", aborted)})
	default:
		r.emit(events.Event{Kind: events.RunCompleted, RunID: runID,
			Message: fmt.Sprintf("%d/%d passed", result.Stats.Passed, result.Stats.Total)})
	}

	metrics.RecordRun(runID, string(result.Status), len(result.Suites), result.Duration)
	r.log.Info("Run finished", "run_id", runID, "status", result.Status, "duration", result.Duration)
	return result, nil
}

func (r *Runner) runSuite(ctx context.Context, runID, suite string) SuiteResult {
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("suite %s", suite))
	defer span.End()

	start := time.Now()
	sr := SuiteResult{Name: suite, Status: StatusPass}
	r.emit(events.Event{Kind: events.SuiteStarting, RunID: runID, SuiteName: suite})

	outcomes, err := r.executor.ExecuteSuite(ctx, suite, r.plan)
	if err != nil {
		sr.Status = StatusAborted
		sr.Err = err
		sr.Duration = time.Since(start)
		r.log.Error("Suite aborted", "suite", suite, "error", err)
		r.emit(events.Event{Kind: events.SuiteAborted, RunID: runID, SuiteName: suite, Err: err})
		return sr
	}

	for _, outcome := range outcomes {
		r.emit(events.Event{Kind: events.TestStarting, RunID: runID,
			SuiteName: suite, TestName: outcome.Name})
		r.emit(events.Event{
			Kind:       outcome.Kind,
			RunID:      runID,
			SuiteName:  suite,
			TestName:   outcome.Name,
			Message:    outcome.Message,
			Err:        outcome.Err,
			StackTrace: outcome.StackTrace,
		})

		sr.Stats.Total++
		switch outcome.Kind {
		case events.TestSucceeded:
			sr.Stats.Passed++
		case events.TestFailed:
			sr.Stats.Failed++
			sr.Status = StatusFail
		case events.TestIgnored:
			sr.Stats.Ignored++
		case events.TestPending:
			sr.Stats.Pending++
		}
	}

	sr.Duration = time.Since(start)
	r.emit(events.Event{Kind: events.SuiteCompleted, RunID: runID, SuiteName: suite,
		Message: fmt.Sprintf("%d tests", sr.Stats.Total)})
	return sr
}

func (r *Runner) emit(ev events.Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	r.reporter.Apply(ev)
}
