package specrun

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/cliapp"

	"github.com/specrun/specrun/reporters"
	"github.com/specrun/specrun/runner"
)

// Service implements the cliapp.Lifecycle interface.
var _ cliapp.Lifecycle = &Service{}

// Service validates the argument vector, builds the reporter dispatch and
// drives runs, once or periodically per the configured interval.
type Service struct {
	ctx      context.Context
	config   *Config
	version  string
	dispatch *reporters.DispatchReporter
	runner   *runner.Runner
	result   *runner.Result

	formatter ResultFormatter

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup

	shutdownCallback func(error) // Callback to signal application shutdown
}

// New creates the service from an already-validated Config.
func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*Service, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	config.Log.Debug("Creating service with config",
		"suites", len(config.Plan.Suites),
		"runpath", len(config.Plan.Runpath),
		"runInterval", config.RunInterval,
		"runOnce", config.RunOnce)

	dispatch, err := reporters.Build(config.Reporters, reporters.BuildOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to build reporter dispatch: %w", err)
	}

	r, err := runner.NewRunner(runner.Config{
		Plan:     config.Plan,
		Executor: config.Executor,
		Reporter: dispatch,
		Log:      config.Log,
	})
	if err != nil {
		dispatch.Dispose() //nolint:errcheck
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	config.Log.Info("specrun.New: built reporter dispatch and runner",
		"sinks", dispatch.SinkCount())

	return &Service{
		ctx:              ctx,
		config:           config,
		version:          version,
		dispatch:         dispatch,
		runner:           r,
		formatter:        NewConsoleResultFormatter(config.Log),
		done:             make(chan struct{}),
		shutdownCallback: shutdownCallback,
	}, nil
}

// Start runs the suites, then either exits (run-once mode) or keeps running
// them at the configured interval.
// Start implements the cliapp.Lifecycle interface.
func (s *Service) Start(ctx context.Context) error {
	s.ctx = ctx
	s.done = make(chan struct{})
	s.running.Store(true)

	if s.config.RunOnce {
		s.config.Log.Info("Starting specrun in run-once mode")
	} else {
		s.config.Log.Info("Starting specrun in continuous mode", "interval", s.config.RunInterval)
	}

	if err := s.runPass(); err != nil {
		s.config.Log.Error("Runtime error running suites", "error", err)
		return NewRuntimeError(err)
	}

	if s.config.RunOnce {
		s.config.Log.Info("Run completed, exiting (run-once mode)")

		if s.result != nil && (s.result.Status == runner.StatusFail || s.result.Status == runner.StatusAborted) {
			s.config.Log.Warn("Run-once pass did not pass, returning exit code 1", "status", s.result.Status)
			return NewTestFailureError(s.result.String())
		}

		go func() {
			s.shutdownCallback(nil)
		}()
		return nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.config.Log.Debug("Starting periodic runner goroutine", "interval", s.config.RunInterval)

		for {
			select {
			case <-time.After(s.config.RunInterval):
				if !s.running.Load() {
					s.config.Log.Debug("Service stopped, exiting periodic runner")
					return
				}
				s.config.Log.Info("Running periodic pass")
				if err := s.runPass(); err != nil {
					s.config.Log.Error("Error running periodic pass", "error", err)
				}

			case <-s.done:
				s.config.Log.Debug("Done signal received, stopping periodic runner")
				return

			case <-ctx.Done():
				s.config.Log.Debug("Context canceled, stopping periodic runner")
				s.running.Store(false)
				return
			}
		}
	}()
	s.config.Log.Debug("specrun started successfully")
	return nil
}

// runPass executes one run and presents the results
func (s *Service) runPass() error {
	result, err := s.runner.Run(s.ctx)
	if err != nil {
		return err
	}
	s.result = result

	if err := s.formatter.FormatResults(result); err != nil {
		s.config.Log.Error("Error formatting results", "error", err)
	}
	fmt.Println(result.String())
	s.config.Log.Info("Run completed", "run_id", result.RunID, "status", result.Status)
	return nil
}

// Stop stops the specrun service.
// Stop implements the cliapp.Lifecycle interface.
func (s *Service) Stop(ctx context.Context) error {
	s.config.Log.Info("Stopping specrun")

	if !s.running.Load() {
		s.config.Log.Debug("Service already stopped, nothing to do")
		return nil
	}

	s.running.Store(false)
	close(s.done)
	s.wg.Wait()

	if err := s.dispatch.Dispose(); err != nil {
		s.config.Log.Error("Error disposing reporter sinks", "error", err)
	}

	s.config.Log.Info("specrun stopped successfully")
	return nil
}

// Stopped returns true if the specrun service is stopped.
// Stopped implements the cliapp.Lifecycle interface.
func (s *Service) Stopped() bool {
	return !s.running.Load()
}

// Result returns the most recent run result, nil before the first pass.
func (s *Service) Result() *runner.Result {
	return s.result
}
