package reporters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specrun/specrun/events"
	"github.com/specrun/specrun/metrics"
)

// BuildOptions carries the writers the console sinks attach to. Zero values
// fall back to the process streams.
type BuildOptions struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DispatchReporter fans each event out to every built sink.
type DispatchReporter struct {
	sinks []Reporter
}

// Build instantiates the sinks described by cfg. A configured graphic
// reporter is a runtime error in this headless service. When cfg names no
// sinks at all, a default standard-out sink with an empty filter set is
// installed so a run is never silent.
func Build(cfg *Config, opts BuildOptions) (*DispatchReporter, error) {
	if cfg == nil {
		return nil, errors.New("reporter configuration is required")
	}
	if cfg.Graphic != nil {
		return nil, errors.New("the graphic reporter is not supported in headless mode")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	d := &DispatchReporter{}
	if cfg.StandardOut != nil {
		d.sinks = append(d.sinks, NewConsoleReporter(opts.Stdout, cfg.StandardOut.Filters))
	}
	if cfg.StandardErr != nil {
		d.sinks = append(d.sinks, NewConsoleReporter(opts.Stderr, cfg.StandardErr.Filters))
	}
	for _, fc := range cfg.Files {
		sink, err := NewFileReporter(fc.Filename, fc.Filters)
		if err != nil {
			d.disposeAll()
			return nil, err
		}
		d.sinks = append(d.sinks, sink)
	}
	for _, cc := range cfg.Custom {
		sink, err := newCustom(cc)
		if err != nil {
			d.disposeAll()
			return nil, fmt.Errorf("failed to build custom reporter %q: %w", cc.Name, err)
		}
		d.sinks = append(d.sinks, sink)
	}
	if len(d.sinks) == 0 {
		d.sinks = append(d.sinks, NewConsoleReporter(opts.Stdout, FilterSet{}))
	}
	return d, nil
}

// Apply delivers the event to every sink and records it.
func (d *DispatchReporter) Apply(ev events.Event) {
	metrics.RecordEvent(string(ev.Kind))
	for _, sink := range d.sinks {
		sink.Apply(ev)
	}
}

// Dispose releases every sink, keeping the first error per sink.
func (d *DispatchReporter) Dispose() error {
	return d.disposeAll()
}

// SinkCount reports how many sinks were built. Used by the startup summary.
func (d *DispatchReporter) SinkCount() int {
	return len(d.sinks)
}

func (d *DispatchReporter) disposeAll() error {
	var errs []error
	for _, sink := range d.sinks {
		if err := sink.Dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	d.sinks = nil
	return errors.Join(errs...)
}
