package reporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/specrun/specrun/events"
)

// Reporter is a sink for run events. Apply must tolerate being called from
// a single goroutine only; the dispatcher serializes delivery.
type Reporter interface {
	Apply(ev events.Event)
	Dispose() error
}

// ConsoleReporter renders events as single lines on a writer. Color and
// stack-trace rendering follow the sink's filter set.
type ConsoleReporter struct {
	w       io.Writer
	filters FilterSet
}

// NewConsoleReporter creates a console sink writing to w.
func NewConsoleReporter(w io.Writer, filters FilterSet) *ConsoleReporter {
	return &ConsoleReporter{w: w, filters: filters}
}

// Apply writes the event unless its kind is suppressed.
func (c *ConsoleReporter) Apply(ev events.Event) {
	if c.filters.Suppresses(ev.Kind) {
		return
	}
	fmt.Fprintln(c.w, formatEvent(ev, !c.filters.Has(PresentWithoutColor)))
	if c.filters.Has(PresentStackTraces) && ev.StackTrace != "" {
		fmt.Fprintln(c.w, ev.StackTrace)
	}
}

// Dispose implements Reporter. Console sinks hold no resources.
func (c *ConsoleReporter) Dispose() error {
	return nil
}

// formatEvent renders one event line, colored per outcome when enabled.
func formatEvent(ev events.Event, color bool) string {
	var b strings.Builder
	b.WriteString(ev.Time.Format("15:04:05.000"))
	b.WriteString(" ")
	b.WriteString(paint(eventLabel(ev.Kind), ev, color))

	if ev.SuiteName != "" {
		b.WriteString(" ")
		b.WriteString(ev.SuiteName)
	}
	if ev.TestName != "" {
		b.WriteString(" > ")
		b.WriteString(ev.TestName)
	}
	if ev.Message != "" {
		b.WriteString(": ")
		b.WriteString(ev.Message)
	}
	if ev.Err != nil {
		b.WriteString(" (")
		b.WriteString(ev.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

func paint(label string, ev events.Event, color bool) string {
	if !color {
		return label
	}
	switch {
	case ev.IsFailure():
		return text.FgRed.Sprint(label)
	case ev.Kind == events.TestSucceeded || ev.Kind == events.SuiteCompleted || ev.Kind == events.RunCompleted:
		return text.FgGreen.Sprint(label)
	case ev.Kind == events.TestIgnored || ev.Kind == events.TestPending:
		return text.FgYellow.Sprint(label)
	default:
		return text.FgCyan.Sprint(label)
	}
}

func eventLabel(kind events.Kind) string {
	return strings.ToUpper(strings.ReplaceAll(string(kind), "_", " "))
}
