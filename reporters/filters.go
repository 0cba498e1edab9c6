// Package reporters compiles the reporter bucket of a classified argument
// vector into a structured configuration, and builds the reporter sinks
// that consume run events.
package reporters

import (
	"fmt"

	"github.com/specrun/specrun/events"
)

// Filter is one event-presentation option carried by a reporter flag's
// configuration suffix. Suppress filters drop one event kind; Present
// filters toggle how surviving events are rendered.
type Filter int

const (
	SuppressRunStarting Filter = iota
	SuppressTestStarting
	SuppressTestSucceeded
	SuppressTestFailed
	SuppressSuiteStarting
	SuppressSuiteCompleted
	SuppressSuiteAborted
	SuppressInfoProvided
	SuppressRunStopped
	SuppressRunAborted
	SuppressRunCompleted
	SuppressTestIgnored
	SuppressTestPending
	PresentWithoutColor
	PresentStackTraces
)

// filterLetters fixes the letter-to-filter table. The slice index order is
// the canonical suffix order used when encoding a set back to letters.
var filterLetters = []struct {
	letter rune
	filter Filter
}{
	{'Y', SuppressRunStarting},
	{'Z', SuppressTestStarting},
	{'T', SuppressTestSucceeded},
	{'F', SuppressTestFailed},
	{'U', SuppressSuiteStarting},
	{'L', SuppressSuiteCompleted},
	{'B', SuppressSuiteAborted},
	{'I', SuppressInfoProvided},
	{'S', SuppressRunStopped},
	{'A', SuppressRunAborted},
	{'R', SuppressRunCompleted},
	{'G', SuppressTestIgnored},
	{'P', SuppressTestPending},
	{'W', PresentWithoutColor},
	{'D', PresentStackTraces},
}

// suppressedKinds maps each suppress filter to the event kind it drops.
// Present filters have no entry.
var suppressedKinds = map[Filter]events.Kind{
	SuppressRunStarting:    events.RunStarting,
	SuppressTestStarting:   events.TestStarting,
	SuppressTestSucceeded:  events.TestSucceeded,
	SuppressTestFailed:     events.TestFailed,
	SuppressSuiteStarting:  events.SuiteStarting,
	SuppressSuiteCompleted: events.SuiteCompleted,
	SuppressSuiteAborted:   events.SuiteAborted,
	SuppressInfoProvided:   events.InfoProvided,
	SuppressRunStopped:     events.RunStopped,
	SuppressRunAborted:     events.RunAborted,
	SuppressRunCompleted:   events.RunCompleted,
	SuppressTestIgnored:    events.TestIgnored,
	SuppressTestPending:    events.TestPending,
}

// String returns the filter's suffix letter.
func (f Filter) String() string {
	for _, e := range filterLetters {
		if e.filter == f {
			return string(e.letter)
		}
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// FilterSet is the set of filters active for one reporter sink.
type FilterSet map[Filter]struct{}

// Has reports whether f is in the set.
func (s FilterSet) Has(f Filter) bool {
	_, ok := s[f]
	return ok
}

// Suppresses reports whether an event of the given kind should be dropped.
func (s FilterSet) Suppresses(kind events.Kind) bool {
	for f := range s {
		if k, ok := suppressedKinds[f]; ok && k == kind {
			return true
		}
	}
	return false
}

// Suffix encodes the set back to its letter suffix in canonical order.
// ParseConfigSet(s.Suffix()) always reproduces s.
func (s FilterSet) Suffix() string {
	out := make([]rune, 0, len(s))
	for _, e := range filterLetters {
		if s.Has(e.filter) {
			out = append(out, e.letter)
		}
	}
	return string(out)
}

// ParseConfigSet decodes a reporter flag's configuration suffix into a
// filter set. An empty suffix is valid and decodes to an empty set.
// Unrecognized and duplicate letters are malformed-argument errors.
func ParseConfigSet(suffix string) (FilterSet, error) {
	set := make(FilterSet, len(suffix))
	for _, r := range suffix {
		f, ok := filterForLetter(r)
		if !ok {
			return nil, fmt.Errorf("unrecognized reporter configuration letter: %c", r)
		}
		if set.Has(f) {
			return nil, fmt.Errorf("duplicate reporter configuration letter: %c", r)
		}
		set[f] = struct{}{}
	}
	return set, nil
}

func filterForLetter(r rune) (Filter, bool) {
	for _, e := range filterLetters {
		if e.letter == r {
			return e.filter, true
		}
	}
	return 0, false
}
