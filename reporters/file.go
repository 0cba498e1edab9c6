package reporters

import (
	"fmt"
	"os"

	"github.com/acarl005/stripansi"

	"github.com/specrun/specrun/events"
)

// FileReporter appends formatted events to a file. Output is always
// uncolored; any ANSI sequences that leak in through event messages are
// stripped so the file stays grep-friendly.
type FileReporter struct {
	file    *os.File
	filters FilterSet
}

// NewFileReporter creates the destination file, truncating any previous run.
func NewFileReporter(path string, filters FilterSet) (*FileReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reporter file %s: %w", path, err)
	}
	return &FileReporter{file: f, filters: filters}, nil
}

// Apply writes the event unless its kind is suppressed.
func (r *FileReporter) Apply(ev events.Event) {
	if r.filters.Suppresses(ev.Kind) {
		return
	}
	fmt.Fprintln(r.file, stripansi.Strip(formatEvent(ev, false)))
	if r.filters.Has(PresentStackTraces) && ev.StackTrace != "" {
		fmt.Fprintln(r.file, stripansi.Strip(ev.StackTrace))
	}
}

// Dispose closes the destination file.
func (r *FileReporter) Dispose() error {
	return r.file.Close()
}
