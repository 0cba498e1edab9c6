package specrun

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/specrun/specrun/runner"
)

// ResultFormatter is responsible for formatting and displaying run results.
type ResultFormatter interface {
	FormatResults(result *runner.Result) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
type ConsoleResultFormatter struct {
	logger log.Logger
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger log.Logger) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
	}
}

// FormatResults formats and displays the run results.
func (f *ConsoleResultFormatter) FormatResults(result *runner.Result) error {
	f.logger.Info("Printing results...")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Run Results (%s)", formatDuration(result.Duration)))

	t.AppendHeader(table.Row{
		"Suite", "Duration", "Tests", "Passed", "Failed", "Ignored", "Pending", "Status", "Error",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Ignored", Align: text.AlignRight},
		{Name: "Pending", Align: text.AlignRight},
		{Name: "Error", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
	})

	for _, suite := range result.Suites {
		errText := ""
		if suite.Err != nil {
			errText = suite.Err.Error()
		}
		t.AppendRow(table.Row{
			suite.Name,
			formatDuration(suite.Duration),
			suite.Stats.Total,
			suite.Stats.Passed,
			suite.Stats.Failed,
			suite.Stats.Ignored,
			suite.Stats.Pending,
			getResultString(suite.Status),
			errText,
		})
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		formatDuration(result.Duration),
		result.Stats.Total,
		result.Stats.Passed,
		result.Stats.Failed,
		result.Stats.Ignored,
		result.Stats.Pending,
		getResultString(result.Status),
		"",
	})

	t.Render()
	return nil
}

// formatDuration formats the duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// getResultString returns a colored string representation of a run status
func getResultString(status runner.RunStatus) string {
	switch status {
	case runner.StatusPass:
		return text.FgGreen.Sprint("pass")
	case runner.StatusFail:
		return text.FgRed.Sprint("fail")
	case runner.StatusAborted:
		return text.FgRed.Sprint("aborted")
	case runner.StatusStopped:
		return text.FgYellow.Sprint("stopped")
	default:
		return string(status)
	}
}
