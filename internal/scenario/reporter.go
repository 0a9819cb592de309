package scenario

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	errorColor    = color.New(color.FgYellow) //nolint:gochecknoglobals
	failedColor   = color.New(color.FgRed)    //nolint:gochecknoglobals
	passedColor   = color.New(color.FgGreen)  //nolint:gochecknoglobals
	durationColor = color.New(color.Faint)    //nolint:gochecknoglobals
)

// Reporter receives status information about each scenario. Calls may come
// from several goroutines.
type Reporter interface {
	ScenarioStarted(s Scenario)
	ScenarioFinished(r Result)
}

type nullReporter struct{}

func (nullReporter) ScenarioStarted(Scenario) {}
func (nullReporter) ScenarioFinished(Result)  {}

// ConsoleReporter prints one block per finished scenario
type ConsoleReporter struct {
	Out io.Writer

	mu sync.Mutex
}

// NewConsoleReporter returns a reporter writing to out
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out}
}

func (c *ConsoleReporter) ScenarioStarted(Scenario) {}

func (c *ConsoleReporter) ScenarioFinished(r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.Out, "[%s] ", r.ID)
	_, _ = durationColor.Fprintf(c.Out, "(%s)\n", r.Duration.Round(time.Millisecond))
	if !r.Failed() {
		return
	}
	for _, line := range strings.Split(r.Err.Error(), "\n") {
		_, _ = errorColor.Fprintf(c.Out, "  %s\n", line)
	}
	_, _ = failedColor.Fprintf(c.Out, "  FAILED: %s\n", r.ID)
}

// PrintResults writes the run summary
func PrintResults(out io.Writer, results Results) {
	if results.OK() {
		_, _ = passedColor.Fprintf(out, "All %d scenarios passed\n", len(results.Tests))
		return
	}
	_, _ = failedColor.Fprintf(out, "FAILED SCENARIOS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		_, _ = failedColor.Fprintf(out, "  * %s\n", f.ID)
	}
}

// MultiReporter fans events out to several reporters
type MultiReporter []Reporter

func (m MultiReporter) ScenarioStarted(s Scenario) {
	for _, r := range m {
		r.ScenarioStarted(s)
	}
}

func (m MultiReporter) ScenarioFinished(res Result) {
	for _, r := range m {
		r.ScenarioFinished(res)
	}
}
