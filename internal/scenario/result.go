package scenario

import "time"

// Result is the outcome of one scenario
type Result struct {
	ID       string
	Name     string
	Feature  string
	Err      error
	Duration time.Duration
}

// Failed reports whether the scenario failed
func (r Result) Failed() bool {
	return r.Err != nil
}

// Results is the outcome of a run, in scenario order
type Results struct {
	Tests    []Result
	Failures []Result
}

func newResults(all []Result) Results {
	results := Results{Tests: all}
	for _, r := range all {
		if r.Failed() {
			results.Failures = append(results.Failures, r)
		}
	}
	return results
}

// OK reports whether every scenario passed
func (r Results) OK() bool {
	return len(r.Failures) == 0
}
