package driver

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Condition is a named bounded wait
type Condition struct {
	Name string
	Wait func(timeout time.Duration) error
}

// Visible waits for el to become visible
func Visible(name string, el Element) Condition {
	return Condition{
		Name: name + " visible",
		Wait: func(timeout time.Duration) error {
			return el.WaitFor(StateVisible, timeout)
		},
	}
}

// Hidden waits for el to become hidden or detached
func Hidden(name string, el Element) Condition {
	return Condition{
		Name: name + " hidden",
		Wait: func(timeout time.Duration) error {
			return el.WaitFor(StateHidden, timeout)
		},
	}
}

// URLMatches waits for the page address to match pattern
func URLMatches(page Page, pattern *regexp.Regexp) Condition {
	return Condition{
		Name: "url matching " + pattern.String(),
		Wait: func(timeout time.Duration) error {
			return page.WaitForURL(pattern, timeout)
		},
	}
}

// Probe reports whether cond holds within timeout. A timeout is an answer,
// not a failure: it yields false with a nil error. Any other error is returned.
func Probe(cond Condition, timeout time.Duration) (bool, error) {
	err := cond.Wait(timeout)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTimeout):
		return false, nil
	default:
		return false, fmt.Errorf("waiting for %s: %w", cond.Name, err)
	}
}

// Require waits for cond and then reads a value. Unlike Probe, a timeout is
// returned as an error wrapping ErrTimeout.
func Require[T any](cond Condition, timeout time.Duration, read func() (T, error)) (T, error) {
	var zero T
	if err := cond.Wait(timeout); err != nil {
		if errors.Is(err, ErrTimeout) {
			return zero, fmt.Errorf("%s not met within %s: %w", cond.Name, timeout, err)
		}
		return zero, fmt.Errorf("waiting for %s: %w", cond.Name, err)
	}
	return read()
}
