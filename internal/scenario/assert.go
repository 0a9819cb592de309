package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
)

// AssertionFailure is an observed value that did not match the expected one
type AssertionFailure struct {
	Message  string
	Expected any
	Actual   any
}

func (f *AssertionFailure) Error() string {
	return fmt.Sprintf("%s\n  expected: %#v\n  actual:   %#v", f.Message, f.Expected, f.Actual)
}

// IsAssertionFailure reports whether err carries an AssertionFailure
func IsAssertionFailure(err error) bool {
	var failure *AssertionFailure
	return errors.As(err, &failure)
}

// Equal fails unless expected and actual are equal
func Equal(expected, actual any, msg string) error {
	if assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return &AssertionFailure{Message: msg, Expected: expected, Actual: actual}
}

// Contains fails unless s contains substr
func Contains(s, substr, msg string) error {
	if strings.Contains(s, substr) {
		return nil
	}
	return &AssertionFailure{Message: msg, Expected: "text containing " + fmt.Sprintf("%q", substr), Actual: s}
}

// True fails unless cond holds
func True(cond bool, msg string) error {
	return Equal(true, cond, msg)
}

// False fails if cond holds
func False(cond bool, msg string) error {
	return Equal(false, cond, msg)
}

// Holds turns the (bool, error) result of a probe into an assertion: the
// probe error wins, otherwise ok must equal want.
func Holds(ok bool, err error, want bool, msg string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return Equal(want, ok, msg)
}

// All returns the first failing check
func All(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
