package testdata

import (
	"fmt"
	"strings"
)

// ErrorKind identifies a login failure the application reports inline
type ErrorKind int

// Login failure kinds
const (
	LockedUserError ErrorKind = iota
	InvalidCredentialsError
	MissingUsernameError
	MissingPasswordError
)

// errorMessages holds the substring each failure banner must contain.
// Comparisons are always "contains" so trailing punctuation may drift.
var errorMessages = map[ErrorKind]string{
	LockedUserError:         "Sorry, this user has been locked out.",
	InvalidCredentialsError: "Username and password do not match any user",
	MissingUsernameError:    "Username is required",
	MissingPasswordError:    "Password is required",
}

// Message returns the expected banner text for the kind
func (k ErrorKind) Message() string {
	return errorMessages[k]
}

// Matches reports whether the rendered banner text carries the kind's message
func (k ErrorKind) Matches(banner string) bool {
	msg := k.Message()
	return msg != "" && strings.Contains(banner, msg)
}

// String returns the symbolic name of the kind
func (k ErrorKind) String() string {
	switch k {
	case LockedUserError:
		return "LOCKED_USER"
	case InvalidCredentialsError:
		return "INVALID_CREDENTIALS"
	case MissingUsernameError:
		return "MISSING_USERNAME"
	case MissingPasswordError:
		return "MISSING_PASSWORD"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ErrorKinds lists every kind in declaration order
func ErrorKinds() []ErrorKind {
	return []ErrorKind{LockedUserError, InvalidCredentialsError, MissingUsernameError, MissingPasswordError}
}
