// Package driver defines the browser capabilities page objects depend on,
// the wait primitives built on them, and the playwright implementation.
package driver

import (
	"errors"
	"regexp"
	"time"
)

// ErrTimeout is returned when a bounded wait gives up
var ErrTimeout = errors.New("timeout")

// WaitState is an element state a bounded wait can target
type WaitState string

// Element states
const (
	StateAttached WaitState = "attached"
	StateDetached WaitState = "detached"
	StateVisible  WaitState = "visible"
	StateHidden   WaitState = "hidden"
)

// Page is one open browser tab
type Page interface {
	// Navigate loads url and waits for the load event
	Navigate(url string) error
	// Locate returns a lazily resolved handle; nothing is queried until it is used
	Locate(selector string) Element
	// URL returns the current address without waiting
	URL() string
	// WaitForURL blocks until the address matches pattern or timeout elapses
	WaitForURL(pattern *regexp.Regexp, timeout time.Duration) error
}

// Element is a lazily resolved reference to the elements matching a selector
type Element interface {
	Fill(text string) error
	Click() error
	Clear() error
	WaitFor(state WaitState, timeout time.Duration) error
	TextContent() (string, error)
	IsVisible() (bool, error)
	SelectOption(value string) error
	AllTextContents() ([]string, error)
	Count() (int, error)
}

// Screenshotter is implemented by pages that can capture themselves
type Screenshotter interface {
	Screenshot(path string) error
}
