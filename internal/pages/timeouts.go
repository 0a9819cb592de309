// Package pages holds the page objects for the SauceDemo store. Scenarios
// talk to these types and never to selectors.
package pages

import "time"

// Timeouts are the bounds of every wait a page object performs
type Timeouts struct {
	// Error bounds the wait for an error banner whose text is required
	Error time.Duration
	// Probe bounds non-failing visibility checks
	Probe time.Duration
	// URL bounds waits for a navigation to land
	URL time.Duration
	// Marker bounds the wait for post-navigation landmarks
	Marker time.Duration
}

// DefaultTimeouts returns the bounds used against the hosted store
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Error:  5 * time.Second,
		Probe:  2 * time.Second,
		URL:    5 * time.Second,
		Marker: 5 * time.Second,
	}
}
