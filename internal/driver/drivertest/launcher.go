package drivertest

import (
	"sync"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
)

// Launcher hands out simulated SauceDemo pages and counts releases
type Launcher struct {
	BaseURL string
	// Err is returned by NewPage when set
	Err error

	mu       sync.Mutex
	sites    []*Site
	released int
}

// NewLauncher returns a launcher simulating the store at baseURL
func NewLauncher(baseURL string) *Launcher {
	return &Launcher{BaseURL: baseURL}
}

func (l *Launcher) NewPage() (driver.Page, func(), error) {
	if l.Err != nil {
		return nil, nil, l.Err
	}

	site := NewSauceDemo(l.BaseURL)

	l.mu.Lock()
	l.sites = append(l.sites, site)
	l.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			l.released++
			l.mu.Unlock()
		})
	}
	return site.Page, release, nil
}

// Opened returns how many pages were handed out
func (l *Launcher) Opened() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sites)
}

// Released returns how many pages were released
func (l *Launcher) Released() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.released
}
