// Package scenario runs independent browser scenarios: each one gets a fresh
// page, starts on the login page and releases the page however it ends.
package scenario

import (
	"fmt"
	"regexp"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
	"github.com/Khaerul-jpg/Automation-Testing/internal/pages"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Scenario is one self-contained test case
type Scenario struct {
	Name    string
	Feature string
	// Run performs the actions and assertions. The login page is already loaded.
	Run func(c *Context) error
}

// ID identifies the scenario as "Feature/Name"
func (s Scenario) ID() string {
	if s.Feature == "" {
		return s.Name
	}
	return s.Feature + "/" + s.Name
}

// Context is what a scenario works with. It is never shared between scenarios.
type Context struct {
	Page      driver.Page
	Fixtures  *testdata.Fixtures
	Login     *pages.LoginPage
	Inventory *pages.InventoryPage
}

// NewContext binds the page objects to page
func NewContext(page driver.Page, fixtures *testdata.Fixtures, timeouts pages.Timeouts) *Context {
	return &Context{
		Page:      page,
		Fixtures:  fixtures,
		Login:     pages.NewLoginPage(page, fixtures.URLs(), timeouts),
		Inventory: pages.NewInventoryPage(page, timeouts),
	}
}

// Setup loads the login page
func (c *Context) Setup() error {
	if err := c.Login.Navigate(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	return nil
}

// Filter keeps the scenarios whose ID matches pattern. An empty pattern keeps all.
func Filter(scenarios []Scenario, pattern string) ([]Scenario, error) {
	if pattern == "" {
		return scenarios, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}

	var kept []Scenario
	for _, s := range scenarios {
		if re.MatchString(s.ID()) {
			kept = append(kept, s)
		}
	}
	return kept, nil
}
