package driver

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightPage adapts a playwright page to Page
type PlaywrightPage struct {
	page playwright.Page
}

var (
	_ Page          = (*PlaywrightPage)(nil)
	_ Screenshotter = (*PlaywrightPage)(nil)
)

// NewPlaywrightPage wraps page
func NewPlaywrightPage(page playwright.Page) *PlaywrightPage {
	return &PlaywrightPage{page: page}
}

func (p *PlaywrightPage) Navigate(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return translate(fmt.Errorf("navigate to %s: %w", url, err))
	}
	return nil
}

func (p *PlaywrightPage) Locate(selector string) Element {
	return &playwrightElement{locator: p.page.Locator(selector)}
}

func (p *PlaywrightPage) URL() string {
	return p.page.URL()
}

func (p *PlaywrightPage) WaitForURL(pattern *regexp.Regexp, timeout time.Duration) error {
	return translate(p.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: millis(timeout),
	}))
}

// Screenshot writes a full-page PNG to path
func (p *PlaywrightPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

type playwrightElement struct {
	locator playwright.Locator
}

func (e *playwrightElement) Fill(text string) error {
	return translate(e.locator.Fill(text))
}

func (e *playwrightElement) Click() error {
	return translate(e.locator.Click())
}

func (e *playwrightElement) Clear() error {
	return translate(e.locator.Clear())
}

func (e *playwrightElement) WaitFor(state WaitState, timeout time.Duration) error {
	pwState, err := toPlaywrightState(state)
	if err != nil {
		return err
	}
	return translate(e.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   pwState,
		Timeout: millis(timeout),
	}))
}

func (e *playwrightElement) TextContent() (string, error) {
	text, err := e.locator.TextContent()
	return text, translate(err)
}

func (e *playwrightElement) IsVisible() (bool, error) {
	visible, err := e.locator.IsVisible()
	return visible, translate(err)
}

func (e *playwrightElement) SelectOption(value string) error {
	values := []string{value}
	_, err := e.locator.SelectOption(playwright.SelectOptionValues{Values: &values})
	return translate(err)
}

func (e *playwrightElement) AllTextContents() ([]string, error) {
	texts, err := e.locator.AllTextContents()
	return texts, translate(err)
}

func (e *playwrightElement) Count() (int, error) {
	n, err := e.locator.Count()
	return n, translate(err)
}

func toPlaywrightState(state WaitState) (*playwright.WaitForSelectorState, error) {
	switch state {
	case StateAttached:
		return playwright.WaitForSelectorStateAttached, nil
	case StateDetached:
		return playwright.WaitForSelectorStateDetached, nil
	case StateVisible:
		return playwright.WaitForSelectorStateVisible, nil
	case StateHidden:
		return playwright.WaitForSelectorStateHidden, nil
	default:
		return nil, fmt.Errorf("unknown wait state %q", state)
	}
}

// translate marks playwright timeouts with ErrTimeout so callers only need
// to know about this package's sentinel.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}

func millis(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}
