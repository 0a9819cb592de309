// Package drivertest provides an in-memory driver.Page for unit tests.
package drivertest

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
)

// Page is a scripted driver.Page. Elements come into existence on first use
// and start detached; tests, or a simulated site, set their state. Waits never
// sleep: a condition that does not hold right away times out immediately.
type Page struct {
	url      string
	elements map[string]*Element

	// NavigateErr is returned by every Navigate call when set
	NavigateErr error
	// OnNavigate runs after the address changes
	OnNavigate func(url string)

	Navigations []string
	URLWaits    []time.Duration
	Screenshots []string
}

var (
	_ driver.Page          = (*Page)(nil)
	_ driver.Screenshotter = (*Page)(nil)
)

// NewPage returns a blank page at about:blank
func NewPage() *Page {
	return &Page{
		url:      "about:blank",
		elements: make(map[string]*Element),
	}
}

// Element returns the element for selector, creating it detached
func (p *Page) Element(selector string) *Element {
	el, ok := p.elements[selector]
	if !ok {
		el = &Element{Selector: selector}
		p.elements[selector] = el
	}
	return el
}

// SetURL changes the address without running OnNavigate
func (p *Page) SetURL(url string) {
	p.url = url
}

// Reset detaches every element while keeping handles already given out valid
func (p *Page) Reset() {
	for _, el := range p.elements {
		el.reset()
	}
}

func (p *Page) Navigate(url string) error {
	p.Navigations = append(p.Navigations, url)
	if p.NavigateErr != nil {
		return p.NavigateErr
	}
	p.url = url
	if p.OnNavigate != nil {
		p.OnNavigate(url)
	}
	return nil
}

func (p *Page) Locate(selector string) driver.Element {
	return p.Element(selector)
}

func (p *Page) URL() string {
	return p.url
}

func (p *Page) WaitForURL(pattern *regexp.Regexp, timeout time.Duration) error {
	p.URLWaits = append(p.URLWaits, timeout)
	if pattern.MatchString(p.url) {
		return nil
	}
	return fmt.Errorf("%w: url %s does not match %s after %s", driver.ErrTimeout, p.url, pattern, timeout)
}

func (p *Page) Screenshot(path string) error {
	p.Screenshots = append(p.Screenshots, path)
	return nil
}

// Element is a scripted driver.Element
type Element struct {
	Selector string
	Attached bool
	Visible  bool
	Text     string
	// Texts holds one entry per match for multi-element selectors
	Texts []string
	Value string

	// Err is returned by every operation when set
	Err      error
	OnClick  func()
	OnSelect func(value string)

	Clicks int
	Waits  []time.Duration
}

var _ driver.Element = (*Element)(nil)

// Show attaches the element visibly with text
func (e *Element) Show(text string) *Element {
	e.Attached = true
	e.Visible = true
	e.Text = text
	return e
}

// Detach removes the element from the page
func (e *Element) Detach() {
	e.Attached = false
	e.Visible = false
}

func (e *Element) reset() {
	e.Detach()
	e.Text = ""
	e.Texts = nil
	e.Value = ""
	e.OnClick = nil
	e.OnSelect = nil
}

func (e *Element) actionable(action string) error {
	if e.Err != nil {
		return e.Err
	}
	if !e.Attached || !e.Visible {
		return fmt.Errorf("%w: %s %s: element not visible", driver.ErrTimeout, action, e.Selector)
	}
	return nil
}

func (e *Element) Fill(text string) error {
	if err := e.actionable("fill"); err != nil {
		return err
	}
	e.Value = text
	return nil
}

func (e *Element) Click() error {
	if err := e.actionable("click"); err != nil {
		return err
	}
	e.Clicks++
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

func (e *Element) Clear() error {
	if err := e.actionable("clear"); err != nil {
		return err
	}
	e.Value = ""
	return nil
}

func (e *Element) WaitFor(state driver.WaitState, timeout time.Duration) error {
	e.Waits = append(e.Waits, timeout)
	if e.Err != nil {
		return e.Err
	}

	var ok bool
	switch state {
	case driver.StateAttached:
		ok = e.Attached
	case driver.StateDetached:
		ok = !e.Attached
	case driver.StateVisible:
		ok = e.Attached && e.Visible
	case driver.StateHidden:
		ok = !e.Attached || !e.Visible
	default:
		return fmt.Errorf("unknown wait state %q", state)
	}
	if !ok {
		return fmt.Errorf("%w: %s not %s after %s", driver.ErrTimeout, e.Selector, state, timeout)
	}
	return nil
}

func (e *Element) TextContent() (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	if !e.Attached {
		return "", fmt.Errorf("%w: text of %s: element not attached", driver.ErrTimeout, e.Selector)
	}
	if len(e.Texts) > 0 {
		return e.Texts[0], nil
	}
	return e.Text, nil
}

func (e *Element) IsVisible() (bool, error) {
	if e.Err != nil {
		return false, e.Err
	}
	return e.Attached && e.Visible, nil
}

func (e *Element) SelectOption(value string) error {
	if err := e.actionable("select"); err != nil {
		return err
	}
	e.Value = value
	if e.OnSelect != nil {
		e.OnSelect(value)
	}
	return nil
}

func (e *Element) AllTextContents() ([]string, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	if !e.Attached {
		return []string{}, nil
	}
	if e.Texts != nil {
		return append([]string(nil), e.Texts...), nil
	}
	return []string{e.Text}, nil
}

func (e *Element) Count() (int, error) {
	if e.Err != nil {
		return 0, e.Err
	}
	if !e.Attached {
		return 0, nil
	}
	if e.Texts != nil {
		return len(e.Texts), nil
	}
	return 1, nil
}
