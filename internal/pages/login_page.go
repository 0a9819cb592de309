package pages

import (
	"fmt"
	"regexp"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Login page selectors
const (
	usernameInput    = "#user-name"
	passwordInput    = "#password"
	loginButton      = "#login-button"
	errorBanner      = `[data-test="error"]`
	errorCloseButton = ".error-button"
	appLogo          = ".app_logo"
)

var inventoryURL = regexp.MustCompile(regexp.QuoteMeta(testdata.InventoryPath) + `$`)

// LoginPage is the page object for the store's login form
type LoginPage struct {
	page     driver.Page
	urls     testdata.URLs
	timeouts Timeouts

	username    driver.Element
	password    driver.Element
	submit      driver.Element
	errorBanner driver.Element
	errorClose  driver.Element
	logo        driver.Element
}

// NewLoginPage binds the login page elements of page
func NewLoginPage(page driver.Page, urls testdata.URLs, timeouts Timeouts) *LoginPage {
	return &LoginPage{
		page:        page,
		urls:        urls,
		timeouts:    timeouts,
		username:    page.Locate(usernameInput),
		password:    page.Locate(passwordInput),
		submit:      page.Locate(loginButton),
		errorBanner: page.Locate(errorBanner),
		errorClose:  page.Locate(errorCloseButton),
		logo:        page.Locate(appLogo),
	}
}

// Navigate loads the login page
func (p *LoginPage) Navigate() error {
	return p.page.Navigate(p.urls.Login)
}

// Login fills both fields, replacing their content, and submits. Empty
// values are submitted as they are.
func (p *LoginPage) Login(username, password string) error {
	if err := p.username.Fill(username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	if err := p.password.Fill(password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := p.submit.Click(); err != nil {
		return fmt.Errorf("submit login: %w", err)
	}
	return nil
}

// LoginAs submits cred
func (p *LoginPage) LoginAs(cred testdata.Credential) error {
	return p.Login(cred.Username, cred.Password)
}

// ErrorMessage waits for the error banner and returns its text. The banner
// is expected to exist, so a timeout is returned as an error.
func (p *LoginPage) ErrorMessage() (string, error) {
	return driver.Require(driver.Visible("login error", p.errorBanner), p.timeouts.Error, p.errorBanner.TextContent)
}

// IsErrorVisible reports whether the error banner shows up within the probe timeout
func (p *LoginPage) IsErrorVisible() (bool, error) {
	return driver.Probe(driver.Visible("login error", p.errorBanner), p.timeouts.Probe)
}

// IsLoginSuccessful reports whether the browser reached the inventory and
// rendered the app logo, each within its own bound.
func (p *LoginPage) IsLoginSuccessful() (bool, error) {
	ok, err := driver.Probe(driver.URLMatches(p.page, inventoryURL), p.timeouts.URL)
	if !ok || err != nil {
		return false, err
	}
	return driver.Probe(driver.Visible("app logo", p.logo), p.timeouts.Marker)
}

// IsOnLoginPage checks the current address without waiting
func (p *LoginPage) IsOnLoginPage() bool {
	return p.urls.IsLogin(p.page.URL())
}

// ClearInputs empties both fields without submitting
func (p *LoginPage) ClearInputs() error {
	if err := p.username.Clear(); err != nil {
		return fmt.Errorf("clear username: %w", err)
	}
	if err := p.password.Clear(); err != nil {
		return fmt.Errorf("clear password: %w", err)
	}
	return nil
}

// CloseErrorMessage dismisses the error banner if one is showing
func (p *LoginPage) CloseErrorMessage() error {
	visible, err := p.errorBanner.IsVisible()
	if err != nil {
		return fmt.Errorf("check login error: %w", err)
	}
	if !visible {
		return nil
	}
	if err := p.errorClose.Click(); err != nil {
		return fmt.Errorf("dismiss login error: %w", err)
	}
	return nil
}
