package driver

import (
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

// LaunchOptions configures the shared browser process
type LaunchOptions struct {
	// Browser is "chromium", "firefox" or "webkit"
	Browser  string
	Headless bool
	SlowMo   time.Duration
	// Install downloads the driver and browser before starting
	Install bool
}

// Launcher owns one playwright process and one browser. Pages handed out by
// NewPage each live in their own browser context so they share no cookies.
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts playwright and the configured browser
func Launch(opts LaunchOptions) (*Launcher, error) {
	if opts.Browser == "" {
		opts.Browser = "chromium"
	}

	if opts.Install {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{opts.Browser}}); err != nil {
			return nil, fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	var browserType playwright.BrowserType
	switch opts.Browser {
	case "chromium":
		browserType = pw.Chromium
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		_ = pw.Stop()
		return nil, fmt.Errorf("unsupported browser %q", opts.Browser)
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", opts.Browser, err)
	}

	log.Printf("Launched %s (headless=%t)", opts.Browser, opts.Headless)
	return &Launcher{pw: pw, browser: browser}, nil
}

// NewPage opens a page in a fresh browser context. The returned release
// function closes both and is safe to call more than once.
func (l *Launcher) NewPage() (Page, func(), error) {
	ctx, err := l.browser.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("could not create context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, nil, fmt.Errorf("could not create page: %w", err)
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		if err := page.Close(); err != nil {
			log.Printf("Warning: failed to close page: %v", err)
		}
		if err := ctx.Close(); err != nil {
			log.Printf("Warning: failed to close browser context: %v", err)
		}
	}

	return NewPlaywrightPage(page), release, nil
}

// Close shuts the browser and the playwright driver down
func (l *Launcher) Close() error {
	if err := l.browser.Close(); err != nil {
		_ = l.pw.Stop()
		return fmt.Errorf("could not close browser: %w", err)
	}
	if err := l.pw.Stop(); err != nil {
		return fmt.Errorf("could not stop playwright: %w", err)
	}
	return nil
}
