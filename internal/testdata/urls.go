package testdata

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the hosted SauceDemo store
const DefaultBaseURL = "https://www.saucedemo.com"

// Store paths
const (
	LoginIndexPath = "/index.html"
	InventoryPath  = "/inventory.html"
)

// URLs are the absolute page addresses of one store deployment
type URLs struct {
	Base       string
	Login      string
	LoginIndex string
	Inventory  string
}

// NewURLs derives page addresses from a base URL such as "http://localhost:8080"
func NewURLs(base string) (URLs, error) {
	u, err := url.Parse(base)
	if err != nil {
		return URLs{}, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return URLs{}, fmt.Errorf("invalid base URL %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return URLs{}, fmt.Errorf("invalid base URL %q: missing host", base)
	}

	base = strings.TrimRight(base, "/")
	return URLs{
		Base:       base,
		Login:      base + "/",
		LoginIndex: base + LoginIndexPath,
		Inventory:  base + InventoryPath,
	}, nil
}

// IsLogin reports whether raw is one of the two login page addresses
func (u URLs) IsLogin(raw string) bool {
	return raw == u.Login || raw == u.LoginIndex
}
