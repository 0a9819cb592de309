package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Inventory page selectors
const (
	pageTitle    = ".title"
	sortSelect   = `[data-test="product-sort-container"]`
	activeSort   = ".active_option"
	itemNames    = ".inventory_item_name"
	itemPrices   = ".inventory_item_price"
	cartBadge    = ".shopping_cart_badge"
	burgerMenu   = "#react-burger-menu-btn"
	logoutLink   = "#logout_sidebar_link"
	addToCartFmt = `[data-test="add-to-cart-%s"]`
)

// InventoryPage is the page object for the product listing shown after login
type InventoryPage struct {
	page     driver.Page
	timeouts Timeouts

	title  driver.Element
	sort   driver.Element
	active driver.Element
	names  driver.Element
	prices driver.Element
	badge  driver.Element
	menu   driver.Element
	logout driver.Element
	// the login form's submit button, shown once logged out
	loginForm driver.Element
}

// NewInventoryPage binds the inventory page elements of page
func NewInventoryPage(page driver.Page, timeouts Timeouts) *InventoryPage {
	return &InventoryPage{
		page:     page,
		timeouts: timeouts,
		title:    page.Locate(pageTitle),
		sort:     page.Locate(sortSelect),
		active:   page.Locate(activeSort),
		names:    page.Locate(itemNames),
		prices:   page.Locate(itemPrices),
		badge:    page.Locate(cartBadge),
		menu:     page.Locate(burgerMenu),
		logout:   page.Locate(logoutLink),

		loginForm: page.Locate(loginButton),
	}
}

// Title returns the page heading once it is visible
func (p *InventoryPage) Title() (string, error) {
	return driver.Require(driver.Visible("inventory title", p.title), p.timeouts.Marker, p.title.TextContent)
}

// SortBy selects opt in the sort control
func (p *InventoryPage) SortBy(opt testdata.SortOption) error {
	if err := p.sort.SelectOption(opt.Value()); err != nil {
		return fmt.Errorf("sort by %s: %w", opt, err)
	}
	return nil
}

// ActiveSortLabel returns the label the sort control currently shows
func (p *InventoryPage) ActiveSortLabel() (string, error) {
	return driver.Require(driver.Visible("active sort option", p.active), p.timeouts.Marker, p.active.TextContent)
}

// ProductNames returns the listed product names in page order
func (p *InventoryPage) ProductNames() ([]string, error) {
	names, err := p.names.AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("read product names: %w", err)
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names, nil
}

// ProductPrices returns the listed prices in page order
func (p *InventoryPage) ProductPrices() ([]decimal.Decimal, error) {
	texts, err := p.prices.AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("read product prices: %w", err)
	}

	prices := make([]decimal.Decimal, 0, len(texts))
	for _, text := range texts {
		price, err := ParsePrice(text)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, nil
}

// ParsePrice parses a rendered price such as "$29.99"
func ParsePrice(text string) (decimal.Decimal, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(text), "$")
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: %w", text, err)
	}
	return price, nil
}

// AddToCart clicks the add-to-cart button of the product
func (p *InventoryPage) AddToCart(id testdata.ProductID) error {
	button := p.page.Locate(fmt.Sprintf(addToCartFmt, id))
	if err := button.Click(); err != nil {
		return fmt.Errorf("add %s to cart: %w", id, err)
	}
	return nil
}

// CartCount returns the number on the cart badge, zero when there is none
func (p *InventoryPage) CartCount() (int, error) {
	n, err := p.badge.Count()
	if err != nil {
		return 0, fmt.Errorf("find cart badge: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	text, err := p.badge.TextContent()
	if err != nil {
		return 0, fmt.Errorf("read cart badge: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid cart badge %q: %w", text, err)
	}
	return count, nil
}

// Logout opens the side menu and follows its logout link
func (p *InventoryPage) Logout() error {
	if err := p.menu.Click(); err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	if err := driver.Visible("logout link", p.logout).Wait(p.timeouts.Marker); err != nil {
		return fmt.Errorf("logout link: %w", err)
	}
	if err := p.logout.Click(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := driver.Visible("login form", p.loginForm).Wait(p.timeouts.Marker); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
