package drivertest

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// Site simulates the SauceDemo login and inventory pages on a Page
type Site struct {
	Page     *Page
	store    services.StoreService
	base     string
	cart     []string
	sortBy   services.SortOrder
	loggedIn bool
}

// NewSauceDemo returns a page that behaves like the store served at base
// once navigated to.
func NewSauceDemo(base string) *Site {
	s := &Site{
		Page:   NewPage(),
		store:  services.NewStoreService(),
		base:   strings.TrimRight(base, "/"),
		sortBy: services.DefaultSort,
	}
	s.Page.OnNavigate = s.route
	return s
}

// LoggedIn reports whether the simulated session is authenticated
func (s *Site) LoggedIn() bool {
	return s.loggedIn
}

func (s *Site) route(url string) {
	switch strings.TrimPrefix(url, s.base) {
	case "/", "", "/index.html":
		s.renderLogin(url, "")
	case "/inventory.html":
		if !s.loggedIn {
			s.renderLogin(s.base+"/", services.MsgInventoryRequiresLogin)
			return
		}
		s.renderInventory()
	default:
		s.Page.Reset()
	}
}

func (s *Site) renderLogin(url, banner string) {
	p := s.Page
	p.Reset()
	p.SetURL(url)

	p.Element("#user-name").Show("")
	p.Element("#password").Show("")
	p.Element("#login-button").Show("Login").OnClick = s.submit

	if banner != "" {
		s.showError(banner)
	}
}

func (s *Site) showError(banner string) {
	p := s.Page
	p.Element(`[data-test="error"]`).Show(banner)
	p.Element(".error-button").Show("").OnClick = func() {
		p.Element(`[data-test="error"]`).Detach()
		p.Element(".error-button").Detach()
	}
}

func (s *Site) submit() {
	p := s.Page
	err := s.store.Authenticate(p.Element("#user-name").Value, p.Element("#password").Value)

	var loginErr *services.LoginError
	if errors.As(err, &loginErr) {
		s.showError(loginErr.Message)
		return
	}

	s.loggedIn = true
	p.SetURL(s.base + "/inventory.html")
	s.renderInventory()
}

func (s *Site) renderInventory() {
	p := s.Page
	p.Reset()
	p.SetURL(s.base + "/inventory.html")

	p.Element(".app_logo").Show("Swag Labs")
	p.Element(".title").Show("Products")
	p.Element("#react-burger-menu-btn").Show("Open Menu").OnClick = func() {
		p.Element("#logout_sidebar_link").Show("Logout").OnClick = s.logout
	}

	sortSelect := p.Element(`[data-test="product-sort-container"]`).Show("")
	sortSelect.Value = string(s.sortBy)
	sortSelect.OnSelect = func(value string) {
		s.sortBy = services.ParseSortOrder(value)
		s.renderInventory()
	}
	p.Element(".active_option").Show(s.sortBy.Label())

	products := s.store.Products(s.sortBy)
	names := make([]string, 0, len(products))
	prices := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
		prices = append(prices, product.FormattedPrice())

		id := product.ID
		if s.inCart(id) {
			p.Element(`[data-test="remove-` + id + `"]`).Show("Remove")
			continue
		}
		p.Element(`[data-test="add-to-cart-` + id + `"]`).Show("Add to cart").OnClick = func() {
			s.cart = append(s.cart, id)
			s.renderInventory()
		}
	}
	p.Element(".inventory_item_name").Show("").Texts = names
	p.Element(".inventory_item_price").Show("").Texts = prices

	if len(s.cart) > 0 {
		p.Element(".shopping_cart_badge").Show(strconv.Itoa(len(s.cart)))
	}
}

func (s *Site) inCart(id string) bool {
	for _, c := range s.cart {
		if c == id {
			return true
		}
	}
	return false
}

func (s *Site) logout() {
	s.loggedIn = false
	s.cart = nil
	s.sortBy = services.DefaultSort
	s.renderLogin(s.base+"/", "")
}
