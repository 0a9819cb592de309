package services

import (
	"sort"

	"github.com/Khaerul-jpg/Automation-Testing/internal/models"
)

// Password shared by every demo store account
const storePassword = "secret_sauce"

// Login banner texts rendered by the demo store
const (
	MsgUsernameRequired = "Epic sadface: Username is required"
	MsgPasswordRequired = "Epic sadface: Password is required"
	MsgLockedOut        = "Epic sadface: Sorry, this user has been locked out."
	MsgNoMatch          = "Epic sadface: Username and password do not match any user in this service"

	MsgInventoryRequiresLogin = "Epic sadface: You can only access '/inventory.html' when you are logged in."
)

// LoginError is a failed login attempt; Message is shown in the error banner
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}

// SortOrder is the value of the inventory sort control
type SortOrder string

// Sort orders, DefaultSort is applied to unknown values
const (
	SortNameAsc   SortOrder = "az"
	SortNameDesc  SortOrder = "za"
	SortPriceAsc  SortOrder = "lohi"
	SortPriceDesc SortOrder = "hilo"
	DefaultSort             = SortNameAsc
)

var sortLabels = map[SortOrder]string{
	SortNameAsc:   "Name (A to Z)",
	SortNameDesc:  "Name (Z to A)",
	SortPriceAsc:  "Price (low to high)",
	SortPriceDesc: "Price (high to low)",
}

// SortOrders lists orders as the select control renders them
func SortOrders() []SortOrder {
	return []SortOrder{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}
}

// Label returns the control text for the order
func (s SortOrder) Label() string {
	return sortLabels[s]
}

// ParseSortOrder returns DefaultSort for unknown values
func ParseSortOrder(value string) SortOrder {
	if _, ok := sortLabels[SortOrder(value)]; ok {
		return SortOrder(value)
	}
	return DefaultSort
}

// StoreService implements the demo store behaviour the harness drives
type StoreService interface {
	Authenticate(username, password string) error
	Products(order SortOrder) []models.Product
	Product(id string) (models.Product, bool)
}

// StoreServiceImpl implements StoreService over a fixed catalog
type StoreServiceImpl struct {
	accounts map[string]bool // username -> locked
	catalog  []models.Product
}

// NewStoreService creates the demo store with its standard accounts and catalog
func NewStoreService() StoreService {
	return &StoreServiceImpl{
		accounts: map[string]bool{
			"standard_user":           false,
			"locked_out_user":         true,
			"problem_user":            false,
			"performance_glitch_user": false,
			"error_user":              false,
			"visual_user":             false,
		},
		catalog: defaultCatalog(),
	}
}

func defaultCatalog() []models.Product {
	return []models.Product{
		{ID: "sauce-labs-backpack", Name: "Sauce Labs Backpack", Description: "carry.allTheThings() with the sleek, streamlined Sly Pack.", PriceCents: 2999},
		{ID: "sauce-labs-bike-light", Name: "Sauce Labs Bike Light", Description: "A red light isn't the desired state in testing but it sure helps when riding your bike at night.", PriceCents: 999},
		{ID: "sauce-labs-bolt-t-shirt", Name: "Sauce Labs Bolt T-Shirt", Description: "Get your testing superhero on with the Sauce Labs bolt T-shirt.", PriceCents: 1599},
		{ID: "sauce-labs-fleece-jacket", Name: "Sauce Labs Fleece Jacket", Description: "It's not every day that you come across a midweight quarter-zip fleece jacket.", PriceCents: 4999},
		{ID: "sauce-labs-onesie", Name: "Sauce Labs Onesie", Description: "Rib snap infant onesie for the junior automation engineer in development.", PriceCents: 799},
		{ID: "test.allthethings()-t-shirt-(red)", Name: "Test.allTheThings() T-Shirt (Red)", Description: "This classic Sauce Labs t-shirt is perfect to wear when cozying up to your keyboard.", PriceCents: 1599},
	}
}

// Authenticate checks a login attempt in the order the store validates it:
// required fields first, then the credentials, then the lock flag.
func (s *StoreServiceImpl) Authenticate(username, password string) error {
	if username == "" {
		return &LoginError{Message: MsgUsernameRequired}
	}
	if password == "" {
		return &LoginError{Message: MsgPasswordRequired}
	}

	locked, known := s.accounts[username]
	if !known || password != storePassword {
		return &LoginError{Message: MsgNoMatch}
	}
	if locked {
		return &LoginError{Message: MsgLockedOut}
	}
	return nil
}

// Products returns a copy of the catalog in the requested order. Products
// with equal prices keep name order.
func (s *StoreServiceImpl) Products(order SortOrder) []models.Product {
	products := make([]models.Product, len(s.catalog))
	copy(products, s.catalog)

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	switch order {
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	}
	return products
}

// Product looks a catalog entry up by id
func (s *StoreServiceImpl) Product(id string) (models.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
