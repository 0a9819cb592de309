package scenarios

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Khaerul-jpg/Automation-Testing/internal/scenario"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Inventory returns the inventory feature scenarios. Each logs in first.
func Inventory() []scenario.Scenario {
	scenarios := []scenario.Scenario{
		{Feature: InventoryFeature, Name: "lists the whole catalog", Run: loggedIn(listsCatalog)},
		{Feature: InventoryFeature, Name: "requires a login", Run: requiresLogin},
	}
	for _, opt := range testdata.SortOptions() {
		scenarios = append(scenarios, scenario.Scenario{
			Feature: InventoryFeature,
			Name:    "sorts by " + opt.Label(),
			Run:     loggedIn(sortsBy(opt)),
		})
	}
	return append(scenarios,
		scenario.Scenario{Feature: InventoryFeature, Name: "cart badge counts added products", Run: loggedIn(cartBadge)},
		scenario.Scenario{Feature: InventoryFeature, Name: "logout returns to the login page", Run: loggedIn(logout)},
	)
}

func loggedIn(run func(c *scenario.Context) error) func(c *scenario.Context) error {
	return func(c *scenario.Context) error {
		if err := c.Login.LoginAs(testdata.ValidUser); err != nil {
			return err
		}
		ok, err := c.Login.IsLoginSuccessful()
		if err := scenario.Holds(ok, err, true, "login as "+testdata.ValidUser.Username); err != nil {
			return err
		}
		return run(c)
	}
}

// Given I am logged in
// Then the heading reads "Products" and every catalog product is listed with its price
func listsCatalog(c *scenario.Context) error {
	title, err := c.Inventory.Title()
	if err != nil {
		return err
	}
	if err := scenario.Equal("Products", title, "inventory heading"); err != nil {
		return err
	}

	names, err := c.Inventory.ProductNames()
	if err != nil {
		return err
	}
	prices, err := c.Inventory.ProductPrices()
	if err != nil {
		return err
	}
	if err := scenario.Equal(len(names), len(prices), "one price per product"); err != nil {
		return err
	}
	if err := scenario.Equal(len(c.Fixtures.ProductNames()), len(names), "product count"); err != nil {
		return err
	}

	for i, name := range names {
		want, ok := c.Fixtures.Price(name)
		if !ok {
			return &scenario.AssertionFailure{Message: "unexpected product", Expected: c.Fixtures.ProductNames(), Actual: name}
		}
		if !want.Equal(prices[i]) {
			return &scenario.AssertionFailure{Message: "price of " + name, Expected: testdata.FormatPrice(want), Actual: testdata.FormatPrice(prices[i])}
		}
	}
	return nil
}

// Given I am logged out
// When I open the inventory directly
// Then I am sent back to the login page with an error
func requiresLogin(c *scenario.Context) error {
	if err := c.Page.Navigate(c.Fixtures.URLs().Inventory); err != nil {
		return err
	}
	if _, err := c.Login.ErrorMessage(); err != nil {
		return err
	}
	return scenario.True(c.Login.IsOnLoginPage(), "redirected to the login page")
}

// Given I am logged in
// When I pick a sort option
// Then the products follow that order and the control shows its label
func sortsBy(opt testdata.SortOption) func(c *scenario.Context) error {
	return func(c *scenario.Context) error {
		if err := c.Inventory.SortBy(opt); err != nil {
			return err
		}

		label, err := c.Inventory.ActiveSortLabel()
		if err != nil {
			return err
		}
		if err := scenario.Equal(opt.Label(), label, "active sort label"); err != nil {
			return err
		}

		names, err := c.Inventory.ProductNames()
		if err != nil {
			return err
		}
		if err := scenario.Equal(c.Fixtures.ExpectedOrder(opt), names, fmt.Sprintf("order for %s", opt)); err != nil {
			return err
		}

		prices, err := c.Inventory.ProductPrices()
		if err != nil {
			return err
		}
		return pricesFollow(opt, prices)
	}
}

func pricesFollow(opt testdata.SortOption, prices []decimal.Decimal) error {
	for i := 1; i < len(prices); i++ {
		prev, cur := prices[i-1], prices[i]
		switch {
		case opt == testdata.PriceAscending && cur.LessThan(prev),
			opt == testdata.PriceDescending && cur.GreaterThan(prev):
			return &scenario.AssertionFailure{
				Message:  fmt.Sprintf("prices out of order for %s at position %d", opt, i),
				Expected: testdata.FormatPrice(prev),
				Actual:   testdata.FormatPrice(cur),
			}
		}
	}
	return nil
}

// Given I am logged in
// When I add two products to the cart
// Then the badge shows 2
func cartBadge(c *scenario.Context) error {
	count, err := c.Inventory.CartCount()
	if err != nil {
		return err
	}
	if err := scenario.Equal(0, count, "badge before adding"); err != nil {
		return err
	}

	for _, id := range []testdata.ProductID{testdata.Backpack, testdata.BikeLight} {
		if err := c.Inventory.AddToCart(id); err != nil {
			return err
		}
	}

	count, err = c.Inventory.CartCount()
	if err != nil {
		return err
	}
	return scenario.Equal(2, count, "badge after adding two products")
}

// Given I am logged in
// When I log out from the side menu
// Then I am back on the login page
func logout(c *scenario.Context) error {
	if err := c.Inventory.Logout(); err != nil {
		return err
	}
	visible, err := c.Login.IsErrorVisible()
	if err := scenario.Holds(visible, err, false, "no error after logout"); err != nil {
		return err
	}
	return scenario.True(c.Login.IsOnLoginPage(), "on the login page after logout")
}
