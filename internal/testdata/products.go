package testdata

import (
	"github.com/shopspring/decimal"
)

// ProductID is the slug SauceDemo uses in data-test attributes
type ProductID string

// Inventory products
const (
	Backpack     ProductID = "sauce-labs-backpack"
	BikeLight    ProductID = "sauce-labs-bike-light"
	BoltTShirt   ProductID = "sauce-labs-bolt-t-shirt"
	FleeceJacket ProductID = "sauce-labs-fleece-jacket"
	Onesie       ProductID = "sauce-labs-onesie"
	RedTShirt    ProductID = "test.allthethings()-t-shirt-(red)"
)

var productNames = map[ProductID]string{
	Backpack:     "Sauce Labs Backpack",
	BikeLight:    "Sauce Labs Bike Light",
	BoltTShirt:   "Sauce Labs Bolt T-Shirt",
	FleeceJacket: "Sauce Labs Fleece Jacket",
	Onesie:       "Sauce Labs Onesie",
	RedTShirt:    "Test.allTheThings() T-Shirt (Red)",
}

// productPrices is keyed by display name, every key must come from productNames
var productPrices = map[string]decimal.Decimal{
	productNames[Backpack]:     decimal.RequireFromString("29.99"),
	productNames[BikeLight]:    decimal.RequireFromString("9.99"),
	productNames[BoltTShirt]:   decimal.RequireFromString("15.99"),
	productNames[FleeceJacket]: decimal.RequireFromString("49.99"),
	productNames[Onesie]:       decimal.RequireFromString("7.99"),
	productNames[RedTShirt]:    decimal.RequireFromString("15.99"),
}

// ProductIDs lists the catalog in the order the store renders it by default
func ProductIDs() []ProductID {
	return []ProductID{Backpack, BikeLight, BoltTShirt, FleeceJacket, Onesie, RedTShirt}
}

// Name returns the display name of the product
func (id ProductID) Name() string {
	return productNames[id]
}

// FormatPrice renders a price the way the store does, e.g. "$29.99"
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}
