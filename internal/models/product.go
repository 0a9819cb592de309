package models

import (
	"errors"
	"fmt"
)

// Product is an item listed on the demo store inventory page
type Product struct {
	ID          string
	Name        string
	Description string
	// PriceCents is the price in cents
	PriceCents int64
}

// ErrInvalidPrice is returned for non-positive prices
var ErrInvalidPrice = errors.New("product price must be positive")

// NewProduct creates a product with validation
func NewProduct(id, name, description string, priceCents int64) (Product, error) {
	if id == "" {
		return Product{}, errors.New("product id cannot be empty")
	}
	if name == "" {
		return Product{}, errors.New("product name cannot be empty")
	}
	if priceCents <= 0 {
		return Product{}, ErrInvalidPrice
	}
	return Product{ID: id, Name: name, Description: description, PriceCents: priceCents}, nil
}

// FormattedPrice returns the price as the store renders it, e.g. "$29.99"
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("$%d.%02d", p.PriceCents/100, p.PriceCents%100)
}
