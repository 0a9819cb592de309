// Package testdata holds the fixture values the SauceDemo scenarios assert
// against: credentials, error banners, the product catalog, sort options and
// page URLs. Everything here is read-only after start-up.
package testdata

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Fixtures bundles the fixture values for one store deployment. Build it once
// with New or Default and share the pointer; nothing mutates it afterwards.
type Fixtures struct {
	urls URLs
}

// New builds fixtures pointing at the store served from baseURL
func New(baseURL string) (*Fixtures, error) {
	urls, err := NewURLs(baseURL)
	if err != nil {
		return nil, err
	}
	f := &Fixtures{urls: urls}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Default builds fixtures for the hosted store
func Default() *Fixtures {
	f, err := New(DefaultBaseURL)
	if err != nil {
		panic(err)
	}
	return f
}

// URLs returns the page addresses
func (f *Fixtures) URLs() URLs {
	return f.urls
}

// Validate checks that derived catalogs stay consistent with their sources
func (f *Fixtures) Validate() error {
	return validateCatalog(productNames, productPrices)
}

func validateCatalog(names map[ProductID]string, prices map[string]decimal.Decimal) error {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for name, price := range prices {
		if !known[name] {
			return fmt.Errorf("priced product %q is missing from the name catalog", name)
		}
		if price.Exponent() < -2 {
			return fmt.Errorf("price of %q has more than two decimals: %s", name, price)
		}
	}
	for _, kind := range ErrorKinds() {
		if kind.Message() == "" {
			return fmt.Errorf("no message for %s", kind)
		}
	}
	return nil
}

// ProductNames returns the display names in default catalog order
func (f *Fixtures) ProductNames() []string {
	names := make([]string, 0, len(productNames))
	for _, id := range ProductIDs() {
		names = append(names, id.Name())
	}
	return names
}

// Price returns the price of the product with the given display name
func (f *Fixtures) Price(name string) (decimal.Decimal, bool) {
	p, ok := productPrices[name]
	return p, ok
}

// ExpectedOrder returns the display names in the order the inventory lists
// them under opt. Equal prices keep name order.
func (f *Fixtures) ExpectedOrder(opt SortOption) []string {
	names := f.ProductNames()
	sort.Strings(names)

	switch opt {
	case NameDescending:
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	case PriceAscending:
		sort.SliceStable(names, func(i, j int) bool {
			return productPrices[names[i]].LessThan(productPrices[names[j]])
		})
	case PriceDescending:
		sort.SliceStable(names, func(i, j int) bool {
			return productPrices[names[i]].GreaterThan(productPrices[names[j]])
		})
	}
	return names
}
