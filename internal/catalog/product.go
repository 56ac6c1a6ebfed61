// Package catalog holds the product catalog: the immutable product entity
// and the CSV-backed repository the checkout flow reads it from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/vegshop/internal/money"
)

// ErrEmptyCatalog indicates the loaded catalog contains no products.
var ErrEmptyCatalog = errors.New("catalog contains no products")

// NotFoundError is returned when a product name has no match in the catalog.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %q", e.Name)
}

// InvalidPriceError is returned when a catalog row carries an unparseable or
// negative price. Raw preserves the offending input for the boundary to render.
type InvalidPriceError struct {
	Name string
	Raw  string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %q for product %q", e.Raw, e.Name)
}

// Product is an immutable catalog entry. Identity is the lower-cased name;
// price is not part of identity.
type Product struct {
	name  string
	price money.Money
}

// NewProduct validates and constructs a product. The name is trimmed and must
// be non-empty; the price must not be negative.
func NewProduct(name string, price money.Money) (Product, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Product{}, errors.New("product name cannot be empty")
	}
	if price < 0 {
		return Product{}, &InvalidPriceError{Name: trimmed, Raw: money.Format(price)}
	}
	return Product{name: trimmed, price: price}, nil
}

// Name returns the display name as loaded.
func (p Product) Name() string { return p.name }

// Price returns the unit price in minor units.
func (p Product) Price() money.Money { return p.price }

// Key returns the case-insensitive identity of the product.
func (p Product) Key() string { return strings.ToLower(p.name) }

// Equal reports whether both products name the same catalog entry,
// ignoring case and price.
func (p Product) Equal(other Product) bool { return p.Key() == other.Key() }

// MatchesName reports whether the given name refers to this product.
func (p Product) MatchesName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), p.name)
}

// FindByName resolves a name against a product list, case-insensitively.
func FindByName(products []Product, name string) (Product, bool) {
	for _, p := range products {
		if p.MatchesName(name) {
			return p, true
		}
	}
	return Product{}, false
}
