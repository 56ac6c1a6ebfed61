// Package cart implements the in-memory shopping cart for a single checkout.
package cart

import (
	"fmt"

	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/money"
)

// InvalidQuantityError is returned when a non-positive quantity is supplied
// for a product.
type InvalidQuantityError struct {
	Product  string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %q", e.Quantity, e.Product)
}

// LineItem is one product and its purchased quantity.
type LineItem struct {
	Product  catalog.Product
	Quantity int
}

// NewLineItem constructs a line item, rejecting non-positive quantities.
func NewLineItem(product catalog.Product, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, &InvalidQuantityError{Product: product.Name(), Quantity: quantity}
	}
	return LineItem{Product: product, Quantity: quantity}, nil
}

// Total returns the line total: unit price times quantity.
func (li LineItem) Total() money.Money {
	return li.Product.Price() * money.Money(li.Quantity)
}

// Cart maps products to positive quantities. Adding the same product again
// sums quantities. Keyed by the product's case-insensitive identity;
// insertion order is preserved for display.
type Cart struct {
	quantities map[string]int
	products   map[string]catalog.Product
	order      []string
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		quantities: make(map[string]int),
		products:   make(map[string]catalog.Product),
	}
}

// AddProduct merges the quantity into the cart. Quantity must be positive.
func (c *Cart) AddProduct(product catalog.Product, quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Product: product.Name(), Quantity: quantity}
	}
	key := product.Key()
	if _, ok := c.quantities[key]; !ok {
		c.products[key] = product
		c.order = append(c.order, key)
	}
	c.quantities[key] += quantity
	return nil
}

// QuantityOf returns the stored quantity for the product, or 0 when absent.
func (c *Cart) QuantityOf(product catalog.Product) int {
	return c.quantities[product.Key()]
}

// LineItems returns the cart contents in insertion order.
func (c *Cart) LineItems() []LineItem {
	items := make([]LineItem, 0, len(c.order))
	for _, key := range c.order {
		items = append(items, LineItem{Product: c.products[key], Quantity: c.quantities[key]})
	}
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int { return len(c.order) }

// Clear empties the cart.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.products = make(map[string]catalog.Product)
	c.order = nil
}
