// Package pricing turns a cart and a set of promotional offers into a
// receipt with deterministic, additive discounts.
package pricing

import (
	"errors"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/money"
	"github.com/noah-isme/vegshop/internal/offer"
)

// Receipt accumulates line items and applied offers, recomputing totals on
// every mutation. The total never goes below zero regardless of how large
// the discount sum grows.
type Receipt struct {
	items         []cart.LineItem
	applied       []offer.Applied
	subtotal      money.Money
	totalDiscount money.Money
	total         money.Money
}

// NewReceipt returns an empty receipt.
func NewReceipt() *Receipt {
	return &Receipt{}
}

// AddLineItems appends line items and recomputes the subtotal. A receipt is
// never built with zero starting items.
func (r *Receipt) AddLineItems(items []cart.LineItem) error {
	if len(items) == 0 {
		return errors.New("receipt: line items are required")
	}
	r.items = append(r.items, items...)
	r.recomputeSubtotal()
	return nil
}

// ApplyOffers appends applied offers and recomputes the discount total and
// the final price. Callers skip this entirely when no offer matched, which
// keeps "no offers applied" distinguishable from "offers evaluated to zero".
func (r *Receipt) ApplyOffers(applied []offer.Applied) error {
	if len(applied) == 0 {
		return errors.New("receipt: applied offers are required")
	}
	r.applied = append(r.applied, applied...)
	r.recomputeTotals()
	return nil
}

// Items returns the receipt lines in the order they were added.
func (r *Receipt) Items() []cart.LineItem {
	out := make([]cart.LineItem, len(r.items))
	copy(out, r.items)
	return out
}

// AppliedOffers returns the discounts in application order.
func (r *Receipt) AppliedOffers() []offer.Applied {
	out := make([]offer.Applied, len(r.applied))
	copy(out, r.applied)
	return out
}

// HasOffers reports whether any offer was attached to this receipt.
func (r *Receipt) HasOffers() bool { return len(r.applied) > 0 }

// Subtotal is the sum of line totals.
func (r *Receipt) Subtotal() money.Money { return r.subtotal }

// TotalDiscount is the sum of applied offer discounts.
func (r *Receipt) TotalDiscount() money.Money { return r.totalDiscount }

// Total is the amount to pay: max(0, subtotal - total discount).
func (r *Receipt) Total() money.Money { return r.total }

func (r *Receipt) recomputeSubtotal() {
	var sum money.Money
	for _, item := range r.items {
		sum += item.Total()
	}
	r.subtotal = sum
	r.recomputeTotals()
}

func (r *Receipt) recomputeTotals() {
	var discount money.Money
	for _, a := range r.applied {
		discount += a.Discount
	}
	r.totalDiscount = discount
	total := r.subtotal - discount
	if total < 0 {
		total = 0
	}
	r.total = total
}
