// Package offer implements the promotional discount rules evaluated during
// pricing. Each rule inspects one cart line at a time and yields at most one
// discount; rules are additive and never mutate the cart.
package offer

import (
	"errors"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/money"
)

// Applied is the immutable result of a successful rule evaluation.
type Applied struct {
	Description string
	Discount    money.Money
}

// NewApplied validates and constructs an applied offer. A zero discount is a
// valid value here; the pricing engine suppresses zero-amount results before
// attaching them to a receipt.
func NewApplied(description string, discount money.Money) (Applied, error) {
	if description == "" {
		return Applied{}, errors.New("offer description cannot be empty")
	}
	if discount < 0 {
		return Applied{}, errors.New("offer discount cannot be negative")
	}
	return Applied{Description: description, Discount: discount}, nil
}

// Offer is a promotional rule. Evaluate returns nil when the rule does not
// apply to the given line item.
type Offer interface {
	Evaluate(item cart.LineItem) *Applied
}
