package offer

import (
	"errors"
	"fmt"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/money"
)

// BuyXPayForY gives free units of a single product: buy requiredQty, pay for
// payForQty (e.g. buy 3 pay for 2).
type BuyXPayForY struct {
	productName string
	requiredQty int
	payForQty   int
}

// NewBuyXPayForY validates the rule parameters. payForQty must be strictly
// less than requiredQty, otherwise the rule could never discount anything.
func NewBuyXPayForY(productName string, requiredQty, payForQty int) (*BuyXPayForY, error) {
	if productName == "" {
		return nil, errors.New("buy x pay for y: product name cannot be empty")
	}
	if requiredQty <= 0 {
		return nil, &cart.InvalidQuantityError{Product: productName, Quantity: requiredQty}
	}
	if payForQty <= 0 {
		return nil, &cart.InvalidQuantityError{Product: productName, Quantity: payForQty}
	}
	if payForQty >= requiredQty {
		return nil, fmt.Errorf("buy x pay for y: pay-for quantity %d must be less than required quantity %d", payForQty, requiredQty)
	}
	return &BuyXPayForY{productName: productName, requiredQty: requiredQty, payForQty: payForQty}, nil
}

// Evaluate applies the rule to a matching line item.
func (o *BuyXPayForY) Evaluate(item cart.LineItem) *Applied {
	if !item.Product.MatchesName(o.productName) {
		return nil
	}
	if item.Quantity < o.requiredQty {
		return nil
	}
	applications := item.Quantity / o.requiredQty
	freeUnits := applications * (o.requiredQty - o.payForQty)
	discount := money.Money(freeUnits) * item.Product.Price()
	if discount <= 0 {
		return nil
	}
	description := fmt.Sprintf("%s: Buy %d Pay for %d (Applied %dx, %d free)",
		o.productName, o.requiredQty, o.payForQty, applications, freeUnits)
	return &Applied{Description: description, Discount: discount}
}
