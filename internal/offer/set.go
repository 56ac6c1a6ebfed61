package offer

import (
	"errors"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
)

// DefaultSet returns the active promotional rules for a checkout. The order
// of the slice determines the order of applied offers on the receipt; the
// monetary outcome is order-independent since all rules stack additively.
func DefaultSet(c *cart.Cart, products []catalog.Product) ([]Offer, error) {
	if c == nil {
		return nil, errors.New("offer set: cart is required")
	}
	if products == nil {
		return nil, errors.New("offer set: product catalog is required")
	}

	// Buy 3 Aubergines, pay for 2.
	threeForTwo, err := NewBuyXPayForY("Aubergine", 3, 2)
	if err != nil {
		return nil, err
	}
	// A free Aubergine for every 2 Tomatoes.
	freeAubergine, err := NewBuyXGetProductYFree("Tomato", 2, "Aubergine", 1, c, products)
	if err != nil {
		return nil, err
	}
	// 1.00 off for every 4.00 spent on Tomatoes.
	tomatoBand, err := NewSpendThreshold("Tomato", 400, 100)
	if err != nil {
		return nil, err
	}

	return []Offer{threeForTwo, freeAubergine, tomatoBand}, nil
}
