package pricing

import (
	"errors"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/offer"
)

// Calculate evaluates every offer against every cart line and returns the
// resulting receipt. The cart is snapshotted once; neither the cart nor the
// offers are mutated. Zero-amount results are suppressed before attachment.
func Calculate(c *cart.Cart, offers []offer.Offer) (*Receipt, error) {
	if c == nil {
		return nil, errors.New("pricing: cart is required")
	}
	if offers == nil {
		return nil, errors.New("pricing: offers are required")
	}

	items := c.LineItems()
	receipt := NewReceipt()
	if err := receipt.AddLineItems(items); err != nil {
		return nil, err
	}

	var applied []offer.Applied
	for _, o := range offers {
		for _, item := range items {
			result := o.Evaluate(item)
			if result == nil || result.Discount <= 0 {
				continue
			}
			applied = append(applied, *result)
		}
	}

	if len(applied) > 0 {
		if err := receipt.ApplyOffers(applied); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}
