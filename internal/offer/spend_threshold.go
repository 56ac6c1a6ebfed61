package offer

import (
	"errors"
	"fmt"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/money"
)

// SpendThreshold deducts a fixed amount for every complete threshold band of
// spend on one product (e.g. every 4.00 spent on tomatoes takes 1.00 off).
type SpendThreshold struct {
	productName string
	threshold   money.Money
	discountPer money.Money
}

// NewSpendThreshold validates the rule parameters. The per-band discount must
// be strictly less than the threshold so a band can never refund more than
// the spend that earned it.
func NewSpendThreshold(productName string, threshold, discountPer money.Money) (*SpendThreshold, error) {
	if productName == "" {
		return nil, errors.New("spend threshold: product name cannot be empty")
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("spend threshold: threshold must be positive, got %s", money.Format(threshold))
	}
	if discountPer <= 0 {
		return nil, fmt.Errorf("spend threshold: discount must be positive, got %s", money.Format(discountPer))
	}
	if discountPer >= threshold {
		return nil, fmt.Errorf("spend threshold: discount %s must be less than threshold %s",
			money.Format(discountPer), money.Format(threshold))
	}
	return &SpendThreshold{productName: productName, threshold: threshold, discountPer: discountPer}, nil
}

// Evaluate applies the rule to a matching line item based on its line total.
func (o *SpendThreshold) Evaluate(item cart.LineItem) *Applied {
	if !item.Product.MatchesName(o.productName) {
		return nil
	}
	lineTotal := item.Total()
	if lineTotal < o.threshold {
		return nil
	}
	bands := lineTotal / o.threshold
	discount := bands * o.discountPer
	if discount <= 0 {
		return nil
	}
	description := fmt.Sprintf("%s: Spend %s get %s off (Threshold reached %dx)",
		o.productName, money.Format(o.threshold), money.Format(o.discountPer), bands)
	return &Applied{Description: description, Discount: discount}
}
