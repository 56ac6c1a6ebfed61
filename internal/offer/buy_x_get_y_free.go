package offer

import (
	"errors"
	"fmt"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/money"
)

// BuyXGetProductYFree grants free units of a reward product when enough of a
// trigger product is purchased (e.g. buy 2 tomatoes, get 1 aubergine free).
// It holds read-only references to the cart and the catalog so it can inspect
// the trigger product's purchased quantity; it never mutates either.
type BuyXGetProductYFree struct {
	triggerName  string
	triggerQty   int
	rewardName   string
	rewardPerApp int
	cart         *cart.Cart
	products     []catalog.Product
}

// NewBuyXGetProductYFree validates the rule parameters and the borrowed
// cart/catalog references.
func NewBuyXGetProductYFree(triggerName string, triggerQty int, rewardName string, rewardPerApp int, c *cart.Cart, products []catalog.Product) (*BuyXGetProductYFree, error) {
	if triggerName == "" {
		return nil, errors.New("buy x get y free: trigger product name cannot be empty")
	}
	if rewardName == "" {
		return nil, errors.New("buy x get y free: reward product name cannot be empty")
	}
	if triggerQty <= 0 {
		return nil, &cart.InvalidQuantityError{Product: triggerName, Quantity: triggerQty}
	}
	if rewardPerApp <= 0 {
		return nil, &cart.InvalidQuantityError{Product: rewardName, Quantity: rewardPerApp}
	}
	if c == nil {
		return nil, errors.New("buy x get y free: cart is required")
	}
	if products == nil {
		return nil, errors.New("buy x get y free: product catalog is required")
	}
	return &BuyXGetProductYFree{
		triggerName:  triggerName,
		triggerQty:   triggerQty,
		rewardName:   rewardName,
		rewardPerApp: rewardPerApp,
		cart:         c,
		products:     products,
	}, nil
}

// Evaluate applies the rule to the reward product's line item. The discount
// is capped by the reward quantity actually purchased.
func (o *BuyXGetProductYFree) Evaluate(item cart.LineItem) *Applied {
	if !item.Product.MatchesName(o.rewardName) {
		return nil
	}
	trigger, ok := catalog.FindByName(o.products, o.triggerName)
	if !ok {
		return nil
	}
	triggerQty := o.cart.QuantityOf(trigger)
	if triggerQty < o.triggerQty {
		return nil
	}
	applications := triggerQty / o.triggerQty
	totalFree := applications * o.rewardPerApp
	discounted := totalFree
	if item.Quantity < discounted {
		discounted = item.Quantity
	}
	if discounted <= 0 {
		return nil
	}
	discount := money.Money(discounted) * item.Product.Price()
	description := fmt.Sprintf("%s: Free %s for buying %s (Buy %d %s, get %d %s free - %d free items)",
		o.rewardName, o.rewardName, o.triggerName,
		o.triggerQty, o.triggerName, o.rewardPerApp, o.rewardName, discounted)
	return &Applied{Description: description, Discount: discount}
}
