// Package checkout orchestrates one purchase: resolving names against the
// catalog, building the cart, and pricing it with the active offers.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/offer"
	"github.com/noah-isme/vegshop/internal/pricing"
	"github.com/noah-isme/vegshop/internal/purchase"
)

// ErrEmptyPurchase indicates the purchase list contained no items.
var ErrEmptyPurchase = errors.New("purchase must contain at least one item")

// OfferSource builds the active offer list for a cart and catalog. The
// default is offer.DefaultSet; a rule-file backed source can be swapped in.
type OfferSource func(c *cart.Cart, products []catalog.Product) ([]offer.Offer, error)

// Service processes purchases into receipts.
type Service struct {
	Catalog catalog.Repository
	Offers  OfferSource
}

// NewService wires a checkout service over a catalog repository.
func NewService(repo catalog.Repository, offers OfferSource) (*Service, error) {
	if repo == nil {
		return nil, errors.New("checkout: catalog repository is required")
	}
	if offers == nil {
		offers = offer.DefaultSet
	}
	return &Service{Catalog: repo, Offers: offers}, nil
}

// ProcessPurchase resolves the purchase list, builds the cart, and prices it.
// Every failure aborts the whole checkout; there is no partial receipt.
func (s *Service) ProcessPurchase(ctx context.Context, items []purchase.Item) (*pricing.Receipt, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPurchase
	}

	products, err := s.Catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	c := cart.New()
	for _, item := range items {
		product, ok := catalog.FindByName(products, item.Product)
		if !ok {
			return nil, &catalog.NotFoundError{Name: item.Product}
		}
		if err := c.AddProduct(product, item.Quantity); err != nil {
			return nil, err
		}
	}

	offers, err := s.Offers(c, products)
	if err != nil {
		return nil, fmt.Errorf("build offers: %w", err)
	}

	return pricing.Calculate(c, offers)
}
