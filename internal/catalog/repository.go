package catalog

import "context"

// Repository resolves products for a checkout. Implementations return the
// catalog fully materialized; the pricing core performs no I/O itself.
type Repository interface {
	// All returns every product in catalog order.
	All(ctx context.Context) ([]Product, error)
	// FindByName resolves a single product case-insensitively.
	FindByName(ctx context.Context, name string) (Product, error)
}
