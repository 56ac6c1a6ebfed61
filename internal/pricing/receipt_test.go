package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/offer"
)

func mustProduct(t *testing.T, name string, price int64) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, price)
	require.NoError(t, err)
	return p
}

func TestReceiptSubtotal(t *testing.T) {
	r := NewReceipt()
	items := []cart.LineItem{
		{Product: mustProduct(t, "Tomato", 50), Quantity: 2},
		{Product: mustProduct(t, "Aubergine", 100), Quantity: 3},
	}
	require.NoError(t, r.AddLineItems(items))
	require.Equal(t, int64(400), r.Subtotal())
	require.Equal(t, int64(400), r.Total())
	require.False(t, r.HasOffers())
}

func TestReceiptApplyOffers(t *testing.T) {
	r := NewReceipt()
	items := []cart.LineItem{{Product: mustProduct(t, "Aubergine", 100), Quantity: 3}}
	require.NoError(t, r.AddLineItems(items))

	require.NoError(t, r.ApplyOffers([]offer.Applied{{Description: "3 for 2", Discount: 100}}))
	require.Equal(t, int64(300), r.Subtotal())
	require.Equal(t, int64(100), r.TotalDiscount())
	require.Equal(t, int64(200), r.Total())
	require.True(t, r.HasOffers())
}

func TestReceiptTotalNeverNegative(t *testing.T) {
	r := NewReceipt()
	items := []cart.LineItem{{Product: mustProduct(t, "Tomato", 50), Quantity: 1}}
	require.NoError(t, r.AddLineItems(items))

	require.NoError(t, r.ApplyOffers([]offer.Applied{{Description: "huge", Discount: 10_000}}))
	require.Equal(t, int64(10_000), r.TotalDiscount())
	require.Equal(t, int64(0), r.Total())
}

func TestReceiptRejectsEmptyCollections(t *testing.T) {
	r := NewReceipt()
	require.Error(t, r.AddLineItems(nil))
	require.Error(t, r.AddLineItems([]cart.LineItem{}))
	require.Error(t, r.ApplyOffers(nil))
	require.Error(t, r.ApplyOffers([]offer.Applied{}))
}

func TestReceiptAccessorsCopy(t *testing.T) {
	r := NewReceipt()
	require.NoError(t, r.AddLineItems([]cart.LineItem{{Product: mustProduct(t, "Tomato", 50), Quantity: 1}}))

	items := r.Items()
	items[0].Quantity = 99
	require.Equal(t, 1, r.Items()[0].Quantity)
}
