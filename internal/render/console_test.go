package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/offer"
	"github.com/noah-isme/vegshop/internal/pricing"
)

func testReceipt(t *testing.T, withOffer bool) *pricing.Receipt {
	t.Helper()
	aubergine, err := catalog.NewProduct("Aubergine", 100)
	require.NoError(t, err)

	r := pricing.NewReceipt()
	require.NoError(t, r.AddLineItems([]cart.LineItem{{Product: aubergine, Quantity: 3}}))
	if withOffer {
		require.NoError(t, r.ApplyOffers([]offer.Applied{
			{Description: "Aubergine: Buy 3 Pay for 2 (Applied 1x, 1 free)", Discount: 100},
		}))
	}
	return r
}

func TestFormatWithOffers(t *testing.T) {
	out := Console{CurrencySymbol: "€"}.Format(testReceipt(t, true))

	require.Contains(t, out, "VEGETABLE SHOP RECEIPT")
	require.Contains(t, out, "Aubergine")
	require.Contains(t, out, "€1.00 each")
	require.Contains(t, out, "SUBTOTAL:")
	require.Contains(t, out, "€3.00")
	require.Contains(t, out, "OFFERS APPLIED:")
	require.Contains(t, out, "Buy 3 Pay for 2")
	require.Contains(t, out, "Discount: -€1.00")
	require.Contains(t, out, "TOTAL SAVINGS:")
	require.Contains(t, out, "TOTAL TO PAY:")
	require.Contains(t, out, "€2.00")
}

func TestFormatWithoutOffers(t *testing.T) {
	out := Console{CurrencySymbol: "€"}.Format(testReceipt(t, false))

	require.Contains(t, out, "No offers applied.")
	require.NotContains(t, out, "OFFERS APPLIED:")
	require.Contains(t, out, "TOTAL TO PAY:")
	require.Contains(t, out, "€3.00")
}
