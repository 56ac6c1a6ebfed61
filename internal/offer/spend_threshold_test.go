package offer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vegshop/internal/cart"
)

func TestSpendThresholdSingleBand(t *testing.T) {
	rule, err := NewSpendThreshold("Tomato", 400, 100)
	require.NoError(t, err)
	tomato := mustProduct(t, "Tomato", 75)

	// 8 x 0.75 = 6.00 spend, one complete 4.00 band.
	applied := rule.Evaluate(cart.LineItem{Product: tomato, Quantity: 8})
	require.NotNil(t, applied)
	require.Equal(t, int64(100), applied.Discount)
	require.Contains(t, applied.Description, "Threshold reached 1x")
}

func TestSpendThresholdMultipleBands(t *testing.T) {
	rule, err := NewSpendThreshold("Tomato", 400, 100)
	require.NoError(t, err)
	tomato := mustProduct(t, "Tomato", 75)

	// 16 x 0.75 = 12.00 spend, three complete bands.
	applied := rule.Evaluate(cart.LineItem{Product: tomato, Quantity: 16})
	require.NotNil(t, applied)
	require.Equal(t, int64(300), applied.Discount)
	require.Contains(t, applied.Description, "Threshold reached 3x")
}

func TestSpendThresholdBelowThreshold(t *testing.T) {
	rule, err := NewSpendThreshold("Tomato", 400, 100)
	require.NoError(t, err)
	tomato := mustProduct(t, "Tomato", 75)

	// 4 x 0.75 = 3.00 spend, no band reached.
	require.Nil(t, rule.Evaluate(cart.LineItem{Product: tomato, Quantity: 4}))
}

func TestSpendThresholdComparesLineTotalNotUnitPrice(t *testing.T) {
	rule, err := NewSpendThreshold("Tomato", 400, 100)
	require.NoError(t, err)
	tomato := mustProduct(t, "Tomato", 50)

	// Unit price is far below the threshold; the line total still qualifies.
	applied := rule.Evaluate(cart.LineItem{Product: tomato, Quantity: 8})
	require.NotNil(t, applied)
	require.Equal(t, int64(100), applied.Discount)
}

func TestSpendThresholdIgnoresOtherProducts(t *testing.T) {
	rule, err := NewSpendThreshold("Tomato", 400, 100)
	require.NoError(t, err)
	aubergine := mustProduct(t, "Aubergine", 100)

	require.Nil(t, rule.Evaluate(cart.LineItem{Product: aubergine, Quantity: 10}))
}

func TestNewSpendThresholdValidation(t *testing.T) {
	_, err := NewSpendThreshold("", 400, 100)
	require.Error(t, err)

	_, err = NewSpendThreshold("Tomato", 0, 100)
	require.Error(t, err)

	_, err = NewSpendThreshold("Tomato", 400, 0)
	require.Error(t, err)

	_, err = NewSpendThreshold("Tomato", 400, 400)
	require.Error(t, err)

	_, err = NewSpendThreshold("Tomato", 400, 500)
	require.Error(t, err)
}
