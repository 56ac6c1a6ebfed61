package offer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
)

func TestDefaultSet(t *testing.T) {
	c := cart.New()
	products := []catalog.Product{mustProduct(t, "Tomato", 50), mustProduct(t, "Aubergine", 100)}

	offers, err := DefaultSet(c, products)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	require.IsType(t, &BuyXPayForY{}, offers[0])
	require.IsType(t, &BuyXGetProductYFree{}, offers[1])
	require.IsType(t, &SpendThreshold{}, offers[2])
}

func TestDefaultSetRequiresCartAndProducts(t *testing.T) {
	products := []catalog.Product{mustProduct(t, "Tomato", 50)}

	_, err := DefaultSet(nil, products)
	require.Error(t, err)

	_, err = DefaultSet(cart.New(), nil)
	require.Error(t, err)
}

const offersYAML = `offers:
  - kind: buy_x_pay_for_y
    product: Aubergine
    requiredQty: 3
    payForQty: 2
  - kind: buy_x_get_y_free
    product: Tomato
    requiredQty: 2
    rewardProduct: Aubergine
    rewardQty: 1
  - kind: spend_threshold
    product: Tomato
    threshold: "4.00"
    discount: "1.00"
`

func TestLoadRulesAndBuildSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(offersYAML), 0o600))

	pack, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, pack.Offers, 3)

	c := cart.New()
	products := []catalog.Product{mustProduct(t, "Tomato", 50), mustProduct(t, "Aubergine", 100)}
	offers, err := BuildSet(pack, c, products)
	require.NoError(t, err)
	require.Len(t, offers, 3)
}

func TestBuildSetRejectsUnknownKind(t *testing.T) {
	pack := RulePack{Offers: []Rule{{Kind: "two_for_one"}}}
	c := cart.New()
	products := []catalog.Product{mustProduct(t, "Tomato", 50)}

	_, err := BuildSet(pack, c, products)
	require.ErrorContains(t, err, "unknown offer kind")
}

func TestBuildSetSurfacesRuleIndex(t *testing.T) {
	pack := RulePack{Offers: []Rule{
		{Kind: KindBuyXPayForY, Product: "Aubergine", RequiredQty: 3, PayForQty: 3},
	}}
	c := cart.New()
	products := []catalog.Product{mustProduct(t, "Aubergine", 100)}

	_, err := BuildSet(pack, c, products)
	require.ErrorContains(t, err, "offers[0]")
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
