package offer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/money"
)

// Rule is one declarative offer entry from an offers.yaml file. Kind selects
// the variant; only the fields relevant to that variant are read.
type Rule struct {
	Kind          string `yaml:"kind"`
	Product       string `yaml:"product"`
	RequiredQty   int    `yaml:"requiredQty"`
	PayForQty     int    `yaml:"payForQty"`
	RewardProduct string `yaml:"rewardProduct"`
	RewardQty     int    `yaml:"rewardQty"`
	Threshold     string `yaml:"threshold"`
	Discount      string `yaml:"discount"`
}

// RulePack is the top-level document of an offers.yaml file.
type RulePack struct {
	Offers []Rule `yaml:"offers"`
}

// Rule kinds accepted in offers.yaml.
const (
	KindBuyXPayForY    = "buy_x_pay_for_y"
	KindBuyXGetYFree   = "buy_x_get_y_free"
	KindSpendThreshold = "spend_threshold"
)

// LoadRules reads a rule pack from a YAML file.
func LoadRules(path string) (RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RulePack{}, fmt.Errorf("read offers file: %w", err)
	}
	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return RulePack{}, fmt.Errorf("parse offers file: %w", err)
	}
	return pack, nil
}

// BuildSet materializes a rule pack into offers bound to the given cart and
// catalog. Rule validation errors surface with the rule index for context.
func BuildSet(pack RulePack, c *cart.Cart, products []catalog.Product) ([]Offer, error) {
	if c == nil {
		return nil, fmt.Errorf("offer set: cart is required")
	}
	if products == nil {
		return nil, fmt.Errorf("offer set: product catalog is required")
	}
	offers := make([]Offer, 0, len(pack.Offers))
	for i, rule := range pack.Offers {
		built, err := buildRule(rule, c, products)
		if err != nil {
			return nil, fmt.Errorf("offers[%d]: %w", i, err)
		}
		offers = append(offers, built)
	}
	return offers, nil
}

func buildRule(rule Rule, c *cart.Cart, products []catalog.Product) (Offer, error) {
	switch rule.Kind {
	case KindBuyXPayForY:
		return NewBuyXPayForY(rule.Product, rule.RequiredQty, rule.PayForQty)
	case KindBuyXGetYFree:
		return NewBuyXGetProductYFree(rule.Product, rule.RequiredQty, rule.RewardProduct, rule.RewardQty, c, products)
	case KindSpendThreshold:
		threshold, err := money.Parse(rule.Threshold)
		if err != nil {
			return nil, fmt.Errorf("threshold: %w", err)
		}
		discount, err := money.Parse(rule.Discount)
		if err != nil {
			return nil, fmt.Errorf("discount: %w", err)
		}
		return NewSpendThreshold(rule.Product, threshold, discount)
	default:
		return nil, fmt.Errorf("unknown offer kind %q", rule.Kind)
	}
}
