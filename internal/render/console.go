// Package render formats receipts for console display.
package render

import (
	"fmt"
	"strings"

	"github.com/noah-isme/vegshop/internal/money"
	"github.com/noah-isme/vegshop/internal/pricing"
)

const (
	separator     = "=========================================="
	lineSeparator = "------------------------------------------"
	receiptHeader = "          VEGETABLE SHOP RECEIPT          "
)

// Console renders receipts as fixed-width text.
type Console struct {
	// CurrencySymbol prefixes every amount, e.g. "€".
	CurrencySymbol string
}

func (c Console) amount(v money.Money) string {
	return c.CurrencySymbol + money.Format(v)
}

// Format renders the full receipt.
func (c Console) Format(receipt *pricing.Receipt) string {
	var sb strings.Builder

	sb.WriteString(separator + "\n")
	sb.WriteString(receiptHeader + "\n")
	sb.WriteString(separator + "\n\n")

	sb.WriteString("ITEMS PURCHASED:\n")
	sb.WriteString(lineSeparator + "\n")
	items := receipt.Items()
	if len(items) == 0 {
		sb.WriteString("No items purchased.\n")
	}
	for _, item := range items {
		fmt.Fprintf(&sb, "%-15s x%-5d %s each   %s\n",
			item.Product.Name(), item.Quantity, c.amount(item.Product.Price()), c.amount(item.Total()))
	}
	sb.WriteString(lineSeparator + "\n")
	fmt.Fprintf(&sb, "%-35s %s\n\n", "SUBTOTAL:", c.amount(receipt.Subtotal()))

	if applied := receipt.AppliedOffers(); len(applied) > 0 {
		sb.WriteString("OFFERS APPLIED:\n")
		sb.WriteString(lineSeparator + "\n")
		for _, a := range applied {
			fmt.Fprintf(&sb, "* %s\n", a.Description)
			fmt.Fprintf(&sb, "* Discount: -%s\n\n", c.amount(a.Discount))
		}
		sb.WriteString(lineSeparator + "\n")
		fmt.Fprintf(&sb, "%-35s %s\n\n", "TOTAL SAVINGS:", c.amount(receipt.TotalDiscount()))
	} else {
		sb.WriteString("No offers applied.\n\n")
	}

	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "%-35s %s\n", "TOTAL TO PAY:", c.amount(receipt.Total()))
	sb.WriteString(separator + "\n")

	return sb.String()
}
