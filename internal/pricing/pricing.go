// Package pricing holds the authoritative cart/checkout money math. All
// amounts are whole currency units (the catalog carries no fractional cents).
// Every function is pure so totals can be rederived from line items alone and
// verified against anything a client submits.
package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// VATRate is the fixed value-added tax rate applied to the subtotal.
	VATRate = 0.20
	// FlatShippingCost is charged on every order regardless of weight or
	// destination.
	FlatShippingCost = 50
)

var vatRate = decimal.NewFromFloat(VATRate)

// Line is the minimal view of a cart or order line the engine needs.
type Line struct {
	Price    int
	Quantity int
}

// Subtotal sums price*quantity over all lines. An empty slice yields 0.
func Subtotal(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += line.Price * line.Quantity
	}
	return total
}

// VAT returns the tax on a subtotal, rounded half-up so results are
// deterministic across platforms: VAT(55) == 11, VAT(3197) == 639.
func VAT(subtotal int) int {
	return int(decimal.NewFromInt(int64(subtotal)).Mul(vatRate).Round(0).IntPart())
}

// ShippingCost returns the flat shipping rate.
func ShippingCost() int {
	return FlatShippingCost
}

// GrandTotal combines the three components. Callers must pass values derived
// from the same line items; nothing here re-checks them.
func GrandTotal(subtotal, shipping, vat int) int {
	return subtotal + shipping + vat
}

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as a grouped dollar string ("$2,999") for
// presentation surfaces like the confirmation email. Never used in the
// computation path.
func FormatPrice(amount int) string {
	return pricePrinter.Sprintf("$%d", amount)
}
