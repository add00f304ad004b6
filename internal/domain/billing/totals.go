package billing

import (
	"taller/internal/core/types"
)

// Totals holds the derived aggregate figures of a billable document.
// Subtotal accumulates unrounded line amounts; the remaining figures are
// rounded half-up to two decimals. The total is not clamped: a discount
// rate above 100% legitimately produces a negative total.
type Totals struct {
	Subtotal       types.Money `json:"subtotal"`
	TaxAmount      types.Money `json:"monto_impuestos"`
	DiscountAmount types.Money `json:"monto_descuentos"`
	Total          types.Money `json:"total"`
}

// ComputeTotals derives document totals from line items and percentage rates.
//
//	subtotal = sum(line.Quantity * line.UnitPrice)
//	tax      = round2(subtotal * taxRate / 100)
//	discount = round2(subtotal * discountRate / 100)
//	total    = round2(subtotal + tax - discount)
//
// An empty line slice yields all-zero totals.
func ComputeTotals(lines []LineItem, taxRate, discountRate types.Money) Totals {
	subtotal := types.Zero()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	tax := types.Round2(types.Percent(subtotal, taxRate))
	discount := types.Round2(types.Percent(subtotal, discountRate))

	return Totals{
		Subtotal:       types.Round2(subtotal),
		TaxAmount:      tax,
		DiscountAmount: discount,
		Total:          types.Round2(subtotal.Add(tax).Sub(discount)),
	}
}
