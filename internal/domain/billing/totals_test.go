package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taller/internal/core/types"
)

func line(qty, price string) LineItem {
	return LineItem{
		ItemType:  ItemTypeService,
		Quantity:  types.MustMoney(qty),
		UnitPrice: types.MustMoney(price),
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []LineItem
		taxRate      string
		discountRate string
		subtotal     string
		tax          string
		discount     string
		total        string
	}{
		{
			name:         "tax and discount on single line",
			lines:        []LineItem{line("1", "10.00")},
			taxRate:      "12",
			discountRate: "5",
			subtotal:     "10.00",
			tax:          "1.20",
			discount:     "0.50",
			total:        "10.70",
		},
		{
			name:         "discount above 100 percent goes negative",
			lines:        []LineItem{line("1", "10.00")},
			taxRate:      "0",
			discountRate: "200",
			subtotal:     "10.00",
			tax:          "0.00",
			discount:     "20.00",
			total:        "-10.00",
		},
		{
			name: "multiple lines with quantity",
			lines: []LineItem{
				line("1", "150.00"),
				line("2", "75.50"),
			},
			taxRate:      "12",
			discountRate: "10",
			subtotal:     "301.00",
			tax:          "36.12",
			discount:     "30.10",
			total:        "307.02",
		},
		{
			name:         "no lines",
			lines:        nil,
			taxRate:      "12",
			discountRate: "10",
			subtotal:     "0.00",
			tax:          "0.00",
			discount:     "0.00",
			total:        "0.00",
		},
		{
			name:         "zero rates",
			lines:        []LineItem{line("3", "33.33")},
			taxRate:      "0",
			discountRate: "0",
			subtotal:     "99.99",
			tax:          "0.00",
			discount:     "0.00",
			total:        "99.99",
		},
		{
			name:         "rounding happens on aggregates only",
			lines:        []LineItem{line("3", "0.333"), line("1", "0.005")},
			taxRate:      "0",
			discountRate: "0",
			// 0.999 + 0.005 = 1.004 accumulated unrounded, then rounded once
			subtotal: "1.00",
			tax:      "0.00",
			discount: "0.00",
			total:    "1.00",
		},
		{
			name:         "fractional quantity",
			lines:        []LineItem{line("1.5", "100.00")},
			taxRate:      "12",
			discountRate: "0",
			subtotal:     "150.00",
			tax:          "18.00",
			discount:     "0.00",
			total:        "168.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, types.MustMoney(tt.taxRate), types.MustMoney(tt.discountRate))

			assert.True(t, got.Subtotal.Equal(types.MustMoney(tt.subtotal)), "subtotal: got %s", got.Subtotal)
			assert.True(t, got.TaxAmount.Equal(types.MustMoney(tt.tax)), "tax: got %s", got.TaxAmount)
			assert.True(t, got.DiscountAmount.Equal(types.MustMoney(tt.discount)), "discount: got %s", got.DiscountAmount)
			assert.True(t, got.Total.Equal(types.MustMoney(tt.total)), "total: got %s", got.Total)
		})
	}
}

func TestLineItemSubtotalUnrounded(t *testing.T) {
	l := line("3", "0.333")
	assert.True(t, l.Subtotal().Equal(types.MustMoney("0.999")))
}

func TestLineItemValidate(t *testing.T) {
	ctx := t.Context()

	valid := line("1", "10.00")
	assert.NoError(t, valid.Validate(ctx))

	zeroQty := line("0", "10.00")
	assert.Error(t, zeroQty.Validate(ctx))

	negQty := line("-1", "10.00")
	assert.Error(t, negQty.Validate(ctx))

	negPrice := line("1", "-5.00")
	assert.Error(t, negPrice.Validate(ctx))

	badType := valid
	badType.ItemType = "materia"
	assert.Error(t, badType.Validate(ctx))
}
