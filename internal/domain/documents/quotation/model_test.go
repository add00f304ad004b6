package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

func serviceLine(qty, price string) billing.LineItem {
	return billing.LineItem{
		ItemType:  billing.ItemTypeService,
		Quantity:  types.MustMoney(qty),
		UnitPrice: types.MustMoney(price),
	}
}

func TestQuotationRecalculateTotals(t *testing.T) {
	q := NewQuotation(id.New())
	q.TaxRate = types.MustMoney("12")
	q.DiscountRate = types.MustMoney("10")

	q.AddLine(serviceLine("1", "150.00"))
	q.AddLine(serviceLine("2", "75.50"))

	assert.True(t, q.Subtotal.Equal(types.MustMoney("301.00")), "subtotal %s", q.Subtotal)
	assert.True(t, q.TaxAmount.Equal(types.MustMoney("36.12")), "tax %s", q.TaxAmount)
	assert.True(t, q.DiscountAmount.Equal(types.MustMoney("30.10")), "discount %s", q.DiscountAmount)
	assert.True(t, q.Total.Equal(types.MustMoney("307.02")), "total %s", q.Total)

	assert.Equal(t, 1, q.Lines[0].LineNo)
	assert.Equal(t, 2, q.Lines[1].LineNo)
}

func TestQuotationValidateRequiresLines(t *testing.T) {
	q := NewQuotation(id.New())
	assert.Error(t, q.Validate(t.Context()))

	q.AddLine(serviceLine("1", "10.00"))
	assert.NoError(t, q.Validate(t.Context()))
}

func TestQuotationValidateRequiresClient(t *testing.T) {
	q := NewQuotation(id.Nil())
	q.AddLine(serviceLine("1", "10.00"))
	assert.Error(t, q.Validate(t.Context()))
}

func TestQuotationValidateRejectsNegativeRates(t *testing.T) {
	q := NewQuotation(id.New())
	q.AddLine(serviceLine("1", "10.00"))

	q.TaxRate = types.MustMoney("-1")
	assert.Error(t, q.Validate(t.Context()))

	q.TaxRate = types.Zero()
	q.DiscountRate = types.MustMoney("-5")
	assert.Error(t, q.Validate(t.Context()))
}

func TestQuotationDiscountOverHundredAllowed(t *testing.T) {
	q := NewQuotation(id.New())
	q.DiscountRate = types.MustMoney("200")
	q.AddLine(serviceLine("1", "10.00"))

	assert.NoError(t, q.Validate(t.Context()))
	assert.True(t, q.Total.Equal(types.MustMoney("-10.00")), "total %s", q.Total)
}

func TestQuotationItemsReturnsCopy(t *testing.T) {
	q := NewQuotation(id.New())
	q.AddLine(serviceLine("1", "10.00"))

	items := q.Items()
	items[0].Description = "mutated"

	assert.NotEqual(t, "mutated", q.Lines[0].Description)
}
