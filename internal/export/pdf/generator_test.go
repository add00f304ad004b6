package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/quotation"
	"taller/pkg/format"
)

func testGenerator() *Generator {
	return NewGenerator(format.New(format.DefaultConfig()), "Taller El Buen Freno")
}

func TestGenerateQuotationPDF(t *testing.T) {
	q := quotation.NewQuotation(id.New())
	q.Number = "COT-2025-00001"
	q.TaxRate = types.MustMoney("12")
	q.AddLine(billing.LineItem{
		ItemType:    billing.ItemTypeService,
		Description: "Cambio de aceite",
		Quantity:    types.MustMoney("1"),
		UnitPrice:   types.MustMoney("150"),
	})
	q.AddLine(billing.LineItem{
		ItemType:    billing.ItemTypePart,
		Description: "Filtro de aceite",
		Quantity:    types.MustMoney("2"),
		UnitPrice:   types.MustMoney("75.50"),
	})

	data, err := testGenerator().Quotation(q, "Juan Pérez")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateInvoicePDF(t *testing.T) {
	inv := invoice.NewInvoice(id.New())
	inv.Number = "FAC-2025-00042"
	inv.PaymentMethod = "Efectivo"
	inv.AddLine(billing.LineItem{
		ItemType:    billing.ItemTypeService,
		Description: "Alineación y balanceo",
		Quantity:    types.MustMoney("1"),
		UnitPrice:   types.MustMoney("250"),
	})

	data, err := testGenerator().Invoice(inv, "María García")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateQuotationPDFNoLines(t *testing.T) {
	q := quotation.NewQuotation(id.New())
	q.Number = "COT-2025-00002"

	data, err := testGenerator().Quotation(q, "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
