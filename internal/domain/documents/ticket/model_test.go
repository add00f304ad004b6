package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

func ticketLine(itemType billing.ItemType, qty, price string) billing.LineItem {
	return billing.LineItem{
		ItemType:  itemType,
		Quantity:  types.MustMoney(qty),
		UnitPrice: types.MustMoney(price),
	}
}

func TestWorkTicketTotalsByType(t *testing.T) {
	wt := NewWorkTicket(id.New(), id.New(), "ruido en frenos")

	wt.AddLine(ticketLine(billing.ItemTypeService, "1", "250.00"))
	wt.AddLine(ticketLine(billing.ItemTypeService, "0.5", "300.00"))
	wt.AddLine(ticketLine(billing.ItemTypePart, "2", "85.25"))

	assert.True(t, wt.TotalServices.Equal(types.MustMoney("400.00")), "services %s", wt.TotalServices)
	assert.True(t, wt.TotalParts.Equal(types.MustMoney("170.50")), "parts %s", wt.TotalParts)
	assert.True(t, wt.TotalGeneral.Equal(types.MustMoney("570.50")), "general %s", wt.TotalGeneral)
}

func TestWorkTicketValidate(t *testing.T) {
	wt := NewWorkTicket(id.New(), id.New(), "no enciende")
	// A fresh ticket without lines is valid: diagnosis comes first.
	assert.NoError(t, wt.Validate(t.Context()))

	noProblem := NewWorkTicket(id.New(), id.New(), "")
	assert.Error(t, noProblem.Validate(t.Context()))

	noVehicle := NewWorkTicket(id.New(), id.Nil(), "fuga de aceite")
	assert.Error(t, noVehicle.Validate(t.Context()))

	badStatus := NewWorkTicket(id.New(), id.New(), "fuga de aceite")
	badStatus.Status = "pausado"
	assert.Error(t, badStatus.Validate(t.Context()))
}

func TestWorkTicketBillableLinesCopy(t *testing.T) {
	wt := NewWorkTicket(id.New(), id.New(), "cambio de aceite")
	wt.AddLine(ticketLine(billing.ItemTypeService, "1", "150.00"))

	lines := wt.BillableLines()
	lines[0].Description = "mutated"

	assert.NotEqual(t, "mutated", wt.Lines[0].Description)
}
