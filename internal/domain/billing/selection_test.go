package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/id"
	"taller/internal/core/types"
)

func TestBuildLineFromCatalog(t *testing.T) {
	oilChange := CatalogEntry{
		ID:          id.New(),
		Description: "Cambio de aceite",
		UnitPrice:   types.MustMoney("150.00"),
	}
	index := NewCatalogIndex([]CatalogEntry{oilChange})

	got := BuildLine(index, ItemTypeService, oilChange.ID, types.MustMoney("2"))

	assert.Equal(t, "Cambio de aceite", got.Description)
	assert.True(t, got.UnitPrice.Equal(types.MustMoney("150.00")))
	require.NotNil(t, got.ItemID)
	assert.Equal(t, oilChange.ID, *got.ItemID)
	assert.True(t, got.Subtotal().Equal(types.MustMoney("300.00")))
}

func TestBuildLineMissingEntryFallsBack(t *testing.T) {
	index := NewCatalogIndex(nil)
	unknown := id.New()

	got := BuildLine(index, ItemTypePart, unknown, types.MustMoney("1"))

	assert.Equal(t, "", got.Description)
	assert.True(t, got.UnitPrice.IsZero())
	require.NotNil(t, got.ItemID)
	assert.Equal(t, unknown, *got.ItemID)
}

func TestCatalogIndexZeroValue(t *testing.T) {
	var index CatalogIndex

	_, ok := index.Lookup(id.New())
	assert.False(t, ok)
}
