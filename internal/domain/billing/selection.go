package billing

import (
	"taller/internal/core/id"
	"taller/internal/core/types"
)

// CatalogEntry is the projection of a priced catalog record (workshop
// service or spare part) used when building line items.
type CatalogEntry struct {
	ID          id.ID
	Description string
	UnitPrice   types.Money
}

// CatalogIndex resolves catalog entries by ID. The zero value is usable
// and resolves nothing.
type CatalogIndex struct {
	entries map[id.ID]CatalogEntry
}

// NewCatalogIndex builds an index over the given entries.
func NewCatalogIndex(entries []CatalogEntry) CatalogIndex {
	m := make(map[id.ID]CatalogEntry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return CatalogIndex{entries: m}
}

// Lookup returns the entry for itemID and whether it was found.
func (c CatalogIndex) Lookup(itemID id.ID) (CatalogEntry, bool) {
	e, ok := c.entries[itemID]
	return e, ok
}

// BuildLine constructs a line item from a catalog reference.
// A missing catalog entry is not an error: the line falls back to an empty
// description and zero unit price, so a stale reference never blocks entry.
func BuildLine(index CatalogIndex, itemType ItemType, itemID id.ID, quantity types.Money) LineItem {
	line := LineItem{
		ItemType: itemType,
		ItemID:   &itemID,
		Quantity: quantity,
	}
	if entry, ok := index.Lookup(itemID); ok {
		line.Description = entry.Description
		line.UnitPrice = entry.UnitPrice
	} else {
		line.Description = ""
		line.UnitPrice = types.Zero()
	}
	return line
}
