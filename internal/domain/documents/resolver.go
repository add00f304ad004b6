// Package documents provides shared helpers for document services.
package documents

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
	"taller/internal/domain/catalogs/spare_part"
	"taller/internal/domain/catalogs/workshop_service"
)

// LineRequest is a catalog reference to be turned into a billing line.
type LineRequest struct {
	ItemType billing.ItemType
	ItemID   id.ID
	Quantity types.Money
}

// LineResolver builds billing lines from catalog references.
// Description and unit price are snapshotted from the catalog at build
// time; a reference to a missing catalog record falls back to an empty
// description and zero price instead of failing the document.
type LineResolver struct {
	services workshop_service.Repository
	parts    spare_part.Repository
}

// NewLineResolver creates a new LineResolver.
func NewLineResolver(services workshop_service.Repository, parts spare_part.Repository) *LineResolver {
	return &LineResolver{
		services: services,
		parts:    parts,
	}
}

// ResolveLines resolves catalog references into numbered line items.
func (r *LineResolver) ResolveLines(ctx context.Context, reqs []LineRequest) ([]billing.LineItem, error) {
	entries := make([]billing.CatalogEntry, 0, len(reqs))
	for _, req := range reqs {
		if !req.ItemType.IsValid() {
			return nil, apperror.NewValidation("unknown item type").
				WithDetail("field", "tipo_item").
				WithDetail("value", string(req.ItemType))
		}

		entry, err := r.lookup(ctx, req.ItemType, req.ItemID)
		if err != nil {
			// Missing catalog records are tolerated: BuildLine applies
			// the empty-snapshot fallback for unresolved references.
			if apperror.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		entries = append(entries, entry)
	}

	index := billing.NewCatalogIndex(entries)

	lines := make([]billing.LineItem, 0, len(reqs))
	for i, req := range reqs {
		line := billing.BuildLine(index, req.ItemType, req.ItemID, req.Quantity)
		line.LineNo = i + 1
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *LineResolver) lookup(ctx context.Context, itemType billing.ItemType, itemID id.ID) (billing.CatalogEntry, error) {
	switch itemType {
	case billing.ItemTypeService:
		svc, err := r.services.GetByID(ctx, itemID)
		if err != nil {
			return billing.CatalogEntry{}, err
		}
		return billing.CatalogEntry{
			ID:          svc.ID,
			Description: svc.Name,
			UnitPrice:   svc.BasePrice,
		}, nil

	case billing.ItemTypePart:
		part, err := r.parts.GetByID(ctx, itemID)
		if err != nil {
			return billing.CatalogEntry{}, err
		}
		return billing.CatalogEntry{
			ID:          part.ID,
			Description: part.Name,
			UnitPrice:   part.UnitPrice,
		}, nil
	}

	return billing.CatalogEntry{}, apperror.NewValidation("unknown item type").
		WithDetail("value", string(itemType))
}
