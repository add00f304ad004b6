package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taller/internal/core/id"
	"taller/internal/domain/billing"
	"taller/internal/infrastructure/storage/postgres"
)

// lineStore persists billing line items in a child table.
// Quotations, invoices and work tickets share the same line shape,
// each with its own table.
type lineStore struct {
	tableName string
}

func newLineStore(tableName string) lineStore {
	return lineStore{tableName: tableName}
}

func (s lineStore) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// GetLines retrieves lines for a document ordered by line number.
func (s lineStore) GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error) {
	q := s.builder().
		Select("line_no", "item_type", "item_id", "description", "quantity", "unit_price").
		From(s.tableName).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []billing.LineItem
	querier := postgres.MustGetTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces lines for a document (delete existing + insert new).
func (s lineStore) SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error {
	querier := postgres.MustGetTxManager(ctx).GetQuerier(ctx)

	// Delete existing lines
	deleteSQL := "DELETE FROM " + s.tableName + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	// Insert new lines
	q := s.builder().
		Insert(s.tableName).
		Columns("document_id", "line_no", "item_type", "item_id", "description", "quantity", "unit_price")

	for _, line := range lines {
		q = q.Values(
			docID, line.LineNo, line.ItemType,
			line.ItemID, line.Description, line.Quantity, line.UnitPrice,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}
