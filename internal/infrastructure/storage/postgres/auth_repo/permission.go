package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taller/internal/core/apperror"
	"taller/internal/domain/auth"
	"taller/internal/infrastructure/storage/postgres"
)

const permCols = "id, code, name, description, resource, action, created_at"

// PermissionRepo implements auth.PermissionRepository.
// Permissions are seeded by migrations and treated as read-only at runtime.
type PermissionRepo struct{}

// NewPermissionRepo creates a new permission repository.
func NewPermissionRepo() *PermissionRepo {
	return &PermissionRepo{}
}

func (r *PermissionRepo) getTxManager(ctx context.Context) *postgres.TxManager {
	return postgres.MustGetTxManager(ctx)
}

func scanPermission(row pgx.Row) (*auth.Permission, error) {
	var perm auth.Permission
	err := row.Scan(
		&perm.ID, &perm.Code, &perm.Name, &perm.Description,
		&perm.Resource, &perm.Action, &perm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

// GetByCode retrieves permission by code.
func (r *PermissionRepo) GetByCode(ctx context.Context, code string) (*auth.Permission, error) {
	q := r.getTxManager(ctx).GetQuerier(ctx)

	query := `SELECT ` + permCols + ` FROM permissions WHERE code = $1`

	perm, err := scanPermission(q.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("permission", code)
	}
	if err != nil {
		return nil, fmt.Errorf("query permission: %w", err)
	}

	return perm, nil
}

// List retrieves all permissions.
func (r *PermissionRepo) List(ctx context.Context) ([]auth.Permission, error) {
	q := r.getTxManager(ctx).GetQuerier(ctx)

	query := `SELECT ` + permCols + ` FROM permissions ORDER BY resource, action`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	defer rows.Close()

	return collectPermissions(rows)
}

// ListByResource retrieves permissions for a resource.
func (r *PermissionRepo) ListByResource(ctx context.Context, resource string) ([]auth.Permission, error) {
	q := r.getTxManager(ctx).GetQuerier(ctx)

	query := `SELECT ` + permCols + ` FROM permissions WHERE resource = $1 ORDER BY action`

	rows, err := q.Query(ctx, query, resource)
	if err != nil {
		return nil, fmt.Errorf("query permissions: %w", err)
	}
	defer rows.Close()

	return collectPermissions(rows)
}

func collectPermissions(rows pgx.Rows) ([]auth.Permission, error) {
	var permissions []auth.Permission
	for rows.Next() {
		perm, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		permissions = append(permissions, *perm)
	}
	return permissions, nil
}

var _ auth.PermissionRepository = (*PermissionRepo)(nil)
