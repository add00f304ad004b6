package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/apperror"
)

type fakeUserRepo struct {
	UserRepository
	users      []User
	total      int
	lastFilter UserFilter
}

func (r *fakeUserRepo) List(ctx context.Context, filter UserFilter) ([]User, int, error) {
	r.lastFilter = filter
	return r.users, r.total, nil
}

type fakeRoleRepo struct {
	RoleRepository
	roles   map[string]*Role
	created []*Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string]*Role)}
}

func (r *fakeRoleRepo) Create(ctx context.Context, role *Role) error {
	r.created = append(r.created, role)
	r.roles[role.Code] = role
	return nil
}

func (r *fakeRoleRepo) GetByCode(ctx context.Context, code string) (*Role, error) {
	role, ok := r.roles[code]
	if !ok {
		return nil, apperror.NewNotFound("role", code)
	}
	return role, nil
}

func newTestService(users *fakeUserRepo, roles *fakeRoleRepo) *Service {
	return NewService(users, roles, nil, nil, nil, nil, DefaultServiceConfig())
}

func TestListUsersDelegatesFilter(t *testing.T) {
	userRepo := &fakeUserRepo{
		users: []User{*NewUser("admin@taller.local", "hash")},
		total: 1,
	}
	svc := newTestService(userRepo, newFakeRoleRepo())

	isActive := true
	filter := UserFilter{Search: "admin", IsActive: &isActive, RoleCode: "admin", Limit: 10}

	users, total, err := svc.ListUsers(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, filter, userRepo.lastFilter)
}

func TestCreateRoleRequiresCode(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, newFakeRoleRepo())

	_, err := svc.CreateRole(context.Background(), "", "Recepción", "")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreateRoleRejectsDuplicateCode(t *testing.T) {
	roleRepo := newFakeRoleRepo()
	roleRepo.roles["recepcion"] = NewRole("recepcion", "Recepción")
	svc := newTestService(&fakeUserRepo{}, roleRepo)

	_, err := svc.CreateRole(context.Background(), "recepcion", "Recepción", "")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Empty(t, roleRepo.created)
}

func TestCreateRolePersists(t *testing.T) {
	roleRepo := newFakeRoleRepo()
	svc := newTestService(&fakeUserRepo{}, roleRepo)

	role, err := svc.CreateRole(context.Background(), "bodega", "Bodega", "Control de repuestos")
	require.NoError(t, err)

	assert.Equal(t, "bodega", role.Code)
	assert.Equal(t, "Bodega", role.Name)
	assert.Equal(t, "Control de repuestos", role.Description)
	require.Len(t, roleRepo.created, 1)
	assert.Equal(t, role, roleRepo.created[0])
}
