package backenduser

import (
	"context"
	"testing"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/common/models"
	"go-admin/internal/features/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*BackendUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*BackendUser{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *BackendUser) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*BackendUser, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*BackendUser, error) {
	for _, user := range f.users {
		if user.Email == email && email != "" {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*BackendUser, error) {
	for _, user := range f.users {
		if user.Phone == phone && phone != "" {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) List(ctx context.Context, filter bson.M) ([]BackendUser, error) {
	var out []BackendUser
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) error {
	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "password":
			user.Password = value.(string)
		case "block":
			user.Block = value.(bool)
		case "roleAndPermissionModel":
			if value == nil {
				user.RoleID = nil
			} else {
				oid := value.(primitive.ObjectID)
				user.RoleID = &oid
			}
		case "updated_at":
			user.UpdatedAt = value.(time.Time)
		}
	}
	for key := range unset {
		switch key {
		case "email":
			user.Email = ""
		case "phone":
			user.Phone = ""
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeRoleRepo struct {
	roles map[primitive.ObjectID]*role.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[primitive.ObjectID]*role.Role{}}
}

func (f *fakeRoleRepo) Create(ctx context.Context, r *role.Role) error {
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRoleRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*role.Role, error) {
	if r, ok := f.roles[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRoleRepo) FindByName(ctx context.Context, name string) (*role.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			copied := *r
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRoleRepo) List(ctx context.Context, filter bson.M) ([]role.Role, int64, error) {
	var out []role.Role
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) EnsureIndexes(ctx context.Context) error { return nil }

func seedRole(repo *fakeRoleRepo, name string) *role.Role {
	r := &role.Role{
		ID:   primitive.NewObjectID(),
		Name: name,
		PermissionMap: models.PermissionMap{
			Dashboard: models.LevelAll,
		},
	}
	repo.roles[r.ID] = r
	return r
}

func TestCreateBackendUserHashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewBackendUserService(userRepo, newFakeRoleRepo())

	view, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	stored := userRepo.users[view.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestCreateBackendUserRequiresNameAndPassword(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	_, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Email: "a@example.com",
	})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Name and password are required", appErr.Message)
}

func TestCreateBackendUserRequiresEmailOrPhone(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	_, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name:     "Alice",
		Password: "s3cret",
	})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, "Either email or phone is required", appErr.Message)

	// Phone alone is enough.
	_, err = svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name:     "Bob",
		Phone:    "5551234",
		Password: "s3cret",
	})
	assert.NoError(t, err)
}

func TestCreateBackendUserDuplicateEmail(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	_, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x",
	})
	require.NoError(t, err)

	_, err = svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice Two", Email: "a@example.com", Password: "y",
	})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestCreateBackendUserUnknownRole(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	_, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name:     "Alice",
		Email:    "a@example.com",
		Password: "x",
		RoleID:   primitive.NewObjectID().Hex(),
	})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Invalid role ID", appErr.Message)
}

func TestUpdateBackendUserBlockExplicitFalse(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewBackendUserService(userRepo, newFakeRoleRepo())

	view, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x",
	})
	require.NoError(t, err)

	blocked := true
	_, err = svc.UpdateBackendUser(context.Background(), view.ID.Hex(), UpdateBackendUserInput{Block: &blocked})
	require.NoError(t, err)
	assert.True(t, userRepo.users[view.ID].Block)

	unblocked := false
	updated, err := svc.UpdateBackendUser(context.Background(), view.ID.Hex(), UpdateBackendUserInput{Block: &unblocked})
	require.NoError(t, err)
	assert.False(t, updated.Block)
}

func TestUpdateBackendUserCannotClearBothContacts(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	view, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x",
	})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateBackendUser(context.Background(), view.ID.Hex(), UpdateBackendUserInput{Email: &empty})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, "Either email or phone is required", appErr.Message)
}

func TestUpdateBackendUserEmptyPassword(t *testing.T) {
	svc := NewBackendUserService(newFakeUserRepo(), newFakeRoleRepo())

	view, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x",
	})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateBackendUser(context.Background(), view.ID.Hex(), UpdateBackendUserInput{Password: &empty})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, "Password cannot be empty", appErr.Message)
}

func TestResolveAuthContextDanglingRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	svc := NewBackendUserService(userRepo, roleRepo)

	seeded := seedRole(roleRepo, "Manager")
	view, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x", RoleID: seeded.ID.Hex(),
	})
	require.NoError(t, err)

	authCtx, err := svc.ResolveAuthContext(context.Background(), view.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Manager", authCtx.Role)
	assert.Equal(t, models.LevelAll, authCtx.Permissions.Dashboard)

	// Deleting the role leaves a dangling reference: the identity resolves
	// to "No Role" with every category at LevelNone.
	delete(roleRepo.roles, seeded.ID)

	authCtx, err = svc.ResolveAuthContext(context.Background(), view.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.NoRoleName, authCtx.Role)
	assert.Equal(t, models.PermissionMap{}, authCtx.Permissions)
}

func TestListBackendUsersRoleFilter(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()
	svc := NewBackendUserService(userRepo, roleRepo)

	manager := seedRole(roleRepo, "Manager")
	_, err := svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Alice", Email: "a@example.com", Password: "x", RoleID: manager.ID.Hex(),
	})
	require.NoError(t, err)
	_, err = svc.CreateBackendUser(context.Background(), CreateBackendUserInput{
		Name: "Bob", Email: "b@example.com", Password: "x",
	})
	require.NoError(t, err)

	views, total, err := svc.ListBackendUsers(context.Background(), BackendUserFilter{Role: "manag"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].Name)
}
