package backenduser

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/common/models"
	"go-admin/internal/features/role"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type BackendUserService interface {
	CreateBackendUser(ctx context.Context, input CreateBackendUserInput) (*BackendUserView, error)
	ListBackendUsers(ctx context.Context, filter BackendUserFilter) ([]BackendUserView, int64, error)
	GetBackendUserByID(ctx context.Context, id string) (*BackendUserView, error)
	UpdateBackendUser(ctx context.Context, id string, input UpdateBackendUserInput) (*BackendUserView, error)
	DeleteBackendUser(ctx context.Context, id string) error
	ResolveAuthContext(ctx context.Context, userID string) (*models.AuthContext, error)
}

type BackendUserServiceImpl struct {
	UserRepo BackendUserRepository
	RoleRepo role.RoleRepository
}

func NewBackendUserService(userRepo BackendUserRepository, roleRepo role.RoleRepository) BackendUserService {
	return &BackendUserServiceImpl{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
	}
}

func (s *BackendUserServiceImpl) CreateBackendUser(ctx context.Context, input CreateBackendUserInput) (*BackendUserView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return nil, apperror.Validation("Name and password are required")
	}

	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return nil, apperror.Validation("Either email or phone is required")
	}

	if email != "" {
		if _, err := s.UserRepo.FindByEmail(ctx, email); err == nil {
			return nil, apperror.Conflict("Email already exists")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}
	if phone != "" {
		if _, err := s.UserRepo.FindByPhone(ctx, phone); err == nil {
			return nil, apperror.Conflict("Phone already exists")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}

	var roleID *primitive.ObjectID
	var assignedRole *role.Role
	if input.RoleID != "" {
		found, err := s.findRole(ctx, input.RoleID)
		if err != nil {
			return nil, err
		}
		assignedRole = found
		roleID = &found.ID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &BackendUser{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Password:  string(hashed),
		RoleID:    roleID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toView(user, assignedRole), nil
}

func (s *BackendUserServiceImpl) ListBackendUsers(ctx context.Context, filter BackendUserFilter) ([]BackendUserView, int64, error) {
	users, err := s.UserRepo.List(ctx, buildUserFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	views := make([]BackendUserView, 0, len(users))
	roleNeedle := strings.ToLower(strings.TrimSpace(filter.Role))
	for i := range users {
		resolved := s.resolveRole(ctx, users[i].RoleID)
		// Role filtering happens after the join, like the populate-match
		// path it replaces: users whose role does not match drop out.
		if roleNeedle != "" {
			if resolved == nil || !strings.Contains(strings.ToLower(resolved.Name), roleNeedle) {
				continue
			}
		}
		views = append(views, *toView(&users[i], resolved))
	}

	return views, int64(len(views)), nil
}

func (s *BackendUserServiceImpl) GetBackendUserByID(ctx context.Context, id string) (*BackendUserView, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toView(user, s.resolveRole(ctx, user.RoleID)), nil
}

func (s *BackendUserServiceImpl) UpdateBackendUser(ctx context.Context, id string, input UpdateBackendUserInput) (*BackendUserView, error) {
	existing, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	unset := bson.M{}

	newEmail := existing.Email
	if input.Email != nil {
		newEmail = strings.TrimSpace(*input.Email)
	}
	newPhone := existing.Phone
	if input.Phone != nil {
		newPhone = strings.TrimSpace(*input.Phone)
	}
	if newEmail == "" && newPhone == "" {
		return nil, apperror.Validation("Either email or phone is required")
	}

	if input.Email != nil && newEmail != existing.Email {
		if newEmail != "" {
			if _, err := s.UserRepo.FindByEmail(ctx, newEmail); err == nil {
				return nil, apperror.Conflict("Email already exists")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			set["email"] = newEmail
		} else {
			unset["email"] = ""
		}
	}
	if input.Phone != nil && newPhone != existing.Phone {
		if newPhone != "" {
			if _, err := s.UserRepo.FindByPhone(ctx, newPhone); err == nil {
				return nil, apperror.Conflict("Phone already exists")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			set["phone"] = newPhone
		} else {
			unset["phone"] = ""
		}
	}

	if input.RoleID != nil {
		if *input.RoleID == "" {
			set["roleAndPermissionModel"] = nil
		} else {
			found, err := s.findRole(ctx, *input.RoleID)
			if err != nil {
				return nil, err
			}
			set["roleAndPermissionModel"] = found.ID
		}
	}

	if input.Password != nil {
		if *input.Password == "" {
			return nil, apperror.Validation("Password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		set["password"] = string(hashed)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.Validation("Name and password are required")
		}
		set["name"] = name
	}

	// An explicit false is applied; only a missing field leaves the flag
	// untouched.
	if input.Block != nil {
		set["block"] = *input.Block
	}

	if err := s.UserRepo.Update(ctx, existing.ID, set, unset); err != nil {
		return nil, err
	}

	updated, err := s.UserRepo.FindByID(ctx, existing.ID)
	if err != nil {
		return nil, err
	}
	return toView(updated, s.resolveRole(ctx, updated.RoleID)), nil
}

func (s *BackendUserServiceImpl) DeleteBackendUser(ctx context.Context, id string) error {
	existing, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	return s.UserRepo.Delete(ctx, existing.ID)
}

// ResolveAuthContext implements the auth middleware's fresh per-request
// lookup: the identity must still exist, and its permission map comes from
// the store, not the token. A dangling or missing role resolves to "No Role"
// with every category at LevelNone.
func (s *BackendUserServiceImpl) ResolveAuthContext(ctx context.Context, userID string) (*models.AuthContext, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	authCtx := &models.AuthContext{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   models.NoRoleName,
	}

	if resolved := s.resolveRole(ctx, user.RoleID); resolved != nil {
		authCtx.Role = resolved.Name
		authCtx.Permissions = resolved.PermissionMap
	}

	return authCtx, nil
}

func (s *BackendUserServiceImpl) findUser(ctx context.Context, id string) (*BackendUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	user, err := s.UserRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Backend user not found")
	}
	return user, err
}

func (s *BackendUserServiceImpl) findRole(ctx context.Context, id string) (*role.Role, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("Invalid role ID")
	}

	found, err := s.RoleRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Invalid role ID")
	}
	return found, err
}

func (s *BackendUserServiceImpl) resolveRole(ctx context.Context, id *primitive.ObjectID) *role.Role {
	if id == nil {
		return nil
	}
	resolved, err := s.RoleRepo.FindByID(ctx, *id)
	if err != nil {
		return nil
	}
	return resolved
}

func toView(user *BackendUser, resolved *role.Role) *BackendUserView {
	return &BackendUserView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      resolved,
		Block:     user.Block,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func buildUserFilter(filter BackendUserFilter) bson.M {
	query := bson.M{}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: name, Options: "i"}}
	}
	if email := strings.TrimSpace(filter.Email); email != "" {
		query["email"] = bson.M{"$regex": primitive.Regex{Pattern: email, Options: "i"}}
	}
	if phone := strings.TrimSpace(filter.Phone); phone != "" {
		query["phone"] = bson.M{"$regex": primitive.Regex{Pattern: phone, Options: "i"}}
	}
	if filter.Block.Set {
		query["block"] = filter.Block.Value
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		regex := bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
		query["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"phone": regex},
		}
	}
	return query
}
