package role

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoleService interface {
	CreateRole(ctx context.Context, input CreateRoleInput) (*Role, error)
	ListRoles(ctx context.Context, filter RoleFilter) ([]Role, int64, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*Role, error)
	DeleteRole(ctx context.Context, id string) error
}

type RoleServiceImpl struct {
	RoleRepo RoleRepository
}

func NewRoleService(roleRepo RoleRepository) RoleService {
	return &RoleServiceImpl{
		RoleRepo: roleRepo,
	}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, input CreateRoleInput) (*Role, error) {
	name := strings.TrimSpace(input.Role)
	if name == "" {
		return nil, apperror.Validation("Role name is required")
	}

	// Exact-match duplicate check; the unique index is the backstop for
	// concurrent creates.
	if _, err := s.RoleRepo.FindByName(ctx, name); err == nil {
		return nil, apperror.Conflict("Role already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	role := &Role{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Unspecified categories stay at LevelNone.
	for category, level := range input.levels() {
		if level == nil {
			continue
		}
		if err := level.Validate(category); err != nil {
			return nil, apperror.Validation(err.Error())
		}
		applyLevel(&role.PermissionMap, category, *level)
	}

	if err := s.RoleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context, filter RoleFilter) ([]Role, int64, error) {
	return s.RoleRepo.List(ctx, buildRoleFilter(filter))
}

func (s *RoleServiceImpl) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	role, err := s.RoleRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Role not found")
	}
	return role, err
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*Role, error) {
	existing, err := s.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.Role != nil {
		name := strings.TrimSpace(*input.Role)
		if name == "" {
			return nil, apperror.Validation("Role name is required")
		}
		if name != existing.Name {
			if _, err := s.RoleRepo.FindByName(ctx, name); err == nil {
				return nil, apperror.Conflict("Role name already in use")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
		}
		set["role"] = name
	}

	for category, level := range input.levels() {
		if level == nil {
			continue
		}
		if err := level.Validate(category); err != nil {
			return nil, apperror.Validation(err.Error())
		}
		set[category] = *level
	}

	if err := s.RoleRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.RoleRepo.FindByID(ctx, existing.ID)
}

// DeleteRole removes the role unconditionally. Identities still referencing
// it keep a dangling reference and resolve to "No Role".
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	existing, err := s.GetRoleByID(ctx, id)
	if err != nil {
		return err
	}
	return s.RoleRepo.Delete(ctx, existing.ID)
}

func buildRoleFilter(filter RoleFilter) bson.M {
	query := bson.M{}
	if name := strings.TrimSpace(filter.Role); name != "" {
		query["role"] = bson.M{"$regex": primitive.Regex{Pattern: name, Options: "i"}}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query["$or"] = []bson.M{
			{"role": bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}},
		}
	}
	return query
}

func applyLevel(m *models.PermissionMap, category string, level models.PermissionLevel) {
	switch category {
	case models.CategoryDashboard:
		m.Dashboard = level
	case models.CategoryBooking:
		m.BookingManagement = level
	case models.CategoryBlog:
		m.BlogManagement = level
	case models.CategoryContactUs:
		m.ContactUsManagement = level
	case models.CategorySuggestions:
		m.SuggestionsManagement = level
	case models.CategoryBackendUser:
		m.BackendUserManagement = level
	case models.CategoryRoleAndPermissions:
		m.RoleAndPermissionManagement = level
	}
}
