package role

import (
	"time"

	"go-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a named bundle of permission levels, one per resource category.
// The permission map is stored inline so the document keeps the flat shape
// the dashboard consumes.
type Role struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"role" bson:"role"`
	models.PermissionMap `bson:",inline"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateRoleInput carries the create payload. Unspecified categories default
// to LevelNone.
type CreateRoleInput struct {
	Role                        string                  `json:"role"`
	Dashboard                   *models.PermissionLevel `json:"dashboard"`
	BookingManagement           *models.PermissionLevel `json:"bookingManagement"`
	BlogManagement              *models.PermissionLevel `json:"blogManagement"`
	ContactUsManagement         *models.PermissionLevel `json:"contactUsManagement"`
	SuggestionsManagement       *models.PermissionLevel `json:"suggestionsManagement"`
	BackendUserManagement       *models.PermissionLevel `json:"backendUserManagement"`
	RoleAndPermissionManagement *models.PermissionLevel `json:"roleAndPermissionManagement"`
}

// UpdateRoleInput carries a partial update. Nil means "leave unchanged".
type UpdateRoleInput struct {
	Role                        *string                 `json:"role"`
	Dashboard                   *models.PermissionLevel `json:"dashboard"`
	BookingManagement           *models.PermissionLevel `json:"bookingManagement"`
	BlogManagement              *models.PermissionLevel `json:"blogManagement"`
	ContactUsManagement         *models.PermissionLevel `json:"contactUsManagement"`
	SuggestionsManagement       *models.PermissionLevel `json:"suggestionsManagement"`
	BackendUserManagement       *models.PermissionLevel `json:"backendUserManagement"`
	RoleAndPermissionManagement *models.PermissionLevel `json:"roleAndPermissionManagement"`
}

// RoleFilter narrows the role listing.
type RoleFilter struct {
	Role   string `json:"role"`
	Search string `json:"search"`
}

// levels pairs the patchable categories with their input pointers so create
// and update validate them the same way.
func (in CreateRoleInput) levels() map[string]*models.PermissionLevel {
	return map[string]*models.PermissionLevel{
		models.CategoryDashboard:          in.Dashboard,
		models.CategoryBooking:            in.BookingManagement,
		models.CategoryBlog:               in.BlogManagement,
		models.CategoryContactUs:          in.ContactUsManagement,
		models.CategorySuggestions:        in.SuggestionsManagement,
		models.CategoryBackendUser:        in.BackendUserManagement,
		models.CategoryRoleAndPermissions: in.RoleAndPermissionManagement,
	}
}

func (in UpdateRoleInput) levels() map[string]*models.PermissionLevel {
	return map[string]*models.PermissionLevel{
		models.CategoryDashboard:          in.Dashboard,
		models.CategoryBooking:            in.BookingManagement,
		models.CategoryBlog:               in.BlogManagement,
		models.CategoryContactUs:          in.ContactUsManagement,
		models.CategorySuggestions:        in.SuggestionsManagement,
		models.CategoryBackendUser:        in.BackendUserManagement,
		models.CategoryRoleAndPermissions: in.RoleAndPermissionManagement,
	}
}
