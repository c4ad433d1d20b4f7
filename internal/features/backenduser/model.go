package backenduser

import (
	"time"

	"go-admin/internal/common/models"
	"go-admin/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BackendUser is a dashboard operator account. The password hash never
// leaves the package: reads go out as BackendUserView.
type BackendUser struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	Email     string              `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Password  string              `json:"-" bson:"password"`
	RoleID    *primitive.ObjectID `json:"roleId,omitempty" bson:"roleAndPermissionModel,omitempty"`
	Block     bool                `json:"block" bson:"block"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

// BackendUserView is the read shape: the role reference resolved to the full
// role document, the password hash omitted.
type BackendUserView struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Role      *role.Role         `json:"roleAndPermissionModel"`
	Block     bool               `json:"block"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type CreateBackendUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
}

// UpdateBackendUserInput is a partial update. Nil means "leave unchanged";
// an explicit false for Block is applied.
type UpdateBackendUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	RoleID   *string `json:"roleId"`
	Block    *bool   `json:"block"`
}

type BackendUserFilter struct {
	Name   string              `json:"name"`
	Email  string              `json:"email"`
	Phone  string              `json:"phone"`
	Role   string              `json:"role"`
	Block  models.OptionalBool `json:"block"`
	Search string              `json:"search"`
}
