package childissue

import (
	"time"

	"go-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChildIssue is a concern category a contact enquiry can reference.
type ChildIssue struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Status    bool               `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateChildIssueInput struct {
	Name   string `json:"name"`
	Status *bool  `json:"status"`
}

type UpdateChildIssueInput struct {
	Name   *string `json:"name"`
	Status *bool   `json:"status"`
}

type ChildIssueFilter struct {
	Status models.OptionalBool `json:"status"`
	Name   string              `json:"name"`
	Search string              `json:"search"`
}
