package program

import (
	"time"

	"go-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a bookable program type. Status marks it active or inactive.
type Program struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Status    bool               `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateProgramInput struct {
	Name   string `json:"name"`
	Status *bool  `json:"status"`
}

type UpdateProgramInput struct {
	Name   *string `json:"name"`
	Status *bool   `json:"status"`
}

type ProgramFilter struct {
	Status models.OptionalBool `json:"status"`
	Name   string              `json:"name"`
	Search string              `json:"search"`
}
