package service

import (
	"time"

	"go-admin/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable service type. Status marks it active or inactive.
type Service struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Status    bool               `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateServiceInput struct {
	Name   string `json:"name"`
	Status *bool  `json:"status"`
}

type UpdateServiceInput struct {
	Name   *string `json:"name"`
	Status *bool   `json:"status"`
}

type ServiceFilter struct {
	Status models.OptionalBool `json:"status"`
	Name   string              `json:"name"`
	Search string              `json:"search"`
}
