package booking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	ServiceType primitive.ObjectID `json:"serviceType" bson:"serviceType"`
	ProgramType primitive.ObjectID `json:"programType" bson:"programType"`
	Message     string             `json:"message" bson:"message"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ResourceRef is the resolved shape of a referenced service or program.
type ResourceRef struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Status bool               `json:"status"`
}

// BookingView is a Booking with its references resolved for responses.
type BookingView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	ServiceType *ResourceRef       `json:"serviceType"`
	ProgramType *ResourceRef       `json:"programType"`
	Message     string             `json:"message"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type CreateBookingInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	ProgramType string `json:"programType"`
	Message     string `json:"message"`
	Status      string `json:"status"`
}

type UpdateBookingInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ServiceType *string `json:"serviceType"`
	ProgramType *string `json:"programType"`
	Message     *string `json:"message"`
	Status      *string `json:"status"`
}

type BookingFilter struct {
	Status      string `json:"status"`
	ServiceType string `json:"serviceType"`
	ProgramType string `json:"programType"`
	Search      string `json:"search"`
}
