package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Website codes identify which public site a contact enquiry came from.
const (
	WebsiteDeepConnection = 0
	WebsiteKiddicove      = 1
)

type Contact struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Phone      string             `json:"phone" bson:"phone"`
	Email      string             `json:"email" bson:"email"`
	ChildIssue primitive.ObjectID `json:"childIssue" bson:"childIssue"`
	Message    string             `json:"message" bson:"message"`
	Website    int                `json:"website" bson:"website"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// ChildIssueRef is the resolved shape of the referenced child issue.
type ChildIssueRef struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Status bool               `json:"status"`
}

type ContactView struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
	Email      string             `json:"email"`
	ChildIssue *ChildIssueRef     `json:"childIssue"`
	Message    string             `json:"message"`
	Website    int                `json:"website"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type CreateContactInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	ChildIssue string `json:"childIssue"`
	Message    string `json:"message"`
	Website    *int   `json:"website"`
}

type UpdateContactInput struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	ChildIssue *string `json:"childIssue"`
	Message    *string `json:"message"`
	Website    *int    `json:"website"`
}

type ContactFilter struct {
	ChildIssue string `json:"childIssue"`
	Website    *int   `json:"website"`
	Search     string `json:"search"`
}
