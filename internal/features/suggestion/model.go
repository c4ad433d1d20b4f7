package suggestion

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Suggestion struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Topic     string             `json:"topic" bson:"topic"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateSuggestionInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Topic string `json:"topic"`
}

type UpdateSuggestionInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Topic *string `json:"topic"`
}

type SuggestionFilter struct {
	Topic  string `json:"topic"`
	Search string `json:"search"`
}
