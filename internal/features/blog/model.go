package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ContentTypes lists the accepted blog content kinds.
var ContentTypes = []string{"article", "news", "story", "tutorial"}

type Blog struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	ContentType       string             `json:"contentType" bson:"contentType"`
	Category          string             `json:"category" bson:"category"`
	PublicationStatus string             `json:"publicationStatus" bson:"publicationStatus"`
	Content           string             `json:"content" bson:"content"`
	AuthorName        string             `json:"authorName" bson:"authorName"`
	AuthorPosition    string             `json:"authorPosition" bson:"authorPosition"`
	ReadTime          string             `json:"readTime" bson:"readTime"`
	Image             *string            `json:"image" bson:"image"`
	Tags              []string           `json:"tags" bson:"tags"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateBlogInput struct {
	Title             string   `json:"title"`
	ContentType       string   `json:"contentType"`
	Category          string   `json:"category"`
	PublicationStatus string   `json:"publicationStatus"`
	Content           string   `json:"content"`
	AuthorName        string   `json:"authorName"`
	AuthorPosition    string   `json:"authorPosition"`
	ReadTime          string   `json:"readTime"`
	Image             string   `json:"image"`
	Tags              []string `json:"tags"`
}

type UpdateBlogInput struct {
	Title             *string  `json:"title"`
	ContentType       *string  `json:"contentType"`
	Category          *string  `json:"category"`
	PublicationStatus *string  `json:"publicationStatus"`
	Content           *string  `json:"content"`
	AuthorName        *string  `json:"authorName"`
	AuthorPosition    *string  `json:"authorPosition"`
	ReadTime          *string  `json:"readTime"`
	Image             *string  `json:"image"`
	Tags              []string `json:"tags"`
}

// BlogFilter's Status maps onto publicationStatus.
type BlogFilter struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Search   string `json:"search"`
}
