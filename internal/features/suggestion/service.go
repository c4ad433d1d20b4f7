package suggestion

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SuggestionService interface {
	CreateSuggestion(ctx context.Context, input CreateSuggestionInput) (*Suggestion, error)
	ListSuggestions(ctx context.Context, filter SuggestionFilter) ([]Suggestion, int64, error)
	GetSuggestionByID(ctx context.Context, id string) (*Suggestion, error)
	UpdateSuggestion(ctx context.Context, id string, input UpdateSuggestionInput) (*Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error
}

type SuggestionServiceImpl struct {
	SuggestionRepo SuggestionRepository
}

func NewSuggestionService(suggestionRepo SuggestionRepository) SuggestionService {
	return &SuggestionServiceImpl{
		SuggestionRepo: suggestionRepo,
	}
}

func (s *SuggestionServiceImpl) CreateSuggestion(ctx context.Context, input CreateSuggestionInput) (*Suggestion, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	topic := strings.TrimSpace(input.Topic)

	if name == "" || email == "" || topic == "" {
		return nil, apperror.Validation("All fields (name, email, topic) are required")
	}

	if _, err := s.SuggestionRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("Email already exists for another suggestion")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	suggestion := &Suggestion{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Topic:     topic,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.SuggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, err
	}

	return suggestion, nil
}

func (s *SuggestionServiceImpl) ListSuggestions(ctx context.Context, filter SuggestionFilter) ([]Suggestion, int64, error) {
	return s.SuggestionRepo.List(ctx, buildSuggestionFilter(filter))
}

func (s *SuggestionServiceImpl) GetSuggestionByID(ctx context.Context, id string) (*Suggestion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	suggestion, err := s.SuggestionRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Suggestion not found")
	}
	return suggestion, err
}

func (s *SuggestionServiceImpl) UpdateSuggestion(ctx context.Context, id string, input UpdateSuggestionInput) (*Suggestion, error) {
	existing, err := s.GetSuggestionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email != "" && email != existing.Email {
			if _, err := s.SuggestionRepo.FindByEmail(ctx, email); err == nil {
				return nil, apperror.Conflict("Email already in use by another suggestion")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			set["email"] = email
		}
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			set["name"] = name
		}
	}
	if input.Topic != nil {
		if topic := strings.TrimSpace(*input.Topic); topic != "" {
			set["topic"] = topic
		}
	}

	if err := s.SuggestionRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.SuggestionRepo.FindByID(ctx, existing.ID)
}

func (s *SuggestionServiceImpl) DeleteSuggestion(ctx context.Context, id string) error {
	existing, err := s.GetSuggestionByID(ctx, id)
	if err != nil {
		return err
	}
	return s.SuggestionRepo.Delete(ctx, existing.ID)
}

func buildSuggestionFilter(filter SuggestionFilter) bson.M {
	query := bson.M{}
	if topic := strings.TrimSpace(filter.Topic); topic != "" {
		query["topic"] = bson.M{"$regex": primitive.Regex{Pattern: topic, Options: "i"}}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		regex := bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
		query["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"topic": regex},
		}
	}
	return query
}
