package childissue

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

type ChildIssueService interface {
	CreateChildIssue(ctx context.Context, input CreateChildIssueInput) (*ChildIssue, error)
	ListChildIssues(ctx context.Context, filter ChildIssueFilter) ([]ChildIssue, int64, error)
	GetChildIssueByID(ctx context.Context, id string) (*ChildIssue, error)
	UpdateChildIssue(ctx context.Context, id string, input UpdateChildIssueInput) (*ChildIssue, error)
	DeleteChildIssue(ctx context.Context, id string) error
}

type ChildIssueServiceImpl struct {
	ChildIssueRepo ChildIssueRepository
}

func NewChildIssueService(childIssueRepo ChildIssueRepository) ChildIssueService {
	return &ChildIssueServiceImpl{
		ChildIssueRepo: childIssueRepo,
	}
}

func (s *ChildIssueServiceImpl) CreateChildIssue(ctx context.Context, input CreateChildIssueInput) (*ChildIssue, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("Child issue name is required")
	}

	if _, err := s.ChildIssueRepo.FindByName(ctx, name); err == nil {
		return nil, apperror.Conflict("Child issue with this name already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	status := true
	if input.Status != nil {
		status = *input.Status
	}

	issue := &ChildIssue{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ChildIssueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	return issue, nil
}

func (s *ChildIssueServiceImpl) ListChildIssues(ctx context.Context, filter ChildIssueFilter) ([]ChildIssue, int64, error) {
	return s.ChildIssueRepo.List(ctx, buildChildIssueFilter(filter))
}

func (s *ChildIssueServiceImpl) GetChildIssueByID(ctx context.Context, id string) (*ChildIssue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	issue, err := s.ChildIssueRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Child issue not found")
	}
	return issue, err
}

func (s *ChildIssueServiceImpl) UpdateChildIssue(ctx context.Context, id string, input UpdateChildIssueInput) (*ChildIssue, error) {
	existing, err := s.GetChildIssueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.Validation("Child issue name is required")
		}
		if name != existing.Name {
			if _, err := s.ChildIssueRepo.FindByName(ctx, name); err == nil {
				return nil, apperror.Conflict("Child issue name already exists")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
		}
		set["name"] = name
	}

	if input.Status != nil {
		set["status"] = *input.Status
	}

	if err := s.ChildIssueRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.ChildIssueRepo.FindByID(ctx, existing.ID)
}

func (s *ChildIssueServiceImpl) DeleteChildIssue(ctx context.Context, id string) error {
	existing, err := s.GetChildIssueByID(ctx, id)
	if err != nil {
		return err
	}
	return s.ChildIssueRepo.Delete(ctx, existing.ID)
}

func buildChildIssueFilter(filter ChildIssueFilter) bson.M {
	query := bson.M{}
	if filter.Status.Set {
		query["status"] = filter.Status.Value
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: name, Options: "i"}}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}},
		}
	}
	return query
}
