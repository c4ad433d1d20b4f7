package program

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

type ProgramService interface {
	CreateProgram(ctx context.Context, input CreateProgramInput) (*Program, error)
	ListPrograms(ctx context.Context, filter ProgramFilter) ([]Program, int64, error)
	GetProgramByID(ctx context.Context, id string) (*Program, error)
	UpdateProgram(ctx context.Context, id string, input UpdateProgramInput) (*Program, error)
	DeleteProgram(ctx context.Context, id string) error
}

type ProgramServiceImpl struct {
	ProgramRepo ProgramRepository
}

func NewProgramService(programRepo ProgramRepository) ProgramService {
	return &ProgramServiceImpl{
		ProgramRepo: programRepo,
	}
}

func (s *ProgramServiceImpl) CreateProgram(ctx context.Context, input CreateProgramInput) (*Program, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("Program name is required")
	}

	if _, err := s.ProgramRepo.FindByNameInsensitive(ctx, name); err == nil {
		return nil, apperror.Conflict("Program with this name already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	status := true
	if input.Status != nil {
		status = *input.Status
	}

	program := &Program{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ProgramRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

func (s *ProgramServiceImpl) ListPrograms(ctx context.Context, filter ProgramFilter) ([]Program, int64, error) {
	return s.ProgramRepo.List(ctx, buildProgramFilter(filter))
}

func (s *ProgramServiceImpl) GetProgramByID(ctx context.Context, id string) (*Program, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	program, err := s.ProgramRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Program not found")
	}
	return program, err
}

func (s *ProgramServiceImpl) UpdateProgram(ctx context.Context, id string, input UpdateProgramInput) (*Program, error) {
	existing, err := s.GetProgramByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.Validation("Program name is required")
		}
		if name != existing.Name {
			if _, err := s.ProgramRepo.FindByNameInsensitive(ctx, name); err == nil {
				return nil, apperror.Conflict("Program name already exists")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
		}
		set["name"] = name
	}

	// An explicit false deactivates; only a missing field leaves the status
	// untouched.
	if input.Status != nil {
		set["status"] = *input.Status
	}

	if err := s.ProgramRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.ProgramRepo.FindByID(ctx, existing.ID)
}

func (s *ProgramServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	existing, err := s.GetProgramByID(ctx, id)
	if err != nil {
		return err
	}
	return s.ProgramRepo.Delete(ctx, existing.ID)
}

func buildProgramFilter(filter ProgramFilter) bson.M {
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
