package service

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

type ServiceService interface {
	CreateService(ctx context.Context, input CreateServiceInput) (*Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]Service, int64, error)
	GetServiceByID(ctx context.Context, id string) (*Service, error)
	UpdateService(ctx context.Context, id string, input UpdateServiceInput) (*Service, error)
	DeleteService(ctx context.Context, id string) error
}

type ServiceServiceImpl struct {
	ServiceRepo ServiceRepository
}

func NewServiceService(serviceRepo ServiceRepository) ServiceService {
	return &ServiceServiceImpl{
		ServiceRepo: serviceRepo,
	}
}

func (s *ServiceServiceImpl) CreateService(ctx context.Context, input CreateServiceInput) (*Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("Service name is required")
	}

	if _, err := s.ServiceRepo.FindByNameInsensitive(ctx, name); err == nil {
		return nil, apperror.Conflict("Service with this name already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	status := true
	if input.Status != nil {
		status = *input.Status
	}

	service := &Service{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ServiceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *ServiceServiceImpl) ListServices(ctx context.Context, filter ServiceFilter) ([]Service, int64, error) {
	return s.ServiceRepo.List(ctx, buildServiceFilter(filter))
}

func (s *ServiceServiceImpl) GetServiceByID(ctx context.Context, id string) (*Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	service, err := s.ServiceRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Service not found")
	}
	return service, err
}

func (s *ServiceServiceImpl) UpdateService(ctx context.Context, id string, input UpdateServiceInput) (*Service, error) {
	existing, err := s.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.Validation("Service name is required")
		}
		if name != existing.Name {
			if _, err := s.ServiceRepo.FindByNameInsensitive(ctx, name); err == nil {
				return nil, apperror.Conflict("Service name already exists")
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

	if err := s.ServiceRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.ServiceRepo.FindByID(ctx, existing.ID)
}

func (s *ServiceServiceImpl) DeleteService(ctx context.Context, id string) error {
	existing, err := s.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	return s.ServiceRepo.Delete(ctx, existing.ID)
}

func buildServiceFilter(filter ServiceFilter) bson.M {
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
