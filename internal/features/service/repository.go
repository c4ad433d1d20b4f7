package service

import (
	"context"
	"regexp"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Service, error)
	FindByNameInsensitive(ctx context.Context, name string) (*Service, error)
	List(ctx context.Context, filter bson.M) ([]Service, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type ServiceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewServiceRepository(mongodb *database.MongodbDB) ServiceRepository {
	return &ServiceRepositoryImpl{
		Collection: mongodb.DB.Collection("services"),
	}
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *Service) error {
	_, err := r.Collection.InsertOne(ctx, service)
	return err
}

func (r *ServiceRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Service, error) {
	var service Service
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

// FindByNameInsensitive matches the whole name, ignoring case.
func (r *ServiceRepositoryImpl) FindByNameInsensitive(ctx context.Context, name string) (*Service, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	var service Service
	err := r.Collection.FindOne(ctx, bson.M{
		"name": bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}},
	}).Decode(&service)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Service, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var services []Service
	if err = cursor.All(ctx, &services); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureIndexes backs the case-insensitive duplicate pre-check with a
// collated unique index.
func (r *ServiceRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	return err
}
