package program

import (
	"context"
	"regexp"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Program, error)
	FindByNameInsensitive(ctx context.Context, name string) (*Program, error)
	List(ctx context.Context, filter bson.M) ([]Program, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type ProgramRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewProgramRepository(mongodb *database.MongodbDB) ProgramRepository {
	return &ProgramRepositoryImpl{
		Collection: mongodb.DB.Collection("programs"),
	}
}

func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *Program) error {
	_, err := r.Collection.InsertOne(ctx, program)
	return err
}

func (r *ProgramRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Program, error) {
	var program Program
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&program); err != nil {
		return nil, err
	}
	return &program, nil
}

// FindByNameInsensitive matches the whole name, ignoring case.
func (r *ProgramRepositoryImpl) FindByNameInsensitive(ctx context.Context, name string) (*Program, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	var program Program
	err := r.Collection.FindOne(ctx, bson.M{
		"name": bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}},
	}).Decode(&program)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Program, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var programs []Program
	if err = cursor.All(ctx, &programs); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

func (r *ProgramRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *ProgramRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureIndexes backs the case-insensitive duplicate pre-check with a
// collated unique index.
func (r *ProgramRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	return err
}
