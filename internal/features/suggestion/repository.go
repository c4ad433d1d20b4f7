package suggestion

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *Suggestion) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Suggestion, error)
	FindByEmail(ctx context.Context, email string) (*Suggestion, error)
	List(ctx context.Context, filter bson.M) ([]Suggestion, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type SuggestionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSuggestionRepository(mongodb *database.MongodbDB) SuggestionRepository {
	return &SuggestionRepositoryImpl{
		Collection: mongodb.DB.Collection("suggestions"),
	}
}

func (r *SuggestionRepositoryImpl) Create(ctx context.Context, suggestion *Suggestion) error {
	_, err := r.Collection.InsertOne(ctx, suggestion)
	return err
}

func (r *SuggestionRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Suggestion, error) {
	var suggestion Suggestion
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepositoryImpl) FindByEmail(ctx context.Context, email string) (*Suggestion, error) {
	var suggestion Suggestion
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Suggestion, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var suggestions []Suggestion
	if err = cursor.All(ctx, &suggestions); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}

func (r *SuggestionRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *SuggestionRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *SuggestionRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
