package childissue

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChildIssueRepository interface {
	Create(ctx context.Context, issue *ChildIssue) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*ChildIssue, error)
	FindByName(ctx context.Context, name string) (*ChildIssue, error)
	List(ctx context.Context, filter bson.M) ([]ChildIssue, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type ChildIssueRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewChildIssueRepository(mongodb *database.MongodbDB) ChildIssueRepository {
	return &ChildIssueRepositoryImpl{
		Collection: mongodb.DB.Collection("childissues"),
	}
}

func (r *ChildIssueRepositoryImpl) Create(ctx context.Context, issue *ChildIssue) error {
	_, err := r.Collection.InsertOne(ctx, issue)
	return err
}

func (r *ChildIssueRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*ChildIssue, error) {
	var issue ChildIssue
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// FindByName matches the stored name exactly, case included.
func (r *ChildIssueRepositoryImpl) FindByName(ctx context.Context, name string) (*ChildIssue, error) {
	var issue ChildIssue
	if err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *ChildIssueRepositoryImpl) List(ctx context.Context, filter bson.M) ([]ChildIssue, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var issues []ChildIssue
	if err = cursor.All(ctx, &issues); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

func (r *ChildIssueRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *ChildIssueRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ChildIssueRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
