package blog

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Blog, error)
	List(ctx context.Context, filter bson.M) ([]Blog, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBlogRepository(mongodb *database.MongodbDB) BlogRepository {
	return &BlogRepositoryImpl{
		Collection: mongodb.DB.Collection("blogs"),
	}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, blog *Blog) error {
	_, err := r.Collection.InsertOne(ctx, blog)
	return err
}

func (r *BlogRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	var blog Blog
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Blog, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
