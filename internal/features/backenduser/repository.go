package backenduser

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BackendUserRepository interface {
	Create(ctx context.Context, user *BackendUser) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*BackendUser, error)
	FindByEmail(ctx context.Context, email string) (*BackendUser, error)
	FindByPhone(ctx context.Context, phone string) (*BackendUser, error)
	List(ctx context.Context, filter bson.M) ([]BackendUser, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type BackendUserRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBackendUserRepository(mongodb *database.MongodbDB) BackendUserRepository {
	return &BackendUserRepositoryImpl{
		Collection: mongodb.DB.Collection("backendusers"),
	}
}

func (r *BackendUserRepositoryImpl) Create(ctx context.Context, user *BackendUser) error {
	_, err := r.Collection.InsertOne(ctx, user)
	return err
}

func (r *BackendUserRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*BackendUser, error) {
	var user BackendUser
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BackendUserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*BackendUser, error) {
	var user BackendUser
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BackendUserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*BackendUser, error) {
	var user BackendUser
	if err := r.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BackendUserRepositoryImpl) List(ctx context.Context, filter bson.M) ([]BackendUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []BackendUser
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BackendUserRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) error {
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *BackendUserRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureIndexes creates sparse unique indexes on email and phone so the
// uniqueness pre-checks have a storage-layer backstop.
func (r *BackendUserRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	return err
}
