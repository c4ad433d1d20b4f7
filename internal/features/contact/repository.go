package contact

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Contact, error)
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*Contact, error)
	List(ctx context.Context, filter bson.M) ([]Contact, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type ContactRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewContactRepository(mongodb *database.MongodbDB) ContactRepository {
	return &ContactRepositoryImpl{
		Collection: mongodb.DB.Collection("contacts"),
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *Contact) error {
	_, err := r.Collection.InsertOne(ctx, contact)
	return err
}

func (r *ContactRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Contact, error) {
	var contact Contact
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindByEmailAndPhone(ctx context.Context, email, phone string) (*Contact, error) {
	var contact Contact
	err := r.Collection.FindOne(ctx, bson.M{"email": email, "phone": phone}).Decode(&contact)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Contact, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var contacts []Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ContactRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
