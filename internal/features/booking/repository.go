package booking

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*Booking, error)
	FindByEmail(ctx context.Context, email string) (*Booking, error)
	FindByPhone(ctx context.Context, phone string) (*Booking, error)
	List(ctx context.Context, filter bson.M) ([]Booking, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type BookingRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBookingRepository(mongodb *database.MongodbDB) BookingRepository {
	return &BookingRepositoryImpl{
		Collection: mongodb.DB.Collection("bookings"),
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *Booking) error {
	_, err := r.Collection.InsertOne(ctx, booking)
	return err
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	var booking Booking
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByEmailOrPhone(ctx context.Context, email, phone string) (*Booking, error) {
	var booking Booking
	err := r.Collection.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": email}, {"phone": phone}},
	}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByEmail(ctx context.Context, email string) (*Booking, error) {
	var booking Booking
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*Booking, error) {
	var booking Booking
	if err := r.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Booking, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *BookingRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
