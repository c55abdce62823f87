package bookings

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return r.find(ctx, queries.ActiveBookingsOnDate(providerID, date))
}

func (r *BookingMongoRepository) FindActiveByProviderInRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.Booking, error) {
	return r.find(ctx, queries.ActiveBookingsInRange(providerID, fromDate, toDate))
}

func (r *BookingMongoRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	return r.findOne(ctx, queries.BookingByCheckoutSession(sessionID).BSON())
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": bookingID})
}

func (r *BookingMongoRepository) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := r.Collection.InsertOne(ctx, booking); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) SetCheckoutSession(ctx context.Context, bookingID, sessionID string) error {
	return r.update(ctx, bookingID, bson.M{"checkoutSessionId": sessionID})
}

func (r *BookingMongoRepository) UpdateStatus(ctx context.Context, bookingID, status string) error {
	return r.update(ctx, bookingID, bson.M{"bookingStatus": status})
}

func (r *BookingMongoRepository) update(ctx context.Context, bookingID string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	result, err := r.Collection.UpdateByID(ctx, bookingID, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound("booking")
	}
	return nil
}

func (r *BookingMongoRepository) find(ctx context.Context, filter queries.Filter) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}
