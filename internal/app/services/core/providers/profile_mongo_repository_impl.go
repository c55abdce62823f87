package providers

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

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (r *ProfileMongoRepository) FindByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	return r.findOne(ctx, bson.M{"_id": profileID}, options.FindOne())
}

// FindFirstByUserID returns the oldest profile owned by userID.
func (r *ProfileMongoRepository) FindFirstByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findOne(ctx, queries.ProfileByUserID(userID).BSON(), opts)
}

func (r *ProfileMongoRepository) Search(ctx context.Context, filter queries.Filter, page, pageSize int) ([]models.ProviderProfile, int, error) {
	query := filter.BSON()

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.ProviderProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	return profiles, int(total), nil
}

// Upsert writes only the editable fields and returns the stored document.
// Availability is seeded on insert and otherwise left to the resync path.
func (r *ProfileMongoRepository) Upsert(ctx context.Context, profile *models.ProviderProfile) (*models.ProviderProfile, error) {
	update := bson.M{
		"$set": bson.M{
			"name":       profile.Name,
			"specialty":  profile.Specialty,
			"bio":        profile.Bio,
			"hourlyRate": profile.HourlyRate,
			"currency":   profile.Currency,
			"updatedAt":  profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":       profile.UserID,
			"availability": []string{},
			"createdAt":    profile.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.ProviderProfile
	if err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": profile.ID}, update, opts).Decode(&saved); err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &saved, nil
}

func (r *ProfileMongoRepository) UpdateAvailability(ctx context.Context, profileID string, availability []string) error {
	if availability == nil {
		availability = []string{}
	}
	return r.set(ctx, profileID, bson.M{"availability": availability})
}

func (r *ProfileMongoRepository) UpdatePhotoObject(ctx context.Context, profileID, photoObject string) error {
	return r.set(ctx, profileID, bson.M{"photoObject": photoObject})
}

func (r *ProfileMongoRepository) set(ctx context.Context, profileID string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	result, err := r.Collection.UpdateByID(ctx, profileID, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound("provider profile")
	}
	return nil
}

func (r *ProfileMongoRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
