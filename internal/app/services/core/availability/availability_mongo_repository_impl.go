package availability

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"context"
	"sort"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

func (r *AvailabilityMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.AvailabilityRecord, error) {
	return r.find(ctx, queries.AvailabilityByProvider(providerID))
}

func (r *AvailabilityMongoRepository) FindByProviderIDAndDateRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityRecord, error) {
	return r.find(ctx, queries.AvailabilityByProviderDateRange(providerID, fromDate, toDate))
}

func (r *AvailabilityMongoRepository) UpsertMany(ctx context.Context, records []models.AvailabilityRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(records))
	for _, record := range records {
		filter := queries.AvailabilitySlotKey(record.ProviderID, record.Date, record.Time).BSON()
		update := bson.M{
			"$set":         bson.M{"isAvailable": record.IsAvailable},
			"$setOnInsert": bson.M{"_id": uuid.NewString()},
		}
		writes = append(writes, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
	}

	result, err := r.Collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return int(result.UpsertedCount + result.MatchedCount), nil
}

func (r *AvailabilityMongoRepository) DeleteOnDate(ctx context.Context, providerID, date string, times []string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, queries.AvailabilityDeleteOnDate(providerID, date, times).BSON())
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *AvailabilityMongoRepository) DistinctProviderIDs(ctx context.Context) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "providerId", bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBDistinct(err)
	}
	providerIDs := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok && id != "" {
			providerIDs = append(providerIDs, id)
		}
	}
	sort.Strings(providerIDs)
	return providerIDs, nil
}

func (r *AvailabilityMongoRepository) find(ctx context.Context, filter queries.Filter) ([]models.AvailabilityRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	defer cursor.Close(ctx)

	var records []models.AvailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	return records, nil
}
