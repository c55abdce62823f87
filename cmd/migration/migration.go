package migration

import (
	"caremarket-service/internal/pkg/constvars"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var indexes = map[string][]mongo.IndexModel{
	constvars.MongoCollectionAvailabilities: {
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
	constvars.MongoCollectionProfiles: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "specialty", Value: 1}, {Key: "hourlyRate", Value: 1}}},
		{Keys: bson.D{{Key: "availability", Value: 1}}},
	},
	constvars.MongoCollectionBookings: {
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "bookingStatus", Value: 1}}},
		{
			Keys:    bson.D{{Key: "checkoutSessionId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	},
	constvars.MongoCollectionMessages: {
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "recipientId", Value: 1}, {Key: "timestamp", Value: -1}}},
	},
	constvars.MongoCollectionTranslations: {
		{
			Keys:    bson.D{{Key: "locale", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}

// Run creates the indexes every collection relies on. It is idempotent.
func Run(ctx context.Context, client *mongo.Client, dbName string, log *zap.Logger) error {
	db := client.Database(dbName)
	for collection, models := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Error("migration.Run error creating indexes",
				zap.String("collection", collection),
				zap.Error(err),
			)
			return err
		}
		log.Info("migration.Run ensured indexes",
			zap.String("collection", collection),
			zap.Strings("indexes", names),
		)
	}
	return nil
}
