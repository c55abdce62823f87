package translations

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type TranslationMongoRepository struct {
	Collection *mongo.Collection
}

func NewTranslationMongoRepository(db *mongo.Client, dbName string) contracts.TranslationRepository {
	return &TranslationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTranslations),
	}
}

func (r *TranslationMongoRepository) FindByLocale(ctx context.Context, locale string, keys []string) ([]models.Translation, error) {
	cursor, err := r.Collection.Find(ctx, queries.TranslationsByLocale(locale, keys).BSON())
	if err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	defer cursor.Close(ctx)

	var translations []models.Translation
	if err := cursor.All(ctx, &translations); err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	return translations, nil
}
