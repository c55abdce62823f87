package messages

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/queries"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) Create(ctx context.Context, message *models.Message) error {
	if _, err := r.Collection.InsertOne(ctx, message); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindConversation returns the latest limit messages exchanged between
// userID and peerID, oldest first.
func (r *MessageMongoRepository) FindConversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, queries.Conversation(userID, peerID).BSON(), opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBFindManyDocuments(err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
