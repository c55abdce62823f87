package transaction

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) contracts.Transactor {
	return &mongoTransactor{client: client}
}

func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessionCtx)
	})
	if err == nil {
		return nil
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	return exceptions.ErrMongoDBTransaction(err)
}
