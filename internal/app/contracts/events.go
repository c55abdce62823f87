package contracts

import "context"

type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}) error
}
