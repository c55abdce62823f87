package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SweepWorkerStop if set will be called during Shutdown to stop the availability sweep
	SweepWorkerStop func()
	// EventPublisherClose if set releases the publishing channel
	EventPublisherClose func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SweepWorkerStop != nil {
		b.SweepWorkerStop()
		log.Println("Successfully stopped availability sweep worker")
	}

	if b.EventPublisherClose != nil {
		if err := b.EventPublisherClose(); err != nil {
			return err
		}
		log.Println("Successfully closing event publisher")
	}

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	// Sync on stdout returns EINVAL on some platforms
	_ = b.Logger.Sync()
	return nil
}
