package database

import (
	"caremarket-service/internal/app/config"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDB connects to a replica set; availability writes use
// multi-document transactions which standalone servers do not support.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	var credentials string
	if driverConfig.MongoDB.Username != "" {
		credentials = fmt.Sprintf("%s:%s@", driverConfig.MongoDB.Username, driverConfig.MongoDB.Password)
	}
	connectionString := fmt.Sprintf(
		"mongodb://%s%s:%s/?replicaSet=%s",
		credentials,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
		driverConfig.MongoDB.ReplicaSet,
	)

	ctx, cancel := context.WithTimeout(context.Background(), driverConfig.MongoDB.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}
