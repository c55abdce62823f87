package config

import (
	"caremarket-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:           utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:           utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:       utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:       utils.GetEnvString("MONGODB_PASSWORD", ""),
			ReplicaSet:     utils.GetEnvString("MONGODB_REPLICA_SET", "rs0"),
			ConnectTimeout: utils.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}
