package config

import "time"

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port           string
		Host           string
		Username       string
		Password       string
		ReplicaSet     string
		ConnectTimeout time.Duration
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
