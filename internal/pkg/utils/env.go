package utils

import (
	"log"
	"os"
	"strconv"
	"time"
)

type envValue interface {
	~string | ~int | ~bool
}

func getEnv[T envValue](key string, defaultValue T) T {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		parsed, err = strconv.Atoi(value)
	case bool:
		parsed, err = strconv.ParseBool(value)
	}
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	result, ok := parsed.(T)
	if !ok {
		return defaultValue
	}
	return result
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue)
}

// GetEnvDuration reads a Go duration string such as "90s" or "1h".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return duration
}
