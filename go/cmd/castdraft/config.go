package main

import (
	"os"
	"strconv"
)

// Config holds the server's environment configuration.
type Config struct {
	Port      string
	RedisAddr string
	RedisDB   int
	NATSURL   string // empty disables event publishing
}

func loadConfig() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),
		NATSURL:   getEnv("NATS_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
