package config

import (
	"os"
)

type Config struct {
	MongoURI      string
	MongoDBName   string
	SessionSecret string
	RedisAddr     string
	Port          string
	GinMode       string
}

func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DBNAME", "task_manager"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
