package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Redis RedisConfig
	DB    DBConfig
	Auth  AuthConfig
	HTTP  HTTPConfig
}

type DBConfig struct {
	DSN string
}

type AuthConfig struct {
	TokenTTL int // hours
}

type HTTPConfig struct {
	Port string
}

func LoadConfig() Config {
	tokenTTL, err := strconv.Atoi(getEnv("AUTH_TOKEN_TTL_HOURS", "8"))
	if err != nil || tokenTTL <= 0 {
		log.Println("Invalid AUTH_TOKEN_TTL_HOURS, falling back to 8")
		tokenTTL = 8
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return Config{
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		DB: DBConfig{
			DSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=abarateira port=5432 sslmode=disable"),
		},
		Auth: AuthConfig{
			TokenTTL: tokenTTL,
		},
		HTTP: HTTPConfig{
			Port: getEnv("HTTP_PORT", "8080"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
