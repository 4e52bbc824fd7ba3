// Package config reads the service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            string
	LogLevel        string
	ServiceName     string
	StoreDriver     string
	SQLitePath      string
	RedisAddr       string
	OrderLogPath    string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
	AdminToken      string
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "fantasy-books"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		SQLitePath:      getEnv("SQLITE_PATH", "fantasy_books.db"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		OrderLogPath:    getEnv("ORDER_LOG_PATH", ""),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "fantasy_books_orders"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 4),
		AdminToken:      getEnv("ADMIN_TOKEN", ""),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
