package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// APIBaseURL is the ordering backend the apps talk to.
func APIBaseURL() string {
	return getenv("API_BASE_URL", "http://localhost:8000")
}

func HTTPTimeout() time.Duration {
	raw := getenv("HTTP_TIMEOUT", "30s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[CONFIG] bad HTTP_TIMEOUT %q, using 30s", raw)
		return 30 * time.Second
	}
	return d
}

// StorageDir holds the local snapshot files (cart, identity, token).
func StorageDir() string {
	if v := os.Getenv("STORAGE_DIR"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dishorder"
	}
	return home + "/.dishorder"
}

func JWTSecret() []byte {
	return []byte(getenv("JWT_SECRET", "dishorder-local-dev"))
}

func StubAddr() string {
	return getenv("STUB_ADDR", ":8000")
}

// RedisAddr is empty when the file-backed snapshot store should be used.
func RedisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + getenv("REDIS_PORT", "6379")
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	return client
}
