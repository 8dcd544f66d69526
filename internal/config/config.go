package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	DBPath         string
	UploadsDir     string
	AdminSecretKey string
	MongoURI       string
}

type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		DBPath:         getEnv("DB_PATH", "./marketplace.db"),
		UploadsDir:     getEnv("UPLOADS_DIR", "./uploads"),
		AdminSecretKey: os.Getenv("ADMIN_SECRET_KEY"),
		MongoURI:       os.Getenv("MONGO_URI"),
	}
}

func LoadJWT() *JWTConfig {
	ttlMinutes := 60
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlMinutes = n
		}
	}

	return &JWTConfig{
		Secret: []byte(getEnv("JWT_SECRET", "dev-secret-change-me")),
		TTL:    time.Duration(ttlMinutes) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
