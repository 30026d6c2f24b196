// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	JWTSecret   string
	CORSOrigins []string
	LogLevel    string
}

// Load reads the environment. A missing .env file is not an error.
func Load() Config {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_PUBLIC_URL")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URL")
	}
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	cfg := Config{
		MongoURI:  mongoURI,
		DBName:    getenv("DB_NAME", "smartkitchen"),
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "SECRET"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	origins := getenv("CORS_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
