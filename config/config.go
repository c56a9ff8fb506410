package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the values the service reads from the environment.
type Config struct {
	MongoURI  string
	Port      string
	DBName    string
	JWTSecret string // empty disables auth
}

// Load reads configuration from a .env file (if present) and the
// environment. MONGODB_URI is required; everything else has a default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Println("no .env file found, using environment variables only")
		} else {
			log.Printf("could not load .env file: %v", err)
		}
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}

	return &Config{
		MongoURI:  uri,
		Port:      getEnv("PORT", "5000"),
		DBName:    getEnv("MONGODB_DB", "chatstore"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
