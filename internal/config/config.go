package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	JWTExpireHours int
	TMDBAPIKey     string
	TMDBBaseURL    string
	GeminiAPIKey   string
	GeminiModel    string
	FrontendURL    string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "cinepick"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		TMDBAPIKey:     getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:    getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}
