package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTAccessExpiry    time.Duration
	JWTRefreshExpiry   time.Duration
	RefreshTokenExpiry time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	WeatherAPIKey      string
	AirQualityAPIKey   string
	OpenRouteAPIKey    string
	VoiceRSSAPIKey     string
	PredictHQAPIKey    string
	ParkDataFile       string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 30 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	// Stored refresh-token rows are short-lived; at most one valid row per user.
	storeExpiry := 10 * time.Minute
	if exp := os.Getenv("REFRESH_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			storeExpiry = parsed
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=parkhub port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:    accessExpiry,
		JWTRefreshExpiry:   refreshExpiry,
		RefreshTokenExpiry: storeExpiry,
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/v1/auth/google/callback"),
		WeatherAPIKey:      getEnv("WEATHER_API_KEY", ""),
		AirQualityAPIKey:   getEnv("AIRQUALITY_API_KEY", ""),
		OpenRouteAPIKey:    getEnv("OPENROUTE_API_KEY", ""),
		VoiceRSSAPIKey:     getEnv("VOICERSS_API_KEY", ""),
		PredictHQAPIKey:    getEnv("PREDICTHQ_API_KEY", ""),
		ParkDataFile:       getEnv("PARK_DATA_FILE", "data/parkData.json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
