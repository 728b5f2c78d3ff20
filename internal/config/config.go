package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	// Cron schedules for the two refresh sweeps and the search index sync.
	CurrentPeriodSchedule string
	OlderPeriodsSchedule  string
	UserIndexSchedule     string

	// Fallback when the site settings store has no enable_user_directory
	// entry (or is unreachable).
	DirectoryEnabledDefault bool
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CurrentPeriodSchedule: getEnv("DIRECTORY_REFRESH_CURRENT", "@every 1h"),
		OlderPeriodsSchedule:  getEnv("DIRECTORY_REFRESH_OLDER", "@every 24h"),
		UserIndexSchedule:     getEnv("DIRECTORY_USER_INDEX_SYNC", "@every 24h"),

		DirectoryEnabledDefault: getBoolEnv("DIRECTORY_ENABLED_DEFAULT", true),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
