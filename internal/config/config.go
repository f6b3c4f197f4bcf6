package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	OpenAIAPIKey  string
	Model         string
	AllowedOrigin string
	// Database
	DatabaseURL   string
	MigrationsDir string
	// Path to the intent prompt spec
	IntentSpecPath string
	// How many announcements the context carries
	AnnouncementLimit int
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:              getEnvDefault("PORT", "8080"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:             getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AllowedOrigin:     getEnvDefault("ALLOWED_ORIGIN", "*"),
		DatabaseURL:       os.Getenv("DB_URL"),
		MigrationsDir:     getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		IntentSpecPath:    getEnvDefault("INTENT_SPEC_PATH", "./prompts/intent.yaml"),
		AnnouncementLimit: getEnvIntDefault("ANNOUNCEMENT_LIMIT", 5),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
