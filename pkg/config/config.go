package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string
	LogLevel   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ParserRulesPath points at a TOML rule table; empty means the built-in
	// default table.
	ParserRulesPath string

	// Completion threshold for escalating to the generative tier.
	RequireTitle bool
	RequirePrice bool

	GeminiAPIKeys     []string
	GeminiModel       string
	GenerativeTimeout time.Duration

	SearchAPIKey   string
	SearchEngineID string
	SearchCacheTTL time.Duration

	PriceMarkup int
	SeenExpiry  time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "broadcasts"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),

		ParserRulesPath: getEnv("PARSER_RULES_PATH", ""),
		RequireTitle:    getEnvAsBool("COMPLETE_REQUIRE_TITLE", true),
		RequirePrice:    getEnvAsBool("COMPLETE_REQUIRE_PRICE", true),

		GeminiAPIKeys:     getEnvAsList("GEMINI_API_KEYS"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GenerativeTimeout: getEnvAsDuration("GENERATIVE_TIMEOUT_SECONDS", 30) * time.Second,

		SearchAPIKey:   getEnv("GOOGLE_SEARCH_API_KEY", ""),
		SearchEngineID: getEnv("GOOGLE_SEARCH_CX", ""),
		SearchCacheTTL: getEnvAsDuration("SEARCH_CACHE_TTL_SECONDS", 3600) * time.Second,

		PriceMarkup: getEnvAsInt("PRICE_MARKUP", 20000),
		SeenExpiry:  getEnvAsDuration("SEEN_EXPIRY_HOURS", 48) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
