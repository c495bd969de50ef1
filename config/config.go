package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
)

// Config is the application configuration, loaded once at startup.
type Config struct {
	TelegramToken string
	GeminiAPIKey  string

	// PostgresDSN empty means in-memory stores (development mode).
	PostgresDSN             string
	Tenant                  string
	PostgresConnectAttempts int
	PostgresRetrySeconds    int

	MatchEpsilon         float64
	ShortReplyMaxWords   int
	MaxTurns             int
	ContextTTLHours      int
	CleanupMinutes       int
	CMHeuristic          bool
	EnableStaticFallback bool

	AllowEmptySecrets bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:           os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:            os.Getenv("GEMINI_API_KEY"),
		PostgresDSN:             os.Getenv("POSTGRES_DSN"),
		Tenant:                  getEnvString("TENANT_ID", constants.DefaultTenant),
		PostgresConnectAttempts: getEnvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", 0),
		PostgresRetrySeconds:    getEnvInt("POSTGRES_CONNECT_RETRY_SECONDS", 0),
		CMHeuristic:             getEnvBool("CM_HEURISTIC", true),
		MatchEpsilon:            getEnvFloat("MATCH_EPSILON", constants.DefaultMatchEpsilon),
		ShortReplyMaxWords:      getEnvInt("SHORT_REPLY_MAX_WORDS", constants.DefaultShortReplyMaxWords),
		MaxTurns:                getEnvInt("MAX_TURNS", constants.DefaultMaxTurns),
		ContextTTLHours:         getEnvInt("CONTEXT_TTL_HOURS", constants.DefaultContextTTLHours),
		CleanupMinutes:          getEnvInt("CLEANUP_MINUTES", constants.DefaultCleanupMinutes),
		EnableStaticFallback:    getEnvBool("ENABLE_STATIC_FALLBACK", false),
		AllowEmptySecrets:       getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
		}
		if config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is empty")
		}
	}
	if config.MatchEpsilon <= 0 {
		return nil, fmt.Errorf("MATCH_EPSILON must be positive")
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
