package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Config holds everything the service needs from the environment. The
// spreadsheet ID is the only hard requirement; Load fails fast without it.
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
	Port            int
	NtfyURL         string
	NtfyTopic       string
	SheetsRetries   int
}

func Load() (Config, error) {
	cfg := Config{
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		NtfyURL:         os.Getenv("NTFY_URL"),
		NtfyTopic:       os.Getenv("NTFY_TOPIC"),
	}

	if cfg.SpreadsheetID == "" {
		return Config{}, fmt.Errorf("SPREADSHEET_ID environment variable is required")
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	// Sheet calls are not retried unless explicitly asked for; every update
	// is a non-atomic read-modify-write and a blind replay can clobber rows.
	retries, err := getEnvInt("SHEETS_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.SheetsRetries = retries

	return cfg, nil
}

// getEnvWithDefault fetches an environment variable with a default fallback.
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid integer environment variable")
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}
