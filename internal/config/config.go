// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/platform"
)

// Config holds all runtime configuration for the tokenizer service.
type Config struct {
	Port    string
	Debug   bool
	WorkDir string
	DBPath  string

	// Usage accounting rows older than UsageRetentionDays are pruned by the
	// cron job running on PruneSchedule (6-field cron expression, seconds first).
	UsageRetentionDays int
	PruneSchedule      string
}

// Load reads environment variables and returns a Config.
// Uses sensible defaults for every field, so a bare environment works.
func Load() *Config {
	workDir := getEnv("WORK_DIR", platform.DefaultWorkDir())

	return &Config{
		Port:    getEnv("PORT", "8080"),
		Debug:   getEnvBool("DEBUG", false),
		WorkDir: workDir,
		DBPath:  getEnv("DB_PATH", platform.DataPath("tokenizer.db")),

		UsageRetentionDays: getEnvInt("USAGE_RETENTION_DAYS", 90),
		PruneSchedule:      getEnv("PRUNE_SCHEDULE", "0 0 3 * * *"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
