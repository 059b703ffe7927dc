// config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// StorageConfig holds the object-storage identity and bucket names.
// Replay data is spread over several buckets; ReplayBuckets is indexed
// by shard.
type StorageConfig struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string

	CompilationBucket string
	BotBucket         string
	ReplayBuckets     []string
	ErrorLogBucket    string
}

// Config is the full environment-derived configuration for the data layer.
type Config struct {
	DatabaseURL string
	Storage     StorageConfig
}

// Load reads configuration from the environment, preferring a local .env
// file when one exists. Missing required values are an error so the
// process can refuse to start instead of limping along.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Storage: StorageConfig{
			AccountID:         os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:       os.Getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret:   os.Getenv("R2_ACCESS_KEY_SECRET"),
			CompilationBucket: os.Getenv("COMPILATION_BUCKET"),
			BotBucket:         os.Getenv("BOT_BUCKET"),
			ReplayBuckets:     splitList(os.Getenv("REPLAY_BUCKETS")),
			ErrorLogBucket:    os.Getenv("ERROR_LOG_BUCKET"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	if cfg.Storage.CompilationBucket == "" {
		return nil, fmt.Errorf("COMPILATION_BUCKET environment variable not set")
	}
	if cfg.Storage.BotBucket == "" {
		return nil, fmt.Errorf("BOT_BUCKET environment variable not set")
	}
	if len(cfg.Storage.ReplayBuckets) == 0 {
		return nil, fmt.Errorf("REPLAY_BUCKETS environment variable not set")
	}
	if cfg.Storage.ErrorLogBucket == "" {
		return nil, fmt.Errorf("ERROR_LOG_BUCKET environment variable not set")
	}

	return cfg, nil
}

// splitList parses a comma-separated env value, trimming whitespace and
// dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
