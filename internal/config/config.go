// Package config loads service settings from the environment through viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Model stores.
const (
	ModelStoreStatic = "static"
	ModelStoreS3     = "s3"
)

// Config is the full service configuration.
type Config struct {
	AppPort string

	StorageDriver   string
	DatabaseDSN     string
	DatabaseRetries int
	SeedData        bool
	RabbitMQURL     string
	MetricsEnabled  bool
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	ChatTimeout     time.Duration
	ModelStore      string
	ModelBaseURL    string
	ModelsDir       string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PathStyle     bool
	S3AccessKeyID   string
	S3SecretKey     string
	S3PresignTTL    time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("DATABASE_CONNECT_RETRIES", 5)
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("CHAT_TIMEOUT", 20*time.Second)
	v.SetDefault("MODEL_STORE", ModelStoreStatic)
	v.SetDefault("MODEL_BASE_URL", "")
	v.SetDefault("MODELS_DIR", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PATH_STYLE", false)
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_PRESIGN_TTL", 15*time.Minute)
}

// Load reads the configuration from v, falling back to defaults and
// environment variables.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		AppPort:         v.GetString("APP_PORT"),
		StorageDriver:   v.GetString("STORAGE_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		DatabaseRetries: v.GetInt("DATABASE_CONNECT_RETRIES"),
		SeedData:        v.GetBool("SEED_DATA"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:   v.GetString("GEMINI_BASE_URL"),
		ChatTimeout:     v.GetDuration("CHAT_TIMEOUT"),
		ModelStore:      v.GetString("MODEL_STORE"),
		ModelBaseURL:    v.GetString("MODEL_BASE_URL"),
		ModelsDir:       v.GetString("MODELS_DIR"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Region:        v.GetString("S3_REGION"),
		S3Endpoint:      v.GetString("S3_ENDPOINT"),
		S3PathStyle:     v.GetBool("S3_PATH_STYLE"),
		S3AccessKeyID:   v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretKey:     v.GetString("S3_SECRET_ACCESS_KEY"),
		S3PresignTTL:    v.GetDuration("S3_PRESIGN_TTL"),
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres, StorageSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for storage driver %q", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	switch c.ModelStore {
	case ModelStoreStatic:
	case ModelStoreS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for model store %q", c.ModelStore)
		}
	default:
		return fmt.Errorf("unknown model store %q", c.ModelStore)
	}

	if c.DatabaseRetries < 1 {
		return fmt.Errorf("DATABASE_CONNECT_RETRIES must be at least 1, got %d", c.DatabaseRetries)
	}
	return nil
}
