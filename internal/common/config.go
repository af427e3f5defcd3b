package common

import (
	"os"
	"strconv"
	"time"

	"github.com/fieldlog/fieldlog/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Local    LocalStoreConfig
	Refine   RefineConfig
	Lock     LockConfig
	Sync     SyncConfig
}

// DatabaseConfig holds remote-store (Postgres) configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// LocalStoreConfig holds the embedded local store configuration
type LocalStoreConfig struct {
	Path       string
	SyncWrites bool
}

// RefineConfig holds refinement-webhook configuration
type RefineConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// LockConfig holds edit-lock timing configuration
type LockConfig struct {
	HeartbeatInterval time.Duration
	StaleAfter        time.Duration
}

// SyncConfig holds reconciler configuration
type SyncConfig struct {
	MaxRetries       int
	AutosaveDebounce time.Duration
	AutosaveMin      time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Local: LocalStoreConfig{
			Path:       getEnv("LOCAL_STORE_PATH", "./data/local"),
			SyncWrites: getEnvAsBool("LOCAL_STORE_SYNC_WRITES", true),
		},
		Refine: RefineConfig{
			WebhookURL: getEnv("REFINE_WEBHOOK_URL", ""),
			Timeout:    getEnvAsDuration("REFINE_TIMEOUT", constants.RefineTimeout),
		},
		Lock: LockConfig{
			HeartbeatInterval: getEnvAsDuration("LOCK_HEARTBEAT_INTERVAL", constants.LockHeartbeatInterval),
			StaleAfter:        getEnvAsDuration("LOCK_STALE_AFTER", constants.LockStaleAfter),
		},
		Sync: SyncConfig{
			MaxRetries:       getEnvAsInt("SYNC_MAX_RETRIES", constants.SyncMaxRetries),
			AutosaveDebounce: getEnvAsDuration("AUTOSAVE_DEBOUNCE", constants.AutosaveDebounce),
			AutosaveMin:      getEnvAsDuration("AUTOSAVE_MIN_DEBOUNCE", constants.AutosaveMinDebounce),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Local.Path == "" {
		return NewAppError("CONFIG_ERROR", "LOCAL_STORE_PATH is required", ErrInvalidInput)
	}
	if c.Refine.WebhookURL == "" {
		return NewAppError("CONFIG_ERROR", "REFINE_WEBHOOK_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
