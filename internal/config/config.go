package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	Rows      int
	Mode      string
	Format    string
	SQLDriver string
	SQLDSN    string

	// SQLDatabase overrides the database named in a PostgreSQL DSN.
	SQLDatabase string

	// Seed is nil when generation should not be reproducible.
	Seed *int64
}

// Load reads BLOCKGENIE_* variables. A .env file in the working directory
// is applied first; variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("BLOCKGENIE_LOG_LEVEL", "info"),
		Rows:        getEnvInt("BLOCKGENIE_ROWS", 100),
		Mode:        getEnv("BLOCKGENIE_MODE", "row"),
		Format:      getEnv("BLOCKGENIE_FORMAT", "table"),
		SQLDriver:   getEnv("BLOCKGENIE_SQL_DRIVER", "sqlite3"),
		SQLDSN:      getEnv("BLOCKGENIE_SQL_DSN", ":memory:"),
		SQLDatabase: getEnv("BLOCKGENIE_SQL_DATABASE", ""),
	}
	if cfg.Rows < 0 {
		cfg.Rows = 100
	}
	if v := os.Getenv("BLOCKGENIE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &seed
		}
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}
