package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Storage backends selectable at startup.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string
	AppEnv      string
	SentryDSN   string

	// Storage
	StorageBackend string
	DataDir        string
	WorkspaceKey   string

	// Database (postgres backend only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func Load() *Config {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		AppEnv:      getEnv("APP_ENV", "development"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		DataDir:        getEnv("DATA_DIR", "data"),
		WorkspaceKey:   getEnv("WORKSPACE_KEY", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "callsheet"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
