package config

import (
	"fmt"
	"os"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	Driver  string // "json" or "postgres"
	DataDir string // json driver only
	DB      DatabaseConfig
}

type Config struct {
	HTTPPort       string
	LogLevel       string
	CSRFProtection bool
	Storage        StorageConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CSRFProtection: getEnv("CSRF_PROTECTION", "false") == "true",
		Storage: StorageConfig{
			Driver:  getEnv("STORAGE_DRIVER", "json"),
			DataDir: getEnv("DATA_DIR", "data"),
			DB: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "contacthub"),
				Password: getEnv("DB_PASSWORD", "contacthub"),
				DBName:   getEnv("DB_NAME", "contacthub"),
			},
		},
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (db *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		db.Host, db.Port, db.User, db.Password, db.DBName)
}
