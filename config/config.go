package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the service configuration read from the environment
type Config struct {
	Env         string
	Port        string
	BaseURL     string
	SeedFile    string
	ChromePath  string
	LogoPath    string
	PostgresCfg PostgresConfig
	DriveCfg    DriveConfig
}

// PostgresConfig holds database connection settings.
// DatabaseURL, when set, takes precedence over the individual fields.
type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// DriveConfig holds Google Drive export settings
type DriveConfig struct {
	CredentialsPath string
	ExportFolderID  string
}

// Load builds the configuration from environment variables
func Load() *Config {
	port := strings.TrimPrefix(getEnvOrDefault("PORT", "8080"), ":")
	return &Config{
		Env:        getEnvOrDefault("ENV", "development"),
		Port:       port,
		BaseURL:    strings.TrimSuffix(getEnvOrDefault("BASE_URL", "http://localhost:"+port), "/"),
		SeedFile:   getEnvOrDefault("SEED_FILE", ""),
		ChromePath: getEnvOrDefault("CHROME_PATH", ""),
		LogoPath:   getEnvOrDefault("QUOTE_LOGO_PATH", "static/quote/logo.png"),
		PostgresCfg: PostgresConfig{
			DatabaseURL: getEnvOrDefault("DATABASE_URL", ""),
			Host:        getEnvOrDefault("DB_HOST", ""),
			Port:        getEnvOrDefault("DB_PORT", "5432"),
			User:        getEnvOrDefault("DB_USER", ""),
			Password:    getEnvOrDefault("DB_PASSWORD", ""),
			DBName:      getEnvOrDefault("DB_NAME", ""),
			SSLMode:     getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		DriveCfg: DriveConfig{
			CredentialsPath: getEnvOrDefault("GOOGLE_APPLICATION_CREDENTIALS", ""),
			ExportFolderID:  getEnvOrDefault("QUOTE_EXPORT_FOLDER_ID", ""),
		},
	}
}

// DSN returns the Postgres connection string
func (c PostgresConfig) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.Host == "" || c.User == "" || c.DBName == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode), nil
}

// DriveEnabled reports whether quote documents can be exported to Drive
func (c *Config) DriveEnabled() bool {
	return c.DriveCfg.CredentialsPath != "" && c.DriveCfg.ExportFolderID != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
