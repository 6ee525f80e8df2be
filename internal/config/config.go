package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	BotToken    string
	AppID       string
	AdminUserID string // Discord user ID that receives admin notifications

	// Operational HTTP server
	Port int

	// Logging
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    getEnv(EnvBotToken, ""),
		AppID:       getEnv(EnvAppID, ""),
		AdminUserID: getEnv(EnvAdminUserID, ""),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("%s environment variable must be set", EnvBotToken)
	}
	if c.AdminUserID == "" {
		return fmt.Errorf("%s environment variable must be set", EnvAdminUserID)
	}
	if _, err := strconv.ParseInt(c.AdminUserID, 10, 64); err != nil {
		return fmt.Errorf("%s must be a numeric user id: %w", EnvAdminUserID, err)
	}
	return nil
}

// AdminID returns the admin user id as a number. Validate guarantees it
// parses.
func (c *Config) AdminID() int64 {
	id, _ := strconv.ParseInt(c.AdminUserID, 10, 64)
	return id
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
