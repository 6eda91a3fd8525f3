package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is the application configuration, loaded from environment
// variables.
type Config struct {
	Host string `json:"host"`
	Port int    `json:"port"`

	// StoreBackend selects the document store: "memory" or "dynamodb".
	StoreBackend string `json:"store_backend"`
	TableName    string `json:"table_name"`
	// DynamoLocalPort, when set, points the DynamoDB client at a local
	// endpoint instead of AWS. Development only.
	DynamoLocalPort int `json:"dynamo_local_port"`

	LogLevel  string `json:"log_level"`
	JWTSecret string `json:"jwt_secret"`
}

// String returns a representation of Config with sensitive data masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Host: %s, Port: %d, StoreBackend: %s, TableName: %s, LogLevel: %s, JWTSecret: [REDACTED]}",
		c.Host, c.Port, c.StoreBackend, c.TableName, c.LogLevel)
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads the configuration from environment variables, applying
// defaults where unset.
func LoadConfig() (*Config, error) {
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}
	localPort, err := strconv.Atoi(GetEnvWithDefault("DYNAMODB_LOCAL_PORT", "0"))
	if err != nil {
		return nil, err
	}
	config := &Config{
		Host:            GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		Port:            port,
		StoreBackend:    GetEnvWithDefault("STORE_BACKEND", StoreBackendMemory),
		TableName:       GetEnvWithDefault("TABLE_NAME", "RecipeCatalog"),
		DynamoLocalPort: localPort,
		LogLevel:        GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}
	switch config.StoreBackend {
	case StoreBackendMemory, StoreBackendDynamoDB:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %s", config.StoreBackend)
	}
	if config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	return config, nil
}

// GetEnvWithDefault is a helper to get an environment variable with a
// default value.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
