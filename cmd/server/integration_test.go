package main

import (
	"os"
	"testing"

	"todo-manager/backend/internal/config"
)

func TestApplicationStartup(t *testing.T) {
	os.Setenv("ENVIRONMENT", "development")
	os.Setenv("DB_DRIVER", "sqlite")
	os.Setenv("REDIS_HOST", "localhost")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("REDIS_HOST")
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg == nil {
		t.Fatal("Configuration should not be nil")
	}

	if cfg.GetDatabaseDSN() == "" {
		t.Error("Expected a database DSN")
	}

	t.Log("Application configuration loaded successfully")
}

func TestProductionSqliteStartup(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("DB_DRIVER", "sqlite")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("DB_DRIVER")
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("Expected production environment")
	}
}

func TestConfigurationValues(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		expected string
	}{
		{
			name:     "ENVIRONMENT environment variable",
			envVar:   "ENVIRONMENT",
			envValue: "production",
			expected: "production",
		},
		{
			name:     "DB_DRIVER environment variable",
			envVar:   "DB_DRIVER",
			envValue: "postgres",
			expected: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.envVar, tt.envValue)
			defer os.Unsetenv(tt.envVar)

			value := os.Getenv(tt.envVar)
			if value != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, value)
			}
		})
	}
}
