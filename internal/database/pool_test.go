package database

import (
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestDefaultPoolConfig(t *testing.T) {
	config := DefaultPoolConfig()

	if config.Driver != DriverSQLite {
		t.Errorf("Expected Driver to be sqlite, got %s", config.Driver)
	}

	if config.MaxOpenConns != 25 {
		t.Errorf("Expected MaxOpenConns to be 25, got %d", config.MaxOpenConns)
	}

	if config.MaxIdleConns != 10 {
		t.Errorf("Expected MaxIdleConns to be 10, got %d", config.MaxIdleConns)
	}

	if config.ConnMaxLifetime != time.Hour {
		t.Errorf("Expected ConnMaxLifetime to be 1 hour, got %v", config.ConnMaxLifetime)
	}

	if config.ConnMaxIdleTime != time.Minute*30 {
		t.Errorf("Expected ConnMaxIdleTime to be 30 minutes, got %v", config.ConnMaxIdleTime)
	}

	if config.LogLevel != logger.Info {
		t.Errorf("Expected LogLevel to be Info, got %v", config.LogLevel)
	}
}

func TestNewDatabasePool_WithNilConfig(t *testing.T) {
	_, err := NewDatabasePool(nil)

	if err == nil {
		t.Error("Expected error due to empty DSN, got nil")
	}

	if err != nil && err.Error() == "" {
		t.Error("Expected non-empty error message")
	}
}

func TestNewDatabasePool_SQLiteInMemory(t *testing.T) {
	config := &PoolConfig{
		Driver:          DriverSQLite,
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute * 30,
		LogLevel:        logger.Silent,
	}

	pool, err := NewDatabasePool(config)
	if err != nil {
		t.Fatalf("Failed to create sqlite pool: %v", err)
	}
	defer pool.Close()

	if !pool.DB.Migrator().HasTable("todos") {
		t.Error("Expected todos table to be migrated")
	}

	if err := pool.Health(); err != nil {
		t.Errorf("Expected healthy pool, got: %v", err)
	}

	stats := pool.Stats()
	if _, hasError := stats["error"]; hasError {
		t.Errorf("Unexpected error in stats: %v", stats["error"])
	}
}

func TestNewDatabasePool_WithInvalidPostgresDSN(t *testing.T) {
	config := &PoolConfig{
		Driver:          DriverPostgres,
		DSN:             "invalid://connection:string",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute * 30,
		ConnMaxIdleTime: time.Minute * 15,
		LogLevel:        logger.Silent,
	}

	_, err := NewDatabasePool(config)

	if err == nil {
		t.Error("Expected error due to invalid DSN, got nil")
	}
}

func TestNewDatabasePool_WithUnknownDriver(t *testing.T) {
	config := &PoolConfig{
		Driver:          "oracle",
		DSN:             ":memory:",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute * 30,
		LogLevel:        logger.Silent,
	}

	_, err := NewDatabasePool(config)

	if err == nil {
		t.Error("Expected error for unknown driver, got nil")
	}
}

func TestDatabasePool_Stats_WithoutConnection(t *testing.T) {
	pool := &DatabasePool{
		DB: nil,
		config: &PoolConfig{
			MaxOpenConns: 10,
		},
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Stats() should handle nil DB gracefully, but got panic: %v", r)
		}
	}()

	stats := pool.Stats()

	if _, hasError := stats["error"]; !hasError {
		t.Error("Expected error in stats when DB is nil")
	}
}

func TestDatabasePool_Health_WithoutConnection(t *testing.T) {
	pool := &DatabasePool{
		DB: nil,
	}

	err := pool.Health()

	if err == nil {
		t.Error("Expected error when checking health with nil DB")
	}
}

func TestDatabasePool_Close_WithoutConnection(t *testing.T) {
	pool := &DatabasePool{
		DB: nil,
	}

	err := pool.Close()

	if err != nil {
		t.Errorf("Expected no error when closing nil DB, got: %v", err)
	}
}

func TestPoolConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		config *PoolConfig
	}{
		{
			name: "Zero values configuration",
			config: &PoolConfig{
				DSN:             "",
				MaxOpenConns:    0,
				MaxIdleConns:    0,
				ConnMaxLifetime: 0,
				ConnMaxIdleTime: 0,
				LogLevel:        logger.Silent,
			},
		},
		{
			name: "Negative values configuration",
			config: &PoolConfig{
				Driver:          DriverSQLite,
				DSN:             ":memory:",
				MaxOpenConns:    -1,
				MaxIdleConns:    -1,
				ConnMaxLifetime: -time.Hour,
				ConnMaxIdleTime: -time.Minute,
				LogLevel:        logger.Silent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatabasePool(tt.config)

			if err == nil {
				t.Error("Expected error but pool creation succeeded")
			}
		})
	}
}

func BenchmarkDefaultPoolConfig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DefaultPoolConfig()
	}
}
