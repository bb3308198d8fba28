package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
)

// Environment names recognized in TL_ENV
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// GetEnvironment returns the runtime environment from TL_ENV, defaulting to
// development for unknown values.
func GetEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("TL_ENV")))
	switch env {
	case EnvTesting, EnvProduction:
		return env
	default:
		return EnvDevelopment
	}
}

// CreateRepository creates a file-backed repository using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	// The database directory may not exist on first run
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(sqlite.Options{
		Path:         config.GetDatabasePath(),
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}

// CreateRepositoryForEnvironment picks the backing store for the current
// TL_ENV: testing runs entirely in memory, everything else hits disk.
func CreateRepositoryForEnvironment(config *Config) (sqlite.Repository, error) {
	if GetEnvironment() == EnvTesting {
		return CreateTestRepository()
	}
	return CreateRepository(config)
}
