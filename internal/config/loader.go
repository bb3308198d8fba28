package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional config file (TL_CONFIG or ~/.timelogger/config.yaml)
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load the optional config file
	fileOverrides, err := loadConfigFile(configFilePath())
	if err != nil {
		return nil, err
	}
	if fileOverrides != nil {
		l.applyOverrides(l.config, fileOverrides)
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds per-source configuration overrides. The config file
// and command line flags both funnel through it; nil fields are left alone.
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Time overrides
	TimeFormat *string

	// Parser overrides
	MaxTextLength *int

	// Validation overrides
	ActivityMinLength *int
	ActivityMaxLength *int
	MaxDuration       *time.Duration

	// Display overrides
	SummaryWidth  *int
	RunningStatus *string
	DateOnly      *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Server overrides
	ServerAddr            *string
	ServerReadTimeout     *time.Duration
	ServerWriteTimeout    *time.Duration
	ServerShutdownTimeout *time.Duration
	CORSOrigins           []string
}

// applyOverrides applies overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Time overrides
	if overrides.TimeFormat != nil {
		config.Time.DisplayFormat = *overrides.TimeFormat
	}

	// Parser overrides
	if overrides.MaxTextLength != nil {
		config.Parser.MaxTextLength = *overrides.MaxTextLength
	}

	// Validation overrides
	if overrides.ActivityMinLength != nil {
		config.Validation.ActivityMinLength = *overrides.ActivityMinLength
	}
	if overrides.ActivityMaxLength != nil {
		config.Validation.ActivityMaxLength = *overrides.ActivityMaxLength
	}
	if overrides.MaxDuration != nil {
		config.Validation.MaxDuration = *overrides.MaxDuration
	}

	// Display overrides
	if overrides.SummaryWidth != nil {
		config.Display.SummaryWidth = *overrides.SummaryWidth
	}
	if overrides.RunningStatus != nil {
		config.Display.RunningStatus = *overrides.RunningStatus
	}
	if overrides.DateOnly != nil {
		config.Display.DateOnly = *overrides.DateOnly
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	// Server overrides
	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}
	if overrides.ServerReadTimeout != nil {
		config.Server.ReadTimeout = *overrides.ServerReadTimeout
	}
	if overrides.ServerWriteTimeout != nil {
		config.Server.WriteTimeout = *overrides.ServerWriteTimeout
	}
	if overrides.ServerShutdownTimeout != nil {
		config.Server.ShutdownTimeout = *overrides.ServerShutdownTimeout
	}
	if len(overrides.CORSOrigins) > 0 {
		config.Server.CORSOrigins = overrides.CORSOrigins
	}
}

// configFilePath returns the config file location: TL_CONFIG when set,
// otherwise ~/.timelogger/config.yaml.
func configFilePath() string {
	if path := os.Getenv("TL_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".timelogger", "config.yaml")
}

// fileConfig mirrors Config for the YAML config file. All fields are
// optional; durations are strings parsed with time.ParseDuration.
type fileConfig struct {
	Database struct {
		Dir          *string `yaml:"dir"`
		Filename     *string `yaml:"filename"`
		QueryTimeout *string `yaml:"query_timeout"`
		WriteTimeout *string `yaml:"write_timeout"`
	} `yaml:"database"`
	Time struct {
		DisplayFormat *string `yaml:"display_format"`
	} `yaml:"time"`
	Parser struct {
		MaxTextLength *int `yaml:"max_text_length"`
	} `yaml:"parser"`
	Validation struct {
		ActivityMinLength *int    `yaml:"activity_min_length"`
		ActivityMaxLength *int    `yaml:"activity_max_length"`
		MaxDuration       *string `yaml:"max_duration"`
	} `yaml:"validation"`
	Display struct {
		SummaryWidth  *int    `yaml:"summary_width"`
		RunningStatus *string `yaml:"running_status"`
		DateOnly      *bool   `yaml:"date_only"`
	} `yaml:"display"`
	Application struct {
		Timeout *string `yaml:"timeout"`
		Verbose *bool   `yaml:"verbose"`
	} `yaml:"application"`
	Server struct {
		Addr            *string  `yaml:"addr"`
		ReadTimeout     *string  `yaml:"read_timeout"`
		WriteTimeout    *string  `yaml:"write_timeout"`
		ShutdownTimeout *string  `yaml:"shutdown_timeout"`
		CORSOrigins     []string `yaml:"cors_origins"`
	} `yaml:"server"`
}

// loadConfigFile reads and parses the YAML config file. A missing file is
// not an error; a malformed one is.
func loadConfigFile(path string) (*ConfigOverrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return fc.toOverrides(path)
}

// toOverrides converts parsed file values into overrides, validating the
// duration strings as it goes.
func (fc *fileConfig) toOverrides(path string) (*ConfigOverrides, error) {
	overrides := &ConfigOverrides{
		DBDir:             fc.Database.Dir,
		DBFilename:        fc.Database.Filename,
		TimeFormat:        fc.Time.DisplayFormat,
		MaxTextLength:     fc.Parser.MaxTextLength,
		ActivityMinLength: fc.Validation.ActivityMinLength,
		ActivityMaxLength: fc.Validation.ActivityMaxLength,
		SummaryWidth:      fc.Display.SummaryWidth,
		RunningStatus:     fc.Display.RunningStatus,
		DateOnly:          fc.Display.DateOnly,
		Verbose:           fc.Application.Verbose,
		ServerAddr:        fc.Server.Addr,
		CORSOrigins:       fc.Server.CORSOrigins,
	}

	durations := []struct {
		field string
		value *string
		dest  **time.Duration
	}{
		{"database.query_timeout", fc.Database.QueryTimeout, &overrides.DBQueryTimeout},
		{"database.write_timeout", fc.Database.WriteTimeout, &overrides.DBWriteTimeout},
		{"validation.max_duration", fc.Validation.MaxDuration, &overrides.MaxDuration},
		{"application.timeout", fc.Application.Timeout, &overrides.Timeout},
		{"server.read_timeout", fc.Server.ReadTimeout, &overrides.ServerReadTimeout},
		{"server.write_timeout", fc.Server.WriteTimeout, &overrides.ServerWriteTimeout},
		{"server.shutdown_timeout", fc.Server.ShutdownTimeout, &overrides.ServerShutdownTimeout},
	}

	for _, d := range durations {
		if d.value == nil {
			continue
		}
		parsed, err := time.ParseDuration(*d.value)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %s: %w", path, d.field, err)
		}
		*d.dest = &parsed
	}

	return overrides, nil
}
