package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the time logger application
type Config struct {
	Database    DatabaseConfig
	Time        TimeConfig
	Parser      ParserConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Server      ServerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TL_DB_DIR"`
	Filename       string        `env:"TL_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TL_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TL_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TL_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"TL_TIME_DISPLAY_FORMAT"`
}

// ParserConfig holds natural language parser configuration
type ParserConfig struct {
	MaxTextLength int `env:"TL_PARSER_MAX_TEXT_LENGTH"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ActivityMinLength int           `env:"TL_VALIDATION_ACTIVITY_MIN"`
	ActivityMaxLength int           `env:"TL_VALIDATION_ACTIVITY_MAX"`
	MaxDuration       time.Duration `env:"TL_VALIDATION_MAX_DURATION"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	SummaryWidth  int    `env:"TL_DISPLAY_SUMMARY_WIDTH"`
	RunningStatus string `env:"TL_DISPLAY_RUNNING_STATUS"`
	DateOnly      bool   `env:"TL_DISPLAY_DATE_ONLY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TL_APP_TIMEOUT"`
	Verbose bool          `env:"TL_APP_VERBOSE"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TL_SERVER_ADDR"`
	ReadTimeout     time.Duration `env:"TL_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"TL_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"TL_SERVER_SHUTDOWN_TIMEOUT"`
	CORSOrigins     []string      `env:"TL_SERVER_CORS_ORIGINS"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timelogger")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timelogger.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Parser: ParserConfig{
			MaxTextLength: 1000,
		},
		Validation: ValidationConfig{
			ActivityMinLength: 1,
			ActivityMaxLength: 255,
			MaxDuration:       24 * time.Hour,
		},
		Display: DisplayConfig{
			SummaryWidth:  75,
			RunningStatus: "running",
			DateOnly:      false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TL_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TL_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TL_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TL_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TL_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Time configuration
	if format := os.Getenv("TL_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Parser configuration
	if maxLen := os.Getenv("TL_PARSER_MAX_TEXT_LENGTH"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Parser.MaxTextLength = n
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TL_VALIDATION_ACTIVITY_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.ActivityMinLength = n
		}
	}
	if maxLen := os.Getenv("TL_VALIDATION_ACTIVITY_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ActivityMaxLength = n
		}
	}
	if maxDur := os.Getenv("TL_VALIDATION_MAX_DURATION"); maxDur != "" {
		if d, err := time.ParseDuration(maxDur); err == nil {
			c.Validation.MaxDuration = d
		}
	}

	// Display configuration
	if width := os.Getenv("TL_DISPLAY_SUMMARY_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.SummaryWidth = w
		}
	}
	if status := os.Getenv("TL_DISPLAY_RUNNING_STATUS"); status != "" {
		c.Display.RunningStatus = status
	}
	if dateOnly := os.Getenv("TL_DISPLAY_DATE_ONLY"); dateOnly != "" {
		if b, err := strconv.ParseBool(dateOnly); err == nil {
			c.Display.DateOnly = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("TL_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Server configuration
	if addr := os.Getenv("TL_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TL_SERVER_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ReadTimeout = d
		}
	}
	if timeout := os.Getenv("TL_SERVER_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.WriteTimeout = d
		}
	}
	if timeout := os.Getenv("TL_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}
	if origins := os.Getenv("TL_SERVER_CORS_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			c.Server.CORSOrigins = cleaned
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate time configuration
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	// Validate parser configuration
	if c.Parser.MaxTextLength < 1 {
		return &ConfigError{Field: "parser.max_text_length", Message: "max text length must be at least 1"}
	}

	// Validate validation configuration
	if c.Validation.ActivityMinLength < 1 {
		return &ConfigError{Field: "validation.activity_min_length", Message: "activity minimum length must be at least 1"}
	}
	if c.Validation.ActivityMaxLength < c.Validation.ActivityMinLength {
		return &ConfigError{Field: "validation.activity_max_length", Message: "activity maximum length must be greater than minimum length"}
	}
	if c.Validation.MaxDuration <= 0 {
		return &ConfigError{Field: "validation.max_duration", Message: "max duration must be positive"}
	}

	// Validate display configuration
	if c.Display.SummaryWidth < 10 {
		return &ConfigError{Field: "display.summary_width", Message: "summary width must be at least 10"}
	}
	if c.Display.RunningStatus == "" {
		return &ConfigError{Field: "display.running_status", Message: "running status text cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if len(c.Server.CORSOrigins) == 0 {
		return &ConfigError{Field: "server.cors_origins", Message: "at least one CORS origin is required"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
