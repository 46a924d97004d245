package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit" validate:"required"`
	Features   FeatureConfig    `mapstructure:"features"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Jobs       JobsConfig       `mapstructure:"jobs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Timeouts are in seconds.
	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gte=1"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gte=1"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                  string `mapstructure:"jwt_secret"                    validate:"required,min=32"`
	AccessTokenLifetimeMinutes int    `mapstructure:"access_token_lifetime_minutes" validate:"required,gte=1,lte=1440"`
	RefreshTokenLifetimeDays   int    `mapstructure:"refresh_token_lifetime_days"   validate:"required,gte=1,lte=365"`
	ClockSkewSeconds           int    `mapstructure:"clock_skew_seconds"            validate:"gte=0,lte=600"`
}

// PaginationConfig caps list endpoints.
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page" validate:"required,gte=1,ltefield=MaxPerPage"`
	MaxPerPage     int `mapstructure:"max_per_page"     validate:"required,gte=1,lte=500"`
}

// RateLimitConfig contains request throttling settings.
// AuthPerMinute applies to the unauthenticated login and refresh endpoints.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"required,gte=1"`
	Burst             int `mapstructure:"burst"               validate:"required,gte=1"`
	AuthPerMinute     int `mapstructure:"auth_per_minute"     validate:"required,gte=1"`
}

// FeatureConfig toggles optional route groups.
type FeatureConfig struct {
	Chat       bool `mapstructure:"chat"`
	Email      bool `mapstructure:"email"`
	Timesheets bool `mapstructure:"timesheets"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// JobsConfig controls the background maintenance workers.
type JobsConfig struct {
	Workers   int `mapstructure:"workers"    validate:"gte=1,lte=16"`
	QueueSize int `mapstructure:"queue_size" validate:"gte=1"`
	// TokenPruneIntervalMinutes of 0 disables token pruning.
	TokenPruneIntervalMinutes int `mapstructure:"token_prune_interval_minutes" validate:"gte=0"`
	TokenRetentionDays        int `mapstructure:"token_retention_days"         validate:"gte=1"`
}
