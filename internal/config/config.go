package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Study    StudyConfig    `yaml:"study"`
	Cache    CacheConfig    `yaml:"cache"`
	Sync     SyncConfig     `yaml:"sync"`
	Reminder ReminderConfig `yaml:"reminder"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings for the remote store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued by the
// identity provider; the API server only validates them. The secret is
// checked by ValidateServer only.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"vocamemo"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds study session and statistics settings.
type StudyConfig struct {
	Timezone           string        `yaml:"timezone"             env:"STUDY_TIMEZONE"             env-default:"UTC"`
	RecentDays         int           `yaml:"recent_days"          env:"STUDY_RECENT_DAYS"          env-default:"7"`
	MaxSessionItems    int           `yaml:"max_session_items"    env:"STUDY_MAX_SESSION_ITEMS"    env-default:"1000"`
	StatusWriteTimeout time.Duration `yaml:"status_write_timeout" env:"STUDY_STATUS_WRITE_TIMEOUT" env-default:"5s"`
	SessionTTL         time.Duration `yaml:"session_ttl"          env:"STUDY_SESSION_TTL"          env-default:"6h"`
}

// CacheConfig holds the device-side SQLite cache settings.
type CacheConfig struct {
	Path string `yaml:"path" env:"CACHE_PATH" env-default:"vocamemo-cache.db"`
}

// SyncConfig holds device-side sync settings.
type SyncConfig struct {
	Interval         time.Duration `yaml:"interval"          env:"SYNC_INTERVAL"          env-default:"5m"`
	ProbeTimeout     time.Duration `yaml:"probe_timeout"     env:"SYNC_PROBE_TIMEOUT"     env-default:"3s"`
	OperationTimeout time.Duration `yaml:"operation_timeout" env:"SYNC_OPERATION_TIMEOUT" env-default:"2m"`
}

// ReminderConfig holds the local study reminder settings. Reminders are on
// unless Disabled is set.
type ReminderConfig struct {
	Disabled bool          `yaml:"disabled" env:"REMINDER_DISABLED"`
	Interval time.Duration `yaml:"interval" env:"REMINDER_INTERVAL" env-default:"1h"`
}
