package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Posts     PostsConfig     `yaml:"posts"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Events    EventsConfig    `yaml:"events"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
// Boolean fields default to false: cleanenv re-applies env-default to any
// field left at its zero value, so a "true" default could never be switched off.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
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
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
// Migrations run at startup unless SkipMigrations is set.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"    env-default:"false"`
}

// AuthConfig holds session and login settings.
type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"    env-required:"true"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"    env-default:"yatube"`
	SessionTTL   time.Duration `yaml:"session_ttl"   env:"AUTH_SESSION_TTL"   env-default:"336h"`
	CookieName   string        `yaml:"cookie_name"   env:"AUTH_COOKIE_NAME"   env-default:"yatube_session"`
	CookieSecure bool          `yaml:"cookie_secure" env:"AUTH_COOKIE_SECURE" env-default:"false"`
	LoginURL     string        `yaml:"login_url"     env:"AUTH_LOGIN_URL"     env-default:"/auth/login/"`
	// PasswordHashCost is the bcrypt cost factor.
	PasswordHashCost int `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LoginRedirect returns the login URL carrying next as the return path.
// Slashes in next stay unescaped.
func (c AuthConfig) LoginRedirect(next string) string {
	if next == "" {
		return c.LoginURL
	}
	return c.LoginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// PostsConfig holds feed settings.
type PostsConfig struct {
	PageSize int `yaml:"page_size" env:"POSTS_PAGE_SIZE" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EventsConfig holds the post event publisher settings.
// An empty NatsURL disables publishing.
type EventsConfig struct {
	NatsURL       string `yaml:"nats_url"       env:"EVENTS_NATS_URL"`
	SubjectPrefix string `yaml:"subject_prefix" env:"EVENTS_SUBJECT_PREFIX" env-default:"yatube"`
}

// Enabled reports whether events should be published.
func (c EventsConfig) Enabled() bool { return c.NatsURL != "" }

// RateLimitConfig holds request rate limits.
type RateLimitConfig struct {
	LoginPerMinute int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupEvery   time.Duration `yaml:"cleanup_every"    env:"RATE_LIMIT_CLEANUP_EVERY"    env-default:"5m"`
}
