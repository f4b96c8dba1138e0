package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Storage StorageConfig
	Billing BillingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings for receipts and reminders.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	SchoolName  string `mapstructure:"school_name"`
}

// StorageConfig holds object storage settings for report archives.
type StorageConfig struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// BillingConfig holds billing defaults.
type BillingConfig struct {
	// DefaultDueDays is the due-date offset applied when a bill is created
	// without an explicit due date.
	DefaultDueDays int `mapstructure:"default_due_days"`
}

// Load reads configuration from environment variables with the FEEDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FEEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "feedesk")
	v.SetDefault("db.password", "feedesk_secret")
	v.SetDefault("db.name", "feedesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "feedesk")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "fees@feedesk.app")
	v.SetDefault("email.from_name", "FEEDESK")
	v.SetDefault("email.school_name", "FEEDESK School")

	// Storage defaults
	v.SetDefault("storage.region", "ap-south-1")
	v.SetDefault("storage.bucket", "feedesk-reports")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.presign_expiry", 3600)

	// Billing defaults
	v.SetDefault("billing.default_due_days", 30)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FEEDESK_SERVER_PORT",
		"server.read_timeout":      "FEEDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FEEDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FEEDESK_SERVER_ENVIRONMENT",
		"db.host":                  "FEEDESK_DB_HOST",
		"db.port":                  "FEEDESK_DB_PORT",
		"db.user":                  "FEEDESK_DB_USER",
		"db.password":              "FEEDESK_DB_PASSWORD",
		"db.name":                  "FEEDESK_DB_NAME",
		"db.sslmode":               "FEEDESK_DB_SSLMODE",
		"db.max_open":              "FEEDESK_DB_MAX_OPEN",
		"db.max_idle":              "FEEDESK_DB_MAX_IDLE",
		"jwt.secret":               "FEEDESK_JWT_SECRET",
		"jwt.access_expiry":        "FEEDESK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "FEEDESK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "FEEDESK_JWT_ISSUER",
		"log.level":                "FEEDESK_LOG_LEVEL",
		"log.format":               "FEEDESK_LOG_FORMAT",
		"cors.allowed_origins":     "FEEDESK_CORS_ALLOWED_ORIGINS",
		"email.provider":           "FEEDESK_EMAIL_PROVIDER",
		"email.region":             "FEEDESK_EMAIL_REGION",
		"email.from_address":       "FEEDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":          "FEEDESK_EMAIL_FROM_NAME",
		"email.school_name":        "FEEDESK_EMAIL_SCHOOL_NAME",
		"storage.region":           "FEEDESK_STORAGE_REGION",
		"storage.bucket":           "FEEDESK_STORAGE_BUCKET",
		"storage.endpoint":         "FEEDESK_STORAGE_ENDPOINT",
		"storage.access_key":       "FEEDESK_STORAGE_ACCESS_KEY",
		"storage.secret_key":       "FEEDESK_STORAGE_SECRET_KEY",
		"storage.presign_expiry":   "FEEDESK_STORAGE_PRESIGN_EXPIRY",
		"billing.default_due_days": "FEEDESK_BILLING_DEFAULT_DUE_DAYS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FEEDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FEEDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		SchoolName:  v.GetString("email.school_name"),
	}
	cfg.Storage = StorageConfig{
		Region:        v.GetString("storage.region"),
		Bucket:        v.GetString("storage.bucket"),
		Endpoint:      v.GetString("storage.endpoint"),
		AccessKey:     v.GetString("storage.access_key"),
		SecretKey:     v.GetString("storage.secret_key"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.Billing = BillingConfig{
		DefaultDueDays: v.GetInt("billing.default_due_days"),
	}

	return cfg, nil
}
