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
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	GenAI    GenAIConfig
	CORS     CORSConfig
	Extract  ExtractConfig
	Retry    RetryConfig
	Autosave AutosaveConfig
	Email    EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// ExtractConfig holds PDF text extraction limits.
type ExtractConfig struct {
	MaxFileSizeMB      int64 `mapstructure:"max_file_size_mb"`
	MaxBatchFileSizeMB int64 `mapstructure:"max_batch_file_size_mb"`
}

// RetryConfig holds the read-after-write retry policy for topic listing.
type RetryConfig struct {
	Attempts  int           `mapstructure:"attempts"`
	BaseDelay time.Duration `mapstructure:"base_delay"`
}

// AutosaveConfig holds the debounced topic autosave settings.
type AutosaveConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GenAIProviderConfig holds settings for a single generation provider.
type GenAIProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// GenAIConfig holds generative backend settings with multi-provider support.
type GenAIConfig struct {
	Primary   GenAIProviderConfig `mapstructure:"primary"`
	Secondary GenAIProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary generation provider config.
func (g *GenAIConfig) PrimaryConfig() *GenAIProviderConfig {
	return &g.Primary
}

// SecondaryConfig returns the secondary generation provider config, or nil if not configured.
func (g *GenAIConfig) SecondaryConfig() *GenAIProviderConfig {
	if g.Secondary.Provider != "" {
		return &g.Secondary
	}
	return nil
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

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SHIKSHA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHIKSHA")
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
	v.SetDefault("db.user", "shiksha")
	v.SetDefault("db.password", "shiksha_secret")
	v.SetDefault("db.name", "shiksha_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "shiksha")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "shiksha-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Extraction defaults
	v.SetDefault("extract.max_file_size_mb", 50)
	v.SetDefault("extract.max_batch_file_size_mb", 100)

	// Topic-list retry defaults
	v.SetDefault("retry.attempts", 3)
	v.SetDefault("retry.base_delay", "500ms")

	// Autosave defaults
	v.SetDefault("autosave.debounce", "2s")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@shiksha.app")
	v.SetDefault("email.from_name", "Shiksha")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// GenAI primary/secondary defaults
	v.SetDefault("genai.primary.provider", "gemini")
	v.SetDefault("genai.primary.api_key", "")
	v.SetDefault("genai.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("genai.primary.timeout_secs", 120)
	v.SetDefault("genai.secondary.provider", "")
	v.SetDefault("genai.secondary.api_key", "")
	v.SetDefault("genai.secondary.default_model", "")
	v.SetDefault("genai.secondary.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "SHIKSHA_SERVER_PORT",
		"server.read_timeout":            "SHIKSHA_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "SHIKSHA_SERVER_WRITE_TIMEOUT",
		"server.environment":             "SHIKSHA_SERVER_ENVIRONMENT",
		"db.host":                        "SHIKSHA_DB_HOST",
		"db.port":                        "SHIKSHA_DB_PORT",
		"db.user":                        "SHIKSHA_DB_USER",
		"db.password":                    "SHIKSHA_DB_PASSWORD",
		"db.name":                        "SHIKSHA_DB_NAME",
		"db.sslmode":                     "SHIKSHA_DB_SSLMODE",
		"db.max_open":                    "SHIKSHA_DB_MAX_OPEN",
		"db.max_idle":                    "SHIKSHA_DB_MAX_IDLE",
		"jwt.secret":                     "SHIKSHA_JWT_SECRET",
		"jwt.access_expiry":              "SHIKSHA_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":             "SHIKSHA_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                     "SHIKSHA_JWT_ISSUER",
		"s3.region":                      "SHIKSHA_S3_REGION",
		"s3.bucket":                      "SHIKSHA_S3_BUCKET",
		"s3.endpoint":                    "SHIKSHA_S3_ENDPOINT",
		"s3.access_key":                  "SHIKSHA_S3_ACCESS_KEY",
		"s3.secret_key":                  "SHIKSHA_S3_SECRET_KEY",
		"s3.presign_expiry":              "SHIKSHA_S3_PRESIGN_EXPIRY",
		"log.level":                      "SHIKSHA_LOG_LEVEL",
		"log.format":                     "SHIKSHA_LOG_FORMAT",
		"cors.allowed_origins":           "SHIKSHA_CORS_ALLOWED_ORIGINS",
		"extract.max_file_size_mb":       "SHIKSHA_EXTRACT_MAX_FILE_SIZE_MB",
		"extract.max_batch_file_size_mb": "SHIKSHA_EXTRACT_MAX_BATCH_FILE_SIZE_MB",
		"retry.attempts":                 "SHIKSHA_RETRY_ATTEMPTS",
		"retry.base_delay":               "SHIKSHA_RETRY_BASE_DELAY",
		"autosave.debounce":              "SHIKSHA_AUTOSAVE_DEBOUNCE",
		"genai.primary.provider":         "SHIKSHA_GENAI_PRIMARY_PROVIDER",
		"genai.primary.api_key":          "SHIKSHA_GENAI_PRIMARY_API_KEY",
		"genai.primary.default_model":    "SHIKSHA_GENAI_PRIMARY_DEFAULT_MODEL",
		"genai.primary.timeout_secs":     "SHIKSHA_GENAI_PRIMARY_TIMEOUT_SECS",
		"genai.secondary.provider":       "SHIKSHA_GENAI_SECONDARY_PROVIDER",
		"genai.secondary.api_key":        "SHIKSHA_GENAI_SECONDARY_API_KEY",
		"genai.secondary.default_model":  "SHIKSHA_GENAI_SECONDARY_DEFAULT_MODEL",
		"genai.secondary.timeout_secs":   "SHIKSHA_GENAI_SECONDARY_TIMEOUT_SECS",
		"email.provider":                 "SHIKSHA_EMAIL_PROVIDER",
		"email.region":                   "SHIKSHA_EMAIL_REGION",
		"email.from_address":             "SHIKSHA_EMAIL_FROM_ADDRESS",
		"email.from_name":                "SHIKSHA_EMAIL_FROM_NAME",
		"email.frontend_url":             "SHIKSHA_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHIKSHA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHIKSHA_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
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

	cfg.Extract = ExtractConfig{
		MaxFileSizeMB:      v.GetInt64("extract.max_file_size_mb"),
		MaxBatchFileSizeMB: v.GetInt64("extract.max_batch_file_size_mb"),
	}

	cfg.Retry = RetryConfig{
		Attempts:  v.GetInt("retry.attempts"),
		BaseDelay: v.GetDuration("retry.base_delay"),
	}

	cfg.Autosave = AutosaveConfig{
		Debounce: v.GetDuration("autosave.debounce"),
	}

	cfg.GenAI = GenAIConfig{
		Primary: GenAIProviderConfig{
			Provider:     v.GetString("genai.primary.provider"),
			APIKey:       v.GetString("genai.primary.api_key"),
			DefaultModel: v.GetString("genai.primary.default_model"),
			TimeoutSecs:  v.GetInt("genai.primary.timeout_secs"),
		},
		Secondary: GenAIProviderConfig{
			Provider:     v.GetString("genai.secondary.provider"),
			APIKey:       v.GetString("genai.secondary.api_key"),
			DefaultModel: v.GetString("genai.secondary.default_model"),
			TimeoutSecs:  v.GetInt("genai.secondary.timeout_secs"),
		},
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
