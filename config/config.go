package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is loaded once at
// process start and treated as immutable afterwards.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Matching pipeline
	Matching MatchingConfig
	Gemini   GeminiConfig
	Verifier VerifierConfig

	// Notifications
	Push    PushConfig
	Sweeper SweeperConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// InternalKey guards the /internal route group. Empty disables
	// those routes entirely.
	InternalKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// MatchingConfig holds the immutable matching configuration. Stopwords
// and category tags are loaded here and passed explicitly into the
// engine; they are never mutated at runtime.
type MatchingConfig struct {
	Stopwords  []string
	Categories []string
	// MaxWorkers bounds concurrent pair evaluation per listing.
	MaxWorkers int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type VerifierConfig struct {
	Timeout        time.Duration
	CallsPerMinute int
}

// PushConfig selects and configures the push provider.
type PushConfig struct {
	Provider string // "expo" or "fcm"

	// FCM (HTTP v1) settings
	FCMCredentialsPath string
	FCMProjectID       string
}

type SweeperConfig struct {
	Interval time.Duration
}

// defaultCategories is the closed category tag set shared by wishlist
// items and listings.
var defaultCategories = []string{
	"furniture", "clothing", "electronics", "toys", "books",
	"tools", "kitchen", "sports", "other",
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.InternalKey = viper.GetString("http_server.internal_key")
	if internalKey := viper.GetString("internal_api_key"); internalKey != "" {
		cfg.HTTPServer.InternalKey = internalKey
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Matching
	cfg.Matching.Stopwords = splitList(viper.GetString("matching.stopwords"))
	cfg.Matching.Categories = splitList(viper.GetString("matching.categories"))
	if len(cfg.Matching.Categories) == 0 {
		cfg.Matching.Categories = defaultCategories
	}
	cfg.Matching.MaxWorkers = viper.GetInt("matching.max_workers")

	// Gemini / verifier
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Verifier.Timeout = viper.GetDuration("verifier.timeout")
	cfg.Verifier.CallsPerMinute = viper.GetInt("verifier.calls_per_minute")

	// Push
	cfg.Push.Provider = viper.GetString("push.provider")
	cfg.Push.FCMCredentialsPath = viper.GetString("push.fcm_credentials_path")
	cfg.Push.FCMProjectID = viper.GetString("push.fcm_project_id")
	if fcmCreds := viper.GetString("fcm_credentials"); fcmCreds != "" {
		cfg.Push.FCMCredentialsPath = fcmCreds
	}

	// Sweeper
	cfg.Sweeper.Interval = viper.GetDuration("sweeper.interval")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "wishlist_matching")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("matching.max_workers", 8)

	viper.SetDefault("verifier.timeout", "8s")
	viper.SetDefault("verifier.calls_per_minute", 60)

	viper.SetDefault("push.provider", "expo")

	viper.SetDefault("sweeper.interval", "5m")
}

// splitList parses a comma-separated list since viper might not parse
// arrays seamlessly from env.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
