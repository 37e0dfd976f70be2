// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/models"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Server      ServerConfig
	Database    DatabaseConfig
	Log         LogConfig
	I18n        I18nConfig
	Preferences PreferencesConfig
	Catalog     CatalogConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	Host         string        `envconfig:"SERVER_HOST" default:"localhost"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	CORSOrigins  []string      `envconfig:"CORS_ORIGINS" default:"*"`

	RateLimit         float64 `envconfig:"RATE_LIMIT" default:"10"`
	RateBurst         int     `envconfig:"RATE_BURST" default:"20"`
	MutationRateLimit float64 `envconfig:"MUTATION_RATE_LIMIT" default:"1"`
	MutationRateBurst int     `envconfig:"MUTATION_RATE_BURST" default:"5"`
}

type DatabaseConfig struct {
	Enabled      bool          `envconfig:"DB_ENABLED" default:"false"`
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" default:"postgres"`
	Password     string        `envconfig:"DB_PASSWORD"`
	Database     string        `envconfig:"DB_NAME" default:"shelflife"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	MaxLifetime  time.Duration `envconfig:"DB_MAX_LIFETIME" default:"5m"`
	LogLevel     string        `envconfig:"DB_LOG_LEVEL" default:"silent"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

type I18nConfig struct {
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"en"`
}

// PreferencesConfig holds the defaults used before the user runs setup.
type PreferencesConfig struct {
	UserName      string `envconfig:"DEFAULT_USER_NAME" default:"User"`
	ColorTheme    string `envconfig:"DEFAULT_COLOR_THEME" default:"white"`
	Notifications bool   `envconfig:"DEFAULT_NOTIFICATIONS" default:"true"`
}

type CatalogConfig struct {
	SeedOnStart bool `envconfig:"SEED_SAMPLE_PRODUCTS" default:"true"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if !models.ColorTheme(c.Preferences.ColorTheme).Valid() {
		return fmt.Errorf("unknown default color theme %q", c.Preferences.ColorTheme)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if c.Database.Enabled && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	return nil
}

func (c *Config) DefaultPreferences() models.Preferences {
	prefs := models.DefaultPreferences()
	if c.Preferences.UserName != "" {
		prefs.UserName = c.Preferences.UserName
	}
	prefs.ColorTheme = models.ColorTheme(c.Preferences.ColorTheme)
	prefs.Notifications = c.Preferences.Notifications
	return prefs
}

// ConfigureLogger applies level and format to the standard logrus logger.
func (c *Config) ConfigureLogger() {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
