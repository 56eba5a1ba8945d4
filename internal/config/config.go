package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Upload limits
	MaxUploadBytes int64 `mapstructure:"MAX_UPLOAD_BYTES"`

	// SMTP configuration
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SMTPUser       string `mapstructure:"SMTP_USER"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
	SMTPTimeoutSec int    `mapstructure:"SMTP_TIMEOUT_SEC"`

	// Mail identities
	MailFrom    string `mapstructure:"MAIL_FROM"`
	NotifyEmail string `mapstructure:"NOTIFY_EMAIL"`

	// MailFailurePolicy decides what happens to a persisted registration
	// whose confirmation email failed: "log" leaves it as-is, "flag" marks
	// the row for manual follow-up.
	MailFailurePolicy string `mapstructure:"MAIL_FAILURE_POLICY"`

	// Renderer configuration
	RenderTimeoutSec    int    `mapstructure:"RENDER_TIMEOUT_SEC"`
	RenderMaxConcurrent int64  `mapstructure:"RENDER_MAX_CONCURRENT"`
	ChromePath          string `mapstructure:"CHROME_PATH"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "event_registration")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Upload defaults: 5 MiB per file, matching the public API contract
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(5*1024*1024))

	// SMTP defaults
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_TIMEOUT_SEC", 20)

	viper.SetDefault("MAIL_FROM", "")
	viper.SetDefault("NOTIFY_EMAIL", "")
	viper.SetDefault("MAIL_FAILURE_POLICY", "log")

	// Renderer defaults
	viper.SetDefault("RENDER_TIMEOUT_SEC", 30)
	viper.SetDefault("RENDER_MAX_CONCURRENT", int64(2))
	viper.SetDefault("CHROME_PATH", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MailFailurePolicy != "log" && config.MailFailurePolicy != "flag" {
		return fmt.Errorf("MAIL_FAILURE_POLICY must be \"log\" or \"flag\", got %q", config.MailFailurePolicy)
	}

	if config.Environment == "production" {
		if config.SMTPUser == "" || config.SMTPPassword == "" {
			return fmt.Errorf("SMTP_USER and SMTP_PASSWORD must be set in production")
		}
		if config.MailFrom == "" || config.NotifyEmail == "" {
			return fmt.Errorf("MAIL_FROM and NOTIFY_EMAIL must be set in production")
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
