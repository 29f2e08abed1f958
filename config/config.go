package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
	Contact  ContactConfig
	Mail     MailConfig
	Admin    AdminConfig
	Tracing  TracingConfig
	Cron     CronConfig
}

type ServerConfig struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type DatabaseConfig struct {
	Driver       string `env:"DB_DRIVER" envDefault:"postgres"`
	DSN          string `env:"DB_DSN"`
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         int    `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER" envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" envDefault:"portfolio"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type AppConfig struct {
	Name         string `env:"APP_NAME" envDefault:"portfolio"`
	Environment  string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Version      string `env:"APP_VERSION" envDefault:"1.0.0"`
	LogRedaction bool   `env:"LOG_REDACTION" envDefault:"true"`
}

type ContactConfig struct {
	Recipient     string        `env:"CONTACT_EMAIL"`
	RatePerMinute int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	Burst         int           `env:"CONTACT_BURST" envDefault:"3"`
	FlashTTL      time.Duration `env:"FLASH_TTL" envDefault:"5m"`
}

type MailConfig struct {
	Provider        string        `env:"MAIL_PROVIDER" envDefault:"log"`
	From            string        `env:"MAIL_FROM"`
	FromName        string        `env:"MAIL_FROM_NAME" envDefault:"Portfolio"`
	SendGridAPIKey  string        `env:"SENDGRID_API_KEY"`
	SendGridBaseURL string        `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
	Timeout         time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
	AWSRegion       string        `env:"AWS_REGION"`
}

type AdminConfig struct {
	AuthMode                string   `env:"ADMIN_AUTH_MODE" envDefault:"api_key"`
	APIKey                  string   `env:"ADMIN_API_KEY"`
	Emails                  []string `env:"ADMIN_EMAILS" envSeparator:","`
	FirebaseCredentialsPath string   `env:"FIREBASE_CREDENTIALS_PATH"`
}

type TracingConfig struct {
	Enabled     bool    `env:"TRACING_ENABLED" envDefault:"false"`
	SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1.0"`
}

type CronConfig struct {
	CertificateDigest string `env:"CERT_DIGEST_SCHEDULE" envDefault:"0 0 8 * * *"`
}

const (
	MailProviderLog      = "log"
	MailProviderSendGrid = "sendgrid"
	MailProviderSES      = "ses"

	AuthModeAPIKey   = "api_key"
	AuthModeFirebase = "firebase"

	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Mail.Provider = strings.ToLower(strings.TrimSpace(c.Mail.Provider))
	c.Admin.AuthMode = strings.ToLower(strings.TrimSpace(c.Admin.AuthMode))

	emails := c.Admin.Emails[:0]
	for _, e := range c.Admin.Emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails = append(emails, e)
		}
	}
	c.Admin.Emails = emails
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("DB_DSN or DB_HOST is required")
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverPgx:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Mail.Provider {
	case MailProviderLog:
	case MailProviderSendGrid:
		if c.Mail.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid")
		}
	case MailProviderSES:
		if c.Mail.From == "" {
			return fmt.Errorf("MAIL_FROM is required when MAIL_PROVIDER=ses")
		}
	default:
		return fmt.Errorf("unsupported MAIL_PROVIDER %q", c.Mail.Provider)
	}

	switch c.Admin.AuthMode {
	case AuthModeAPIKey:
		if c.Admin.APIKey == "" {
			return fmt.Errorf("ADMIN_API_KEY is required when ADMIN_AUTH_MODE=api_key")
		}
	case AuthModeFirebase:
		if c.Admin.FirebaseCredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when ADMIN_AUTH_MODE=firebase")
		}
	default:
		return fmt.Errorf("unsupported ADMIN_AUTH_MODE %q", c.Admin.AuthMode)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}

	return nil
}

// ConnString returns DB_DSN when set, otherwise a key/value DSN built from the parts.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}
