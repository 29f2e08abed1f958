package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Driver: DriverPostgres, Host: "localhost"},
		Mail:     MailConfig{Provider: MailProviderLog},
		Admin:    AdminConfig{AuthMode: AuthModeAPIKey, APIKey: "k"},
		Tracing:  TracingConfig{SampleRatio: 1},
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "k")
	t.Setenv("ADMIN_EMAILS", " Owner@Example.com ,,")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))
	cfg.normalize()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, MailProviderLog, cfg.Mail.Provider)
	assert.Equal(t, 5, cfg.Contact.RatePerMinute)
	assert.Equal(t, "0 0 8 * * *", cfg.Cron.CertificateDigest)
	assert.Equal(t, []string{"owner@example.com"}, cfg.Admin.Emails)
	assert.False(t, cfg.App.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"ok", func(*Config) {}, ""},
		{"no port", func(c *Config) { c.Server.Port = "" }, "PORT"},
		{"no db", func(c *Config) { c.Database.Host = "" }, "DB_DSN"},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "DB_DRIVER"},
		{"sendgrid without key", func(c *Config) { c.Mail.Provider = MailProviderSendGrid }, "SENDGRID_API_KEY"},
		{"ses without from", func(c *Config) { c.Mail.Provider = MailProviderSES }, "MAIL_FROM"},
		{"bad provider", func(c *Config) { c.Mail.Provider = "smtp" }, "MAIL_PROVIDER"},
		{"api key missing", func(c *Config) { c.Admin.APIKey = "" }, "ADMIN_API_KEY"},
		{"firebase without creds", func(c *Config) { c.Admin.AuthMode = AuthModeFirebase }, "FIREBASE_CREDENTIALS_PATH"},
		{"bad auth mode", func(c *Config) { c.Admin.AuthMode = "basic" }, "ADMIN_AUTH_MODE"},
		{"bad ratio", func(c *Config) { c.Tracing.SampleRatio = 1.5 }, "TRACING_SAMPLE_RATIO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConnString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "portfolio", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=portfolio sslmode=disable", d.ConnString())

	d.DSN = "postgres://u:p@db/portfolio"
	assert.Equal(t, "postgres://u:p@db/portfolio", d.ConnString())
}
