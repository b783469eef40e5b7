package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	SessionSecret string
	SessionTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	SMTPHost string
	SMTPPort string
	SMTPFrom string
	SMTPPass string
	// ContactTo is the inbox that receives contact-form messages.
	ContactTo string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/jobsethiopia?parseTime=true"),

		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionTTL:    7 * 24 * time.Hour,

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@jobsethiopia.example"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SMTPHost:  getEnv("SMTP_HOST", ""),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		SMTPFrom:  getEnv("SMTP_FROM", ""),
		SMTPPass:  getEnv("SMTP_PASSWORD", ""),
		ContactTo: getEnv("CONTACT_TO", ""),
	}

	if cfg.ContactTo == "" {
		cfg.ContactTo = cfg.SMTPFrom
	}

	if cfg.Env == "production" && cfg.SessionSecret == "dev-secret-change-in-production" {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// IsProduction reports whether the server runs with production settings.
// Session cookies are only marked Secure in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
