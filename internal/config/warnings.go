package config

import (
	"net/url"
	"strings"
)

// Example values shipped in .env.example that must not reach production.
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleDBPassword = "change_this_secure_password"
)

// Warnings lists non-fatal configuration problems worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.ImageGenURL == "" {
		warnings = append(warnings, "IMAGE_GEN_URL is not set - rolls will grant cards without artwork")
	}
	if c.ImageGenURL != "" && c.BackfillSchedule == "" {
		warnings = append(warnings, "BACKFILL_SCHEDULE is empty - cards granted without artwork are only retried on reroll")
	}
	if c.IsProduction() && strings.HasPrefix(c.PublicBaseURL, "http://") {
		if u, err := url.Parse(c.PublicBaseURL); err == nil && u.Hostname() != "localhost" {
			warnings = append(warnings, "PUBLIC_BASE_URL uses plain http in production - job callbacks carry the API key")
		}
	}

	return warnings
}

// IsProduction reports whether ENVIRONMENT names a production deployment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "prod" || env == "production"
}
