package config

import (
	"os"
	"strconv"
	"time"

	"pptx-notes-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort           string
	MaxFileSize          int64
	LogLevel             string
	ParserURL            string
	ParserTimeout        time.Duration
	StripeSecretKey      string
	StripePublishableKey string
	PaymentAmount        int64
	PaymentCurrency      string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:           getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:          getEnvInt64OrDefault("MAX_FILE_SIZE", 15*1024*1024), // 15MB default
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		ParserURL:            getEnvOrDefault("PARSER_URL", "http://localhost:6000"),
		ParserTimeout:        time.Duration(getEnvInt64OrDefault("PARSER_TIMEOUT", 60)) * time.Second,
		StripeSecretKey:      getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: getEnvOrDefault("STRIPE_PUBLISHABLE_KEY", ""),
		PaymentAmount:        getEnvInt64OrDefault("PAYMENT_AMOUNT", 999), // $9.99 in cents
		PaymentCurrency:      getEnvOrDefault("PAYMENT_CURRENCY", "usd"),
	}
}

// Validate checks startup-time requirements. A missing payment secret
// is fatal at boot, never a per-request condition.
func (c *AppConfig) Validate() error {
	if c.StripeSecretKey == "" {
		return domain.ErrMissingStripeSecretKey
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetParserURL returns the extraction service base address
func (c *AppConfig) GetParserURL() string {
	return c.ParserURL
}

// GetParserTimeout returns the outbound call deadline for the
// extraction service
func (c *AppConfig) GetParserTimeout() time.Duration {
	return c.ParserTimeout
}

// GetStripeSecretKey returns the server-held payment processor key
func (c *AppConfig) GetStripeSecretKey() string {
	return c.StripeSecretKey
}

// GetStripePublishableKey returns the client-exposed payment processor key
func (c *AppConfig) GetStripePublishableKey() string {
	return c.StripePublishableKey
}

// GetPaymentAmount returns the fixed charge amount in minor units
func (c *AppConfig) GetPaymentAmount() int64 {
	return c.PaymentAmount
}

// GetPaymentCurrency returns the fixed charge currency
func (c *AppConfig) GetPaymentCurrency() string {
	return c.PaymentCurrency
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
