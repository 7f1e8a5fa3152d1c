package service

import (
	"context"
	"time"

	"pptx-notes-server/internal/domain"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// Mock config used by service package tests.
type mockConfig struct {
	parserURL     string
	parserTimeout time.Duration
}

func (c *mockConfig) GetServerPort() string           { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64           { return 15 * 1024 * 1024 }
func (c *mockConfig) GetLogLevel() string             { return "error" }
func (c *mockConfig) GetParserURL() string            { return c.parserURL }
func (c *mockConfig) GetParserTimeout() time.Duration { return c.parserTimeout }
func (c *mockConfig) GetStripeSecretKey() string      { return "sk_test_mock" }
func (c *mockConfig) GetStripePublishableKey() string { return "pk_test_mock" }
func (c *mockConfig) GetPaymentAmount() int64         { return 999 }
func (c *mockConfig) GetPaymentCurrency() string      { return "usd" }
func (c *mockConfig) Validate() error                 { return nil }

// Mock payment provider used by payment service tests.
type mockPaymentProvider struct {
	intent   *domain.PaymentIntent
	err      error
	calls    int
	lastArgs struct {
		amount   int64
		currency string
	}
}

func (m *mockPaymentProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	m.calls++
	m.lastArgs.amount = amount
	m.lastArgs.currency = currency
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}
