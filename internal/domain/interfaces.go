package domain

import (
	"context"
	"io"
	"time"
)

// ParserGateway forwards an uploaded presentation to the extraction
// service and returns its structured notes.
type ParserGateway interface {
	Parse(ctx context.Context, file io.Reader, filename string) (*ParseResult, error)
	// Healthy reports whether the extraction service is reachable.
	Healthy(ctx context.Context) bool
}

// PaymentProvider creates charge intents with the payment processor.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}

// PaymentConfirmer confirms a previously created intent with a payment
// method. Implementations surface the processor's own error text.
type PaymentConfirmer interface {
	ConfirmCardPayment(ctx context.Context, clientSecret string, card CardPayment) (*PaymentIntent, error)
}

// NotesExporter serializes a NotesBundle into a downloadable document.
type NotesExporter interface {
	Export(bundle NotesBundle) ([]byte, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetParserURL() string
	GetParserTimeout() time.Duration
	GetStripeSecretKey() string
	GetStripePublishableKey() string
	GetPaymentAmount() int64
	GetPaymentCurrency() string
	Validate() error
}
