package config

import (
	"pptx-notes-server/internal/domain"
	"pptx-notes-server/internal/repository"
	"pptx-notes-server/internal/service"
	"pptx-notes-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	ParserGateway  domain.ParserGateway
	PaymentService *service.PaymentService
	NotesService   *service.NotesService
	ExportService  *service.ExportService
}

// NewContainer creates a new dependency injection container. It fails
// when a startup requirement (the payment secret) is missing.
func NewContainer() (*Container, error) {
	config := NewConfig()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appLogger := logger.NewLogger(config.GetLogLevel())

	// Payment processor adapter
	paymentRepo := repository.NewStripePaymentRepository(config, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		ParserGateway:  service.NewParserService(config, appLogger),
		PaymentService: service.NewPaymentService(paymentRepo, config.GetPaymentCurrency(), appLogger),
		NotesService:   service.NewNotesService(appLogger),
		ExportService:  service.NewExportService(appLogger),
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
