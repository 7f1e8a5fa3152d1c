package service

import (
	"context"

	"pptx-notes-server/internal/domain"
	apperrors "pptx-notes-server/pkg/errors"
)

// PaymentService creates charge intents for the fixed-price
// conversion. Amount validation happens here; processor failures come
// back from the provider already classified.
type PaymentService struct {
	provider domain.PaymentProvider
	currency string
	logger   domain.Logger
}

func NewPaymentService(provider domain.PaymentProvider, currency string, logger domain.Logger) *PaymentService {
	return &PaymentService{
		provider: provider,
		currency: currency,
		logger:   logger,
	}
}

// CreateIntent creates an intent for the given amount in minor units
// and returns it with its client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64) (*domain.PaymentIntent, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("Amount is required and must be a number")
	}

	intent, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment intent created", "intent_id", intent.ID, "amount", amount, "currency", s.currency)
	return intent, nil
}
