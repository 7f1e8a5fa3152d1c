package repository

import (
	"context"
	"errors"
	"strings"

	"pptx-notes-server/internal/domain"
	apperrors "pptx-notes-server/pkg/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripePaymentRepository implements domain.PaymentProvider and
// domain.PaymentConfirmer on top of the Stripe SDK.
type StripePaymentRepository struct {
	api    *client.API
	logger domain.Logger
}

// NewStripePaymentRepository creates a Stripe-backed payment adapter
// using the server-held secret key.
func NewStripePaymentRepository(config domain.Config, logger domain.Logger) *StripePaymentRepository {
	api := &client.API{}
	api.Init(config.GetStripeSecretKey(), nil)

	return &StripePaymentRepository{
		api:    api,
		logger: logger,
	}
}

// CreateIntent creates a payment intent with automatic payment-method
// selection and returns its client secret.
func (r *StripePaymentRepository) CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := r.api.PaymentIntents.New(params)
	if err != nil {
		msg := providerMessage(err)
		r.logger.Error("Stripe payment intent error", err, "amount", amount)
		return nil, apperrors.NewPaymentProviderError("Failed to create payment intent: "+msg, err)
	}

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// ConfirmCardPayment confirms the intent identified by the client
// secret with the given payment method. A card error surfaces the
// processor's own message.
func (r *StripePaymentRepository) ConfirmCardPayment(ctx context.Context, clientSecret string, card domain.CardPayment) (*domain.PaymentIntent, error) {
	intentID, ok := intentIDFromClientSecret(clientSecret)
	if !ok {
		return nil, domain.ErrMalformedClientSecret
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(card.PaymentMethodID),
	}
	params.Context = ctx

	intent, err := r.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		msg := providerMessage(err)
		if msg == "" {
			msg = "Payment failed. Check card details."
		}
		r.logger.Error("Stripe confirmation error", err, "intent_id", intentID)
		return nil, apperrors.NewPaymentProviderError(msg, err)
	}

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// intentIDFromClientSecret extracts the intent id from a secret of the
// form "pi_123_secret_456".
func intentIDFromClientSecret(clientSecret string) (string, bool) {
	parts := strings.SplitN(clientSecret, "_secret_", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "pi_") {
		return "", false
	}
	return parts[0], true
}

// providerMessage returns Stripe's human-readable message when the
// error came from the API, the raw error text otherwise.
func providerMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.Msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
