package flow

import (
	"context"
	"errors"
	"sync"

	"pptx-notes-server/internal/domain"
	apperrors "pptx-notes-server/pkg/errors"
)

// DefaultAmount is the fixed conversion price in minor units ($9.99).
const DefaultAmount int64 = 999

// User-facing payment messages.
const (
	msgInitFailed   = "Failed to initialize payment."
	msgNotReady     = "Payment system not ready. Try again."
	msgCardFallback = "Payment failed. Check card details."
	msgGeneric      = "An error occurred during payment."
)

// PaymentState is the confirmation flow's lifecycle state.
type PaymentState string

const (
	PaymentStateInitializing PaymentState = "initializing"
	PaymentStateReady        PaymentState = "ready"
	PaymentStateSubmitting   PaymentState = "submitting"
	PaymentStateSucceeded    PaymentState = "succeeded"
	PaymentStateFailed       PaymentState = "failed"
	PaymentStateClosed       PaymentState = "closed"
)

// Payment flow errors
var (
	ErrPaymentNotReady = errors.New(msgNotReady)
	ErrFlowClosed      = errors.New("payment flow closed")
	ErrAlreadyStarted  = errors.New("payment flow already initialized")
)

// IntentCreator fetches a client secret; APIClient satisfies it.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// PaymentFlow drives one payment attempt: initializing -> ready ->
// submitting -> succeeded | failed. Close unlinks the flow from any
// in-flight confirmation; a late success can no longer transition it.
type PaymentFlow struct {
	mu           sync.Mutex
	state        PaymentState
	client       IntentCreator
	confirmer    domain.PaymentConfirmer
	amount       int64
	clientSecret string
	errMsg       string
	closed       bool
}

// NewPaymentFlow creates a flow charging the default amount.
func NewPaymentFlow(client IntentCreator, confirmer domain.PaymentConfirmer) *PaymentFlow {
	return &PaymentFlow{
		state:     PaymentStateInitializing,
		client:    client,
		confirmer: confirmer,
		amount:    DefaultAmount,
	}
}

// Init fetches the client secret. On success the form becomes
// interactive; on failure the flow ends in failed and cannot submit.
func (f *PaymentFlow) Init(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFlowClosed
	}
	if f.state != PaymentStateInitializing {
		f.mu.Unlock()
		return ErrAlreadyStarted
	}
	amount := f.amount
	f.mu.Unlock()

	secret, err := f.client.CreatePaymentIntent(ctx, amount)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFlowClosed
	}
	if err != nil || secret == "" {
		f.state = PaymentStateFailed
		f.errMsg = msgInitFailed
		if err == nil {
			err = errors.New(msgInitFailed)
		}
		return err
	}
	f.clientSecret = secret
	f.state = PaymentStateReady
	return nil
}

// Submit confirms the intent with the given payment method. A submit
// before the flow is ready is rejected locally, with no network call.
func (f *PaymentFlow) Submit(ctx context.Context, card domain.CardPayment) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFlowClosed
	}
	if f.state != PaymentStateReady || f.clientSecret == "" || f.confirmer == nil {
		f.errMsg = msgNotReady
		f.mu.Unlock()
		return ErrPaymentNotReady
	}
	f.state = PaymentStateSubmitting
	secret := f.clientSecret
	f.mu.Unlock()

	intent, err := f.confirmer.ConfirmCardPayment(ctx, secret, card)

	f.mu.Lock()
	defer f.mu.Unlock()

	// A close while the confirmation was in flight wins: the result is
	// discarded, success included.
	if f.closed {
		return ErrFlowClosed
	}

	if err != nil {
		f.state = PaymentStateFailed
		if apperrors.IsType(err, apperrors.ErrorTypePaymentProvider) {
			f.errMsg = apperrors.GetMessage(err)
		} else {
			f.errMsg = msgGeneric
		}
		return err
	}

	if intent == nil || intent.Status != domain.PaymentStatusSucceeded {
		f.state = PaymentStateFailed
		f.errMsg = msgCardFallback
		return errors.New(msgCardFallback)
	}

	f.state = PaymentStateSucceeded
	f.errMsg = ""
	return nil
}

// Close aborts the flow. It does not cancel an in-flight confirmation
// call, it only guarantees the flow never reports success afterwards.
// Closing an already succeeded flow is a no-op.
func (f *PaymentFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == PaymentStateSucceeded {
		return
	}
	f.closed = true
	f.state = PaymentStateClosed
}

// State returns the current lifecycle state.
func (f *PaymentFlow) State() PaymentState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Succeeded reports a confirmed charge; satisfies PaymentGate.
func (f *PaymentFlow) Succeeded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == PaymentStateSucceeded
}

// ErrorMessage returns the user-facing message for the last failure.
func (f *PaymentFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
