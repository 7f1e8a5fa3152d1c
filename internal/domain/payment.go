package domain

// Payment intent terminal statuses as reported by the processor.
const (
	PaymentStatusSucceeded = "succeeded"
)

// PaymentIntent references the processor's intent entity. The client
// secret authorizes exactly one client-side confirmation.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

// CardPayment identifies the payment method used to confirm an intent.
// The processor tokenizes raw card details before they reach us, so
// confirmation works with payment method ids (pm_...), never card
// numbers.
type CardPayment struct {
	PaymentMethodID string `json:"payment_method_id"`
}

// CreateIntentRequest is the payment-intent endpoint's request body.
// Amount is in minor currency units.
type CreateIntentRequest struct {
	Amount float64 `json:"amount"`
}

// CreateIntentResponse is the payment-intent endpoint's success body.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
