package domain

import "errors"

// Domain errors
var (
	ErrMalformedClientSecret  = errors.New("malformed client secret")
	ErrMissingStripeSecretKey = errors.New("STRIPE_SECRET_KEY is not defined in environment variables")
)
