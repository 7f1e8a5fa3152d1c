package handler

import (
	"encoding/json"
	"net/http"

	"pptx-notes-server/internal/domain"
	"pptx-notes-server/internal/service"
	apperrors "pptx-notes-server/pkg/errors"
)

// PaymentHandler handles payment-intent requests
type PaymentHandler struct {
	payments       *service.PaymentService
	publishableKey string
	logger         domain.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments *service.PaymentService, publishableKey string, logger domain.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments:       payments,
		publishableKey: publishableKey,
		logger:         logger,
	}
}

// CreateIntent creates a payment intent for the posted amount (minor
// units) and returns its client secret.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Amount is required and must be a number")
		return
	}

	intent, err := h.payments.CreateIntent(r.Context(), int64(req.Amount))
	if err != nil {
		h.logger.Error("Create payment intent failed", err, "amount", req.Amount)
		writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, domain.CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

// GetConfig exposes the client-side payment configuration (the
// publishable key only, never the secret).
func (h *PaymentHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"publishableKey": h.publishableKey})
}
