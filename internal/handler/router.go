package handler

import (
	"context"
	"net/http"
	"time"

	"pptx-notes-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (includes extraction-service reachability)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		parser := "unreachable"
		if container.ParserGateway.Healthy(ctx) {
			parser = "reachable"
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "pptx-notes-server",
			"parser":  parser,
		})
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Initialize handlers
	notesHandler := NewNotesHandler(
		container.ParserGateway,
		container.NotesService,
		container.ExportService,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)
	paymentHandler := NewPaymentHandler(
		container.PaymentService,
		container.Config.GetStripePublishableKey(),
		container.Logger,
	)

	// Notes routes
	api.HandleFunc("/notes", notesHandler.Upload).Methods("POST")
	api.HandleFunc("/notes/render", notesHandler.Render).Methods("POST")
	api.HandleFunc("/notes/export", notesHandler.Export).Methods("POST")

	// Payment routes
	api.HandleFunc("/payments/intent", paymentHandler.CreateIntent).Methods("POST")
	api.HandleFunc("/payments/config", paymentHandler.GetConfig).Methods("GET")

	// Request logging
	router.Use(RequestLogging(container.Logger))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"http://localhost:3001", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
