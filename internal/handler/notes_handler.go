// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"pptx-notes-server/internal/domain"
	"pptx-notes-server/internal/service"
	apperrors "pptx-notes-server/pkg/errors"
)

// NotesHandler handles presentation upload, rendering and export
// requests
type NotesHandler struct {
	parser      domain.ParserGateway
	renderer    *service.NotesService
	exporter    domain.NotesExporter
	maxFileSize int64
	logger      domain.Logger
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(parser domain.ParserGateway, renderer *service.NotesService, exporter domain.NotesExporter, maxFileSize int64, logger domain.Logger) *NotesHandler {
	return &NotesHandler{
		parser:      parser,
		renderer:    renderer,
		exporter:    exporter,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload accepts one presentation file and forwards it to the
// extraction service, passing the structured notes through unchanged.
func (h *NotesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Validate file is present
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." {
		originalName = "presentation.pptx"
	}

	// Validate extension (strict allow-list)
	if strings.ToLower(filepath.Ext(originalName)) != ".pptx" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Only PowerPoint (.pptx) presentations are accepted.")
		return
	}

	// Validate file size
	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File too large. Maximum single file size is %dMB.", h.maxFileSize>>20))
		return
	}

	result, err := h.parser.Parse(r.Context(), file, originalName)
	if err != nil {
		h.logger.Error("Upload parse failed", err, "filename", originalName)
		writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Render returns the sectioned display view for a NotesBundle posted
// as JSON. Empty bundles render the empty state rather than failing.
func (h *NotesHandler) Render(w http.ResponseWriter, r *http.Request) {
	var bundle domain.NotesBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.renderer.Render(bundle))
}

// Export builds the downloadable PDF from a NotesBundle posted as
// JSON. The document is constructed from the data model, never from
// rendered markup.
func (h *NotesHandler) Export(w http.ResponseWriter, r *http.Request) {
	var bundle domain.NotesBundle
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := h.exporter.Export(bundle)
	if err != nil {
		h.logger.Error("Notes export failed", err)
		writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
