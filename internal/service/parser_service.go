package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"pptx-notes-server/internal/domain"
	apperrors "pptx-notes-server/pkg/errors"
)

// parseEndpoint is the extraction service's upload route.
const parseEndpoint = "/parse-pptx"

// ParserService forwards uploaded presentations to the external
// extraction service and normalizes its responses. It keeps the three
// failure modes distinct: unreachable upstream, upstream-reported
// rejection, and local unexpected failure.
type ParserService struct {
	baseURL string
	client  *http.Client
	logger  domain.Logger
}

// NewParserService creates a gateway bound to the configured
// extraction service address and timeout.
func NewParserService(config domain.Config, logger domain.Logger) *ParserService {
	return &ParserService{
		baseURL: strings.TrimRight(config.GetParserURL(), "/"),
		client:  &http.Client{Timeout: config.GetParserTimeout()},
		logger:  logger,
	}
}

// Parse sends the file as a multipart body and returns the structured
// notes unchanged on success.
func (s *ParserService) Parse(ctx context.Context, file io.Reader, filename string) (*domain.ParseResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+parseEndpoint, &body)
	if err != nil {
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	s.logger.Info("Sending file to extraction service", "filename", filename)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("Extraction service unreachable", err, "url", s.baseURL)
		return nil, apperrors.NewUpstreamUnavailableError("Failed to connect to backend: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := resp.Status
		var upstream struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&upstream); err == nil && upstream.Error != "" {
			msg = upstream.Error
		}
		s.logger.Error("Extraction service rejected file", nil, "status", resp.StatusCode, "message", msg)
		return nil, apperrors.NewUpstreamRejectedError("Backend parsing failed: "+msg, nil)
	}

	var result domain.ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}
	if result.Topics == nil {
		result.Topics = domain.NotesBundle{}
	}

	s.logger.Info("Extraction service returned notes", "topics", len(result.Topics))
	return &result, nil
}

// Healthy probes the extraction service base address. Any HTTP
// response counts as reachable; only a transport failure does not.
func (s *ParserService) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
