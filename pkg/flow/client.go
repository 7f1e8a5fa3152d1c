// Package flow implements the client side of the notes pipeline: the
// upload orchestrator and the payment confirmation flow, each modeled
// as an explicit state machine, plus the HTTP client they share.
package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"pptx-notes-server/internal/domain"
)

// APIClient talks to the notes server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the given server base address. A
// nil httpClient falls back to http.DefaultClient.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// UploadPresentation posts the file and returns the extracted topics.
// An absent topics field degrades to an empty bundle.
func (c *APIClient) UploadPresentation(ctx context.Context, file io.Reader, filename string) (domain.NotesBundle, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notes", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errorMessage(resp))
	}

	var result domain.ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Topics == nil {
		result.Topics = domain.NotesBundle{}
	}
	return result.Topics, nil
}

// CreatePaymentIntent requests a client secret for the given amount in
// minor units.
func (c *APIClient) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	payload, err := json.Marshal(domain.CreateIntentRequest{Amount: float64(amount)})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/payments/intent", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(errorMessage(resp))
	}

	var result domain.CreateIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.ClientSecret, nil
}

// ExportNotes posts the bundle and returns the generated document.
func (c *APIClient) ExportNotes(ctx context.Context, bundle domain.NotesBundle) ([]byte, error) {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notes/export", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errorMessage(resp))
	}
	return io.ReadAll(resp.Body)
}

// errorMessage extracts the server's {"error": ...} body, falling back
// to the HTTP status line.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}
