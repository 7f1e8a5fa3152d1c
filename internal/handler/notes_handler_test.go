package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pptx-notes-server/internal/domain"
	"pptx-notes-server/internal/service"
	apperrors "pptx-notes-server/pkg/errors"
)

const testMaxFileSize = 15 << 20

func newTestNotesHandler(parser domain.ParserGateway, exporter domain.NotesExporter) *NotesHandler {
	return NewNotesHandler(parser, service.NewNotesService(&mockLogger{}), exporter, testMaxFileSize, &mockLogger{})
}

func multipartBody(t *testing.T, fieldName, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body["error"]
}

func TestUpload_MissingFile(t *testing.T) {
	parser := &mockParser{}
	h := newTestNotesHandler(parser, &mockExporter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "No file uploaded" {
		t.Fatalf("expected 'No file uploaded', got %q", got)
	}
	if parser.calls != 0 {
		t.Fatal("expected no forward for a missing file")
	}
}

func TestUpload_RejectsWrongExtension(t *testing.T) {
	parser := &mockParser{}
	h := newTestNotesHandler(parser, &mockExporter{})

	body, contentType := multipartBody(t, "file", "notes.pdf", "not a pptx")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if parser.calls != 0 {
		t.Fatal("expected no forward for a rejected file type")
	}
}

func TestUpload_PassesTopicsThroughUnchanged(t *testing.T) {
	parser := &mockParser{
		result: &domain.ParseResult{Topics: domain.NotesBundle{
			"All Notes": {
				GuidingQuestions: []string{"Q1", "Q2"},
				Definitions:      []string{},
				SpecificTopics:   map[string][]string{},
				Notes:            []string{"N1"},
				ImageReferences:  []string{},
			},
		}},
	}
	h := newTestNotesHandler(parser, &mockExporter{})

	body, contentType := multipartBody(t, "file", "lecture.pptx", "fake pptx")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result domain.ParseResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	notes := result.Topics.Topic("All Notes")
	if len(notes.GuidingQuestions) != 2 || len(notes.Notes) != 1 {
		t.Fatalf("expected topics passed through, got %+v", notes)
	}
}

func TestUpload_ErrorTaxonomyMapsToStatusAndMessage(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "upstream rejected",
			err:     apperrors.NewUpstreamRejectedError("Backend parsing failed: bad zip", nil),
			status:  http.StatusInternalServerError,
			message: "Backend parsing failed: bad zip",
		},
		{
			name:    "upstream unreachable",
			err:     apperrors.NewUpstreamUnavailableError("Failed to connect to backend: connection refused", nil),
			status:  http.StatusInternalServerError,
			message: "Failed to connect to backend: connection refused",
		},
		{
			name:    "unexpected",
			err:     apperrors.NewInternalError("Unexpected error occurred", nil),
			status:  http.StatusInternalServerError,
			message: "Unexpected error occurred",
		},
	}

	for _, tc := range cases {
		parser := &mockParser{err: tc.err}
		h := newTestNotesHandler(parser, &mockExporter{})

		body, contentType := multipartBody(t, "file", "lecture.pptx", "fake pptx")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		if rec.Code != tc.status {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.status, rec.Code)
		}
		if got := decodeError(t, rec); got != tc.message {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.message, got)
		}
	}
}

func TestExport_ReturnsPDFAttachment(t *testing.T) {
	exporter := &mockExporter{data: []byte("%PDF-1.4 fake")}
	h := newTestNotesHandler(&mockParser{}, exporter)

	payload, _ := json.Marshal(domain.NotesBundle{"All Notes": {Notes: []string{"N1"}}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes/export", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "academic_notes.pdf") {
		t.Fatalf("expected attachment filename, got %s", got)
	}
	if exporter.calls != 1 {
		t.Fatalf("expected one export call, got %d", exporter.calls)
	}
}

func TestExport_InvalidBody(t *testing.T) {
	exporter := &mockExporter{}
	h := newTestNotesHandler(&mockParser{}, exporter)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes/export", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if exporter.calls != 0 {
		t.Fatal("expected no export call for an invalid body")
	}
}

func TestRender_SectionedView(t *testing.T) {
	h := newTestNotesHandler(&mockParser{}, &mockExporter{})

	payload, _ := json.Marshal(domain.NotesBundle{"All Notes": {
		GuidingQuestions: []string{"Q1"},
		Notes:            []string{"N1", "N2"},
	}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes/render", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Render(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view service.RenderedNotes
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.Empty {
		t.Fatal("expected a populated view")
	}
	if len(view.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(view.Sections))
	}
	if view.Sections[1].Items[1] != "2. N2" {
		t.Fatalf("expected numbered entries, got %v", view.Sections[1].Items)
	}
}

func TestRender_EmptyBundle(t *testing.T) {
	h := newTestNotesHandler(&mockParser{}, &mockExporter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes/render", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Render(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view service.RenderedNotes
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !view.Empty || view.Message != "No notes available." {
		t.Fatalf("expected empty state, got %+v", view)
	}
}
