package flow

import (
	"context"
	"errors"
	"io"
	"sync"

	"pptx-notes-server/internal/domain"
)

// AcceptedContentType is the single presentation format the
// orchestrator accepts. Anything else is rejected before any network
// call.
const AcceptedContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// invalidFileMessage is shown to the user on a local type rejection.
const invalidFileMessage = "Please upload a valid .pptx file."

// UploadState is the orchestrator's lifecycle state.
type UploadState string

const (
	UploadStateIdle    UploadState = "idle"
	UploadStateLoading UploadState = "loading"
	UploadStateSuccess UploadState = "success"
	UploadStateError   UploadState = "error"
)

// Upload flow errors
var (
	ErrInvalidFileType = errors.New(invalidFileMessage)
	ErrUploadInFlight  = errors.New("an upload is already in progress")
	ErrPaymentRequired = errors.New("payment has not completed")
)

// Uploader is the network dependency of the orchestrator; APIClient
// satisfies it.
type Uploader interface {
	UploadPresentation(ctx context.Context, file io.Reader, filename string) (domain.NotesBundle, error)
}

// PaymentGate authorizes an upload. PaymentFlow satisfies it.
type PaymentGate interface {
	Succeeded() bool
}

// UploadFlow validates a selected file, issues the upload and tracks
// loading/result state so illegal combinations (loading with results)
// cannot be represented.
type UploadFlow struct {
	mu      sync.Mutex
	state   UploadState
	client  Uploader
	gate    PaymentGate
	topics  domain.NotesBundle
	lastErr error
}

// NewUploadFlow creates an idle orchestrator.
func NewUploadFlow(client Uploader) *UploadFlow {
	return &UploadFlow{
		state:  UploadStateIdle,
		client: client,
		topics: domain.NotesBundle{},
	}
}

// RequirePayment gates uploads behind a completed payment flow. The
// default composition leaves the two flows independent.
func (f *UploadFlow) RequirePayment(gate PaymentGate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = gate
}

// Upload validates the file's declared content type locally, then
// posts it and stores the resulting topics. Only one upload can be in
// flight per flow.
func (f *UploadFlow) Upload(ctx context.Context, file io.Reader, filename, contentType string) error {
	f.mu.Lock()
	if contentType != AcceptedContentType {
		f.mu.Unlock()
		return ErrInvalidFileType
	}
	if f.gate != nil && !f.gate.Succeeded() {
		f.mu.Unlock()
		return ErrPaymentRequired
	}
	if f.state == UploadStateLoading {
		f.mu.Unlock()
		return ErrUploadInFlight
	}
	f.state = UploadStateLoading
	f.mu.Unlock()

	topics, err := f.client.UploadPresentation(ctx, file, filename)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = UploadStateError
		f.lastErr = err
		return err
	}

	if topics == nil {
		topics = domain.NotesBundle{}
	}
	f.state = UploadStateSuccess
	f.topics = topics
	f.lastErr = nil
	return nil
}

// State returns the current lifecycle state.
func (f *UploadFlow) State() UploadState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Topics returns the last successful upload's bundle.
func (f *UploadFlow) Topics() domain.NotesBundle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.topics
}

// HasNotes reports whether a non-empty topics mapping exists; the
// renderer only mounts once this is true.
func (f *UploadFlow) HasNotes() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics) > 0
}

// Err returns the failure from the last upload attempt, if any.
func (f *UploadFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}
