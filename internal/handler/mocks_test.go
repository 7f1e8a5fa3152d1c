package handler

import (
	"context"
	"io"

	"pptx-notes-server/internal/domain"
)

// Mock logger used by handler package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// Mock parser gateway used by notes handler tests.
type mockParser struct {
	result  *domain.ParseResult
	err     error
	calls   int
	healthy bool
}

func (m *mockParser) Parse(ctx context.Context, file io.Reader, filename string) (*domain.ParseResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockParser) Healthy(ctx context.Context) bool {
	return m.healthy
}

// Mock exporter used by notes handler tests.
type mockExporter struct {
	data  []byte
	err   error
	calls int
}

func (m *mockExporter) Export(bundle domain.NotesBundle) ([]byte, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

// Mock payment provider used by payment handler tests.
type mockPaymentProvider struct {
	intent *domain.PaymentIntent
	err    error
	calls  int
}

func (m *mockPaymentProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}
