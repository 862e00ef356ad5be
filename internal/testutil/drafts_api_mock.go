package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RecordedRequest is a request captured by MockDraftsAPI.
type RecordedRequest struct {
	Method  string
	Path    string
	Body    string
	Headers http.Header
}

// MockDraftsAPI is an httptest server standing in for the remote drafts API.
// It records every request and answers with configurable bodies and status codes.
type MockDraftsAPI struct {
	Server *httptest.Server

	// CreateBody is the JSON returned from POST /portfolioDrafts.
	// Empty means a fresh {"id": "<uuid>"} per call.
	CreateBody   string
	CreateStatus int
	// StepBody is returned from the step endpoint. Empty echoes the request body.
	StepBody   string
	StepStatus int

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewMockDraftsAPI starts a mock API that is shut down when the test completes.
func NewMockDraftsAPI(t *testing.T) *MockDraftsAPI {
	t.Helper()

	m := &MockDraftsAPI{
		CreateStatus: http.StatusCreated,
		StepStatus:   http.StatusCreated,
	}

	r := chi.NewRouter()
	r.Post("/portfolioDrafts", m.createDraft)
	r.Post("/portfolioDrafts/{portfolioDraftId}/portfolio", m.createStep)

	m.Server = httptest.NewServer(r)
	t.Cleanup(m.Server.Close)
	return m
}

// WithCreateResponse configures the draft creation answer.
func (m *MockDraftsAPI) WithCreateResponse(status int, body string) *MockDraftsAPI {
	m.CreateStatus = status
	m.CreateBody = body
	return m
}

// WithStepResponse configures the portfolio step answer.
func (m *MockDraftsAPI) WithStepResponse(status int, body string) *MockDraftsAPI {
	m.StepStatus = status
	m.StepBody = body
	return m
}

// URL returns the base URL of the mock API.
func (m *MockDraftsAPI) URL() string {
	return m.Server.URL
}

// Requests returns a copy of every request received so far, in order.
func (m *MockDraftsAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// CountPath returns how many requests hit a path matching pred.
func (m *MockDraftsAPI) CountPath(pred func(path string) bool) int {
	n := 0
	for _, r := range m.Requests() {
		if pred(r.Path) {
			n++
		}
	}
	return n
}

func (m *MockDraftsAPI) record(r *http.Request) string {
	body, _ := io.ReadAll(r.Body)
	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.EscapedPath(),
		Body:    string(body),
		Headers: r.Header.Clone(),
	})
	m.mu.Unlock()
	return string(body)
}

func (m *MockDraftsAPI) createDraft(w http.ResponseWriter, r *http.Request) {
	m.record(r)
	body := m.CreateBody
	if body == "" {
		body = fmt.Sprintf(`{"id": %q, "status": "not_started"}`, uuid.NewString())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.CreateStatus)
	_, _ = io.WriteString(w, body)
}

func (m *MockDraftsAPI) createStep(w http.ResponseWriter, r *http.Request) {
	reqBody := m.record(r)
	body := m.StepBody
	if body == "" {
		body = reqBody
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.StepStatus)
	_, _ = io.WriteString(w, body)
}
