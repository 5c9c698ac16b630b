package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portosolutions/tv-mounting/pkg/logging"
)

type recordingNotifier struct {
	leads []*Lead
	err   error
}

func (n *recordingNotifier) NotifyLead(_ context.Context, lead *Lead) error {
	n.leads = append(n.leads, lead)
	return n.err
}

func postLead(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateLead(w, req)
	return w
}

func TestCreateLead_Success(t *testing.T) {
	repo := NewInMemoryRepository(0)
	notifier := &recordingNotifier{}
	handler := NewHandler(repo, notifier, logging.Discard())

	reqBody := CreateLeadRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "+1234567890",
		Service: ServiceCommercial,
		Message: "Six TVs for a restaurant",
	}
	body, _ := json.Marshal(reqBody)
	w := postLead(t, handler, string(body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var resp CreateLeadResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != SubmittedMessage {
		t.Errorf("unexpected message %q", resp.Message)
	}

	lead, err := repo.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("expected stored lead: %v", err)
	}
	if lead.Service != ServiceCommercial || lead.Source != "contact_form" {
		t.Errorf("unexpected lead %+v", lead)
	}
	if len(notifier.leads) != 1 || notifier.leads[0].ID != resp.ID {
		t.Errorf("expected notifier to receive the lead")
	}
}

func TestCreateLead_DefaultsService(t *testing.T) {
	repo := NewInMemoryRepository(0)
	handler := NewHandler(repo, nil, logging.Discard())

	w := postLead(t, handler, `{"name":"  Ana ","email":"ana@example.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp CreateLeadResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	lead, _ := repo.GetByID(context.Background(), resp.ID)
	if lead.Service != ServiceStandard {
		t.Errorf("expected default service standard, got %s", lead.Service)
	}
	if lead.Name != "Ana" {
		t.Errorf("expected trimmed name, got %q", lead.Name)
	}
}

func TestCreateLead_InvalidRequest(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(0), nil, logging.Discard())

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.co"}`},
		{"missing email", `{"name":"Ana"}`},
		{"malformed email", `{"name":"Ana","email":"not-an-email"}`},
		{"unknown service", `{"name":"Ana","email":"a@b.co","service":"plumbing"}`},
		{"bad json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postLead(t, handler, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestCreateLead_NotifierFailureStillAccepts(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	handler := NewHandler(NewInMemoryRepository(0), notifier, logging.Discard())

	w := postLead(t, handler, `{"name":"Ana","email":"ana@example.com","service":"premium"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if len(notifier.leads) != 1 {
		t.Fatalf("expected notifier call")
	}
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, *CreateLeadRequest) (*Lead, error) {
	return nil, errors.New("disk full")
}

func (failingRepo) GetByID(context.Context, string) (*Lead, error) { return nil, ErrLeadNotFound }

func TestCreateLead_RepositoryError(t *testing.T) {
	handler := NewHandler(failingRepo{}, nil, logging.Discard())
	body, _ := json.Marshal(map[string]string{"name": "Ana", "email": "ana@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateLead(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
