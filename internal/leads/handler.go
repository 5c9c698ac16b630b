package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// SubmittedMessage is shown to the visitor after a successful submission.
const SubmittedMessage = "Your message has been received. We'll get back to you shortly!"

// Notifier is told about every new lead.
type Notifier interface {
	NotifyLead(ctx context.Context, lead *Lead) error
}

// Handler handles HTTP requests for leads
type Handler struct {
	repo     Repository
	notifier Notifier
	logger   *logging.Logger
}

// NewHandler creates a new leads handler. notifier may be nil.
func NewHandler(repo Repository, notifier Notifier, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateLeadResponse is returned on 201.
type CreateLeadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CreateLead handles POST /api/leads requests
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode lead request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrUnknownService) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create lead", "error", err)
		http.Error(w, "failed to save request", http.StatusInternalServerError)
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "service", lead.Service)

	if h.notifier != nil {
		if err := h.notifier.NotifyLead(r.Context(), lead); err != nil {
			h.logger.Error("lead notification failed", "id", lead.ID, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CreateLeadResponse{ID: lead.ID, Message: SubmittedMessage})
}
