package booking

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portosolutions/tv-mounting/pkg/logging"
)

const maxEventBytes = 16 << 10

// Handler exposes booking sessions over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("booking: service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes mounts the booking API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sessions", h.StartSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.AbandonSession)
		r.Post("/events", h.ApplyEvent)
	})
	r.Get("/ws", h.HandleWebSocket)
	return r
}

// EventResponse is returned for every applied or rejected event.
type EventResponse struct {
	View
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// StartSession handles POST /api/booking/sessions
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start booking session", "error", err)
		http.Error(w, "failed to start booking", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, session.View())
}

// GetSession handles GET /api/booking/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.View())
}

// ApplyEvent handles POST /api/booking/sessions/{sessionID}/events
func (h *Handler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	evt, err := ParseEvent(body)
	if err != nil {
		h.logger.Debug("failed to decode booking event", "error", err, "session_id", id)
		http.Error(w, "Invalid event", http.StatusBadRequest)
		return
	}

	session, tr, err := h.service.Apply(r.Context(), id, evt)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EventResponse{View: session.View(), Applied: tr.Applied, Reason: tr.Reason})
}

// AbandonSession handles DELETE /api/booking/sessions/{sessionID}
func (h *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.service.Abandon(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "booking session not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingSessionID), errors.Is(err, ErrUnknownEvent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("booking request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
