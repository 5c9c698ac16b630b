package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// Handler serves the marketing content and page shell.
type Handler struct {
	content Content
	page    *template.Template
	logger  *logging.Logger
}

// NewHandler parses the page template once.
func NewHandler(content Content, logger *logging.Logger) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("site: parse page template: %w", err)
	}
	return &Handler{content: content, page: page, logger: logger}, nil
}

// GetContent handles GET /api/site/content.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if err := json.NewEncoder(w).Encode(h.content); err != nil {
		h.logger.Error("failed to encode site content", "error", err)
	}
}

// Page handles GET / and renders the full page before writing it.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, h.content); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
