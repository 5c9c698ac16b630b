package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLeads bounds the in-memory repository.
const DefaultMaxLeads = 500

// Repository defines the interface for lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
}

// InMemoryRepository keeps the most recent leads in memory. Leads are
// emailed to the operator on arrival; this is only a short-lived buffer.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
	order []string
	max   int
	now   func() time.Time
}

// NewInMemoryRepository creates a repository holding at most max leads.
func NewInMemoryRepository(max int) *InMemoryRepository {
	if max <= 0 {
		max = DefaultMaxLeads
	}
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
		max:   max,
		now:   time.Now,
	}
}

// Create validates req and stores a new lead, evicting the oldest when full.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		Message:   req.Message,
		Source:    req.Source,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.leads, oldest)
	}
	r.leads[lead.ID] = lead
	r.order = append(r.order, lead.ID)

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	copied := *lead
	return &copied, nil
}

// Len reports how many leads are buffered.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
