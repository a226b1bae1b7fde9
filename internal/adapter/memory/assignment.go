package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
)

// AssignmentRepository is an in-memory port/assignment.Repository. Bindings
// are unique per ticket id, which is what makes concurrent duplicate assigns
// collapse to exactly one success.
type AssignmentRepository struct {
	mu        sync.Mutex
	bindings  map[uuid.UUID]ticket.Binding
	decisions map[uuid.UUID][]ticket.Decision
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{
		bindings:  make(map[uuid.UUID]ticket.Binding),
		decisions: make(map[uuid.UUID][]ticket.Decision),
	}
}

func (r *AssignmentRepository) GetBinding(_ context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error) {
	r.mu.Lock()
	b, ok := r.bindings[ticketID]
	r.mu.Unlock()
	if !ok || b.TenantID != tenantID {
		return ticket.Binding{}, ticket.ErrNotAssigned
	}
	return b, nil
}

func (r *AssignmentRepository) Bind(_ context.Context, b ticket.Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bindings[b.TicketID]; exists {
		return ticket.ErrAlreadyAssigned
	}
	r.bindings[b.TicketID] = b
	return nil
}

func (r *AssignmentRepository) ClearBinding(_ context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bindings[ticketID]
	if !ok || b.TenantID != tenantID {
		return ticket.Binding{}, ticket.ErrNotAssigned
	}
	delete(r.bindings, ticketID)
	return b, nil
}

func (r *AssignmentRepository) FlagForReview(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flagged := 0
	for id, b := range r.bindings {
		if b.TenantID == tenantID && b.QueueID == queueID && b.AgentID == agentID && !b.NeedsReview {
			b.NeedsReview = true
			r.bindings[id] = b
			flagged++
		}
	}
	return flagged, nil
}

func (r *AssignmentRepository) CountOpenByMember(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, b := range r.bindings {
		if b.TenantID == tenantID && b.QueueID == queueID && b.AgentID == agentID {
			count++
		}
	}
	return count, nil
}

func (r *AssignmentRepository) RecordDecision(_ context.Context, d ticket.Decision) error {
	r.mu.Lock()
	r.decisions[d.TicketID] = append(r.decisions[d.TicketID], d)
	r.mu.Unlock()
	return nil
}

func (r *AssignmentRepository) ListDecisions(_ context.Context, tenantID tenant.ID, ticketID uuid.UUID) ([]ticket.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ticket.Decision
	for _, d := range r.decisions[ticketID] {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DecidedAt.After(out[j].DecidedAt) })
	return out, nil
}
