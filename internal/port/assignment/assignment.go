package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
)

// Repository persists ticket→agent bindings and the immutable decision audit
// trail. Bind is the commit point of an assignment: a successful Bind and the
// matching workload increment must never diverge, so every failed Bind is
// followed by a compensating decrement in the coordinator.
type Repository interface {
	// GetBinding returns ticket.ErrNotAssigned when no open binding exists.
	GetBinding(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error)

	// Bind inserts the binding. Returns ticket.ErrAlreadyAssigned if an open
	// binding for the ticket already exists (unique on ticket_id); the
	// guard that makes concurrent duplicate assigns yield exactly one
	// assignment.
	Bind(ctx context.Context, b ticket.Binding) error

	// ClearBinding removes the binding. Returns ticket.ErrNotAssigned when
	// there was none, so release can be idempotent.
	ClearBinding(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error)

	// FlagForReview marks all open bindings held by an agent in a queue as
	// needing manual reassignment review. Used by force member removal.
	FlagForReview(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error)

	// CountOpenByMember counts open bindings for one agent in one queue.
	CountOpenByMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error)

	RecordDecision(ctx context.Context, d ticket.Decision) error
	ListDecisions(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) ([]ticket.Decision, error)
}
