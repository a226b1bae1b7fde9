package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

var (
	// ErrAlreadyAssigned is an expected business condition: the ticket holds
	// an open assignment and the caller did not request reassignment.
	ErrAlreadyAssigned = errors.New("ticket is already assigned")

	// ErrAssignmentFailed is surfaced only after retries are exhausted and
	// every compensating rollback has run.
	ErrAssignmentFailed = errors.New("assignment failed")

	ErrNotAssigned = errors.New("ticket has no assignment")
)

// Binding is the persisted ticket→agent assignment. The engine treats the
// ticket itself as opaque; only the binding and its open/closed state gate
// workload accounting.
type Binding struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	TenantID    tenant.ID `json:"tenant_id"`
	QueueID     uuid.UUID `json:"queue_id"`
	AgentID     uuid.UUID `json:"agent_id"`
	AssignedAt  time.Time `json:"assigned_at"`
	NeedsReview bool      `json:"needs_review"`
}

func (b Binding) Owner() tenant.ID { return b.TenantID }

// Outcome classifies a single assignment attempt.
type Outcome string

const (
	OutcomeAssigned        Outcome = "assigned"
	OutcomeSaturated       Outcome = "saturated"
	OutcomeAlreadyAssigned Outcome = "already_assigned"
)

// Decision is the immutable audit record of one assignment attempt. AgentID
// is nil when no agent was chosen. CapacityBypassed marks manual assignments
// that skipped the capacity check.
type Decision struct {
	TicketID         uuid.UUID      `json:"ticket_id"`
	TenantID         tenant.ID      `json:"tenant_id"`
	QueueID          uuid.UUID      `json:"queue_id"`
	AgentID          *uuid.UUID     `json:"agent_id,omitempty"`
	Outcome          Outcome        `json:"outcome"`
	Strategy         queue.Strategy `json:"strategy"`
	CapacityBypassed bool           `json:"capacity_bypassed"`
	Reason           string         `json:"reason,omitempty"`
	DecidedAt        time.Time      `json:"decided_at"`
}

func (d Decision) Owner() tenant.ID { return d.TenantID }

// Assigned reports whether the attempt produced a live binding.
func (d Decision) Assigned() bool { return d.Outcome == OutcomeAssigned }
