package queue

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

var (
	ErrNotFound             = errors.New("queue not found")
	ErrDuplicateName        = errors.New("an active queue with this name already exists")
	ErrDuplicateMember      = errors.New("agent is already a member of this queue")
	ErrMemberNotFound       = errors.New("agent is not a member of this queue")
	ErrQueueInactive        = errors.New("queue is inactive")
	ErrMemberHasOpenTickets = errors.New("member has open tickets assigned in this queue")
)

const (
	MinCapacity     = 1
	MaxCapacity     = 50
	DefaultCapacity = 10

	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
)

// ErrInvalidCapacity and ErrInvalidPriority carry the declared bounds so
// transport can surface them without re-stating the ranges.
var (
	ErrInvalidCapacity = fmt.Errorf("capacity must be between %d and %d", MinCapacity, MaxCapacity)
	ErrInvalidPriority = fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
)

// Strategy is the closed set of distribution strategies. The set is fixed and
// exhaustively tested, no dynamic dispatch.
type Strategy string

const (
	StrategyRoundRobin       Strategy = "round_robin"
	StrategyLeastBusy        Strategy = "least_busy"
	StrategyPriorityWeighted Strategy = "priority_weighted"
	StrategyManual           Strategy = "manual"
)

// ParseStrategy validates a strategy name coming from config or a request.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRoundRobin, StrategyLeastBusy, StrategyPriorityWeighted, StrategyManual:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown distribution strategy %q", s)
}

// Queue is a named bucket of incoming tickets with a default distribution
// strategy and member agents. Queues are deactivated, never hard-deleted,
// while tickets still reference them.
type Queue struct {
	ID          uuid.UUID `json:"id"`
	TenantID    tenant.ID `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	Order       int       `json:"order"`
	Strategy    Strategy  `json:"strategy"`
	Hours       *Schedule `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (q Queue) Owner() tenant.ID { return q.TenantID }

// Open reports whether the queue can receive new assignments at the given
// wall-clock time. A nil schedule means always open.
func (q Queue) Open(at time.Time) bool {
	if !q.Active {
		return false
	}
	if q.Hours == nil {
		return true
	}
	return q.Hours.Contains(at)
}

func New(tenantID tenant.ID, name, description string, order int, strategy Strategy, hours *Schedule) Queue {
	now := time.Now().UTC()
	return Queue{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Active:      true,
		Order:       order,
		Strategy:    strategy,
		Hours:       hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Membership relates an agent to a queue. Position records insertion order and
// drives the round-robin scan order. An agent appears at most once per queue.
type Membership struct {
	QueueID   uuid.UUID `json:"queue_id"`
	TenantID  tenant.ID `json:"tenant_id"`
	AgentID   uuid.UUID `json:"agent_id"`
	Capacity  int       `json:"capacity"`
	Priority  int       `json:"priority"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (m Membership) Owner() tenant.ID { return m.TenantID }

// Validate checks capacity and priority against the declared bounds.
func (m Membership) Validate() error {
	if m.Capacity < MinCapacity || m.Capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	if m.Priority < MinPriority || m.Priority > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

func NewMembership(tenantID tenant.ID, queueID, agentID uuid.UUID, capacity, priority int) Membership {
	return Membership{
		QueueID:   queueID,
		TenantID:  tenantID,
		AgentID:   agentID,
		Capacity:  capacity,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
}
