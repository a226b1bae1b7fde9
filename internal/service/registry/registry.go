package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/event"
	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	portassignment "github.com/omnidesk/ticketflow/internal/port/assignment"
	portbus "github.com/omnidesk/ticketflow/internal/port/eventbus"
	portqueue "github.com/omnidesk/ticketflow/internal/port/queue"
	"github.com/omnidesk/ticketflow/internal/service/strategy"
	workloadsvc "github.com/omnidesk/ticketflow/internal/service/workload"
)

// Service manages queue and membership lifecycle. Deactivating a queue or
// removing a member never deletes outstanding workload counters: open
// tickets are drained through the coordinator's Release, which prevents
// counter leaks.
type Service struct {
	queues          portqueue.Repository
	bindings        portassignment.Repository
	workload        *workloadsvc.Service
	bus             portbus.EventBus
	defaultStrategy domainqueue.Strategy
}

func NewService(
	queues portqueue.Repository,
	bindings portassignment.Repository,
	workload *workloadsvc.Service,
	bus portbus.EventBus,
	defaultStrategy domainqueue.Strategy,
) *Service {
	return &Service{
		queues:          queues,
		bindings:        bindings,
		workload:        workload,
		bus:             bus,
		defaultStrategy: defaultStrategy,
	}
}

func (s *Service) CreateQueue(ctx context.Context, tenantID tenant.ID, name, description string, order int, strat domainqueue.Strategy, hours *domainqueue.Schedule) (domainqueue.Queue, error) {
	if strat == "" {
		strat = s.defaultStrategy
	}
	if _, err := domainqueue.ParseStrategy(string(strat)); err != nil {
		return domainqueue.Queue{}, err
	}

	taken, err := s.queues.ActiveByName(ctx, tenantID, name)
	if err != nil {
		return domainqueue.Queue{}, fmt.Errorf("check queue name: %w", err)
	}
	if taken {
		return domainqueue.Queue{}, domainqueue.ErrDuplicateName
	}

	created, err := s.queues.CreateQueue(ctx, domainqueue.New(tenantID, name, description, order, strat, hours))
	if err != nil {
		return domainqueue.Queue{}, fmt.Errorf("create queue: %w", err)
	}

	s.publish(ctx, event.New(event.TypeQueueCreated, tenantID, created.ID))
	return created, nil
}

func (s *Service) GetQueue(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (domainqueue.Queue, error) {
	q, err := s.queues.GetQueue(ctx, tenantID, queueID)
	if err != nil {
		return domainqueue.Queue{}, fmt.Errorf("get queue: %w", err)
	}
	if err := s.guard(ctx, tenantID, q, "GetQueue"); err != nil {
		return domainqueue.Queue{}, err
	}
	return q, nil
}

func (s *Service) ListQueues(ctx context.Context, tenantID tenant.ID, activeOnly bool) ([]domainqueue.Queue, error) {
	queues, err := s.queues.ListQueues(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list queues: %w", err)
	}
	return queues, nil
}

func (s *Service) UpdateQueue(ctx context.Context, q domainqueue.Queue) error {
	existing, err := s.queues.GetQueue(ctx, q.TenantID, q.ID)
	if err != nil {
		return fmt.Errorf("get queue for update: %w", err)
	}
	if err := s.guard(ctx, q.TenantID, existing, "UpdateQueue"); err != nil {
		return err
	}
	if _, err := domainqueue.ParseStrategy(string(q.Strategy)); err != nil {
		return err
	}
	if q.Name != existing.Name {
		taken, err := s.queues.ActiveByName(ctx, q.TenantID, q.Name)
		if err != nil {
			return fmt.Errorf("check queue name: %w", err)
		}
		if taken {
			return domainqueue.ErrDuplicateName
		}
	}
	q.UpdatedAt = time.Now().UTC()
	if err := s.queues.UpdateQueue(ctx, q); err != nil {
		return fmt.Errorf("update queue: %w", err)
	}
	return nil
}

// Deactivate soft-deletes the queue. Existing assignments and their workload
// counters stay untouched; new assignments against the queue fail with
// ErrQueueInactive in the coordinator.
func (s *Service) Deactivate(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) error {
	q, err := s.queues.GetQueue(ctx, tenantID, queueID)
	if err != nil {
		return fmt.Errorf("get queue: %w", err)
	}
	if err := s.guard(ctx, tenantID, q, "Deactivate"); err != nil {
		return err
	}
	if err := s.queues.Deactivate(ctx, tenantID, queueID); err != nil {
		return fmt.Errorf("deactivate queue: %w", err)
	}

	s.publish(ctx, event.New(event.TypeQueueDeactivated, tenantID, queueID))
	return nil
}

// AddMember registers an agent in a queue. Zero capacity or priority take the
// declared defaults; out-of-range values are rejected before any write.
func (s *Service) AddMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity, priority int) (domainqueue.Membership, error) {
	if capacity == 0 {
		capacity = domainqueue.DefaultCapacity
	}
	if priority == 0 {
		priority = domainqueue.DefaultPriority
	}

	m := domainqueue.NewMembership(tenantID, queueID, agentID, capacity, priority)
	if err := m.Validate(); err != nil {
		return domainqueue.Membership{}, err
	}

	q, err := s.queues.GetQueue(ctx, tenantID, queueID)
	if err != nil {
		return domainqueue.Membership{}, fmt.Errorf("get queue: %w", err)
	}
	if err := s.guard(ctx, tenantID, q, "AddMember"); err != nil {
		return domainqueue.Membership{}, err
	}

	created, err := s.queues.AddMember(ctx, m)
	if err != nil {
		if errors.Is(err, domainqueue.ErrDuplicateMember) {
			return domainqueue.Membership{}, domainqueue.ErrDuplicateMember
		}
		return domainqueue.Membership{}, fmt.Errorf("add member: %w", err)
	}

	s.publish(ctx, event.New(event.TypeMemberAdded, tenantID, queueID).WithMeta("agent_id", agentID.String()))
	return created, nil
}

func (s *Service) UpdateMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity, priority int) (domainqueue.Membership, error) {
	m, err := s.queues.GetMember(ctx, tenantID, queueID, agentID)
	if err != nil {
		return domainqueue.Membership{}, fmt.Errorf("get member: %w", err)
	}
	if err := s.guard(ctx, tenantID, m, "UpdateMember"); err != nil {
		return domainqueue.Membership{}, err
	}

	m.Capacity = capacity
	m.Priority = priority
	if err := m.Validate(); err != nil {
		return domainqueue.Membership{}, err
	}
	if err := s.queues.UpdateMember(ctx, m); err != nil {
		return domainqueue.Membership{}, fmt.Errorf("update member: %w", err)
	}
	return m, nil
}

// RemoveMember fails with ErrMemberHasOpenTickets while the agent still holds
// open tickets in the queue, unless force is set. Forced removal leaves the
// tickets assigned but flags their bindings for manual reassignment review.
func (s *Service) RemoveMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, force bool) error {
	m, err := s.queues.GetMember(ctx, tenantID, queueID, agentID)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if err := s.guard(ctx, tenantID, m, "RemoveMember"); err != nil {
		return err
	}

	open, err := s.bindings.CountOpenByMember(ctx, tenantID, queueID, agentID)
	if err != nil {
		return fmt.Errorf("count open tickets: %w", err)
	}
	if open > 0 {
		if !force {
			return domainqueue.ErrMemberHasOpenTickets
		}
		flagged, err := s.bindings.FlagForReview(ctx, tenantID, queueID, agentID)
		if err != nil {
			return fmt.Errorf("flag open tickets for review: %w", err)
		}
		slog.WarnContext(ctx, "member force-removed with open tickets",
			"tenant_id", tenantID, "queue_id", queueID, "agent_id", agentID, "flagged", flagged)
	}

	if err := s.queues.RemoveMember(ctx, tenantID, queueID, agentID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	s.publish(ctx, event.New(event.TypeMemberRemoved, tenantID, queueID).WithMeta("agent_id", agentID.String()))
	return nil
}

// ListEligibleAgents returns the queue members able to take a ticket at the
// given instant, in insertion order with their current loads. Empty when the
// queue is inactive or outside its operating hours. Callers handle the
// no-eligible-agent case explicitly.
func (s *Service) ListEligibleAgents(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID, at time.Time) ([]strategy.Candidate, error) {
	q, err := s.queues.GetQueue(ctx, tenantID, queueID)
	if err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}
	if err := s.guard(ctx, tenantID, q, "ListEligibleAgents"); err != nil {
		return nil, err
	}
	if !q.Open(at) {
		return nil, nil
	}

	members, err := s.queues.ListMembers(ctx, tenantID, queueID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	loads, err := s.workload.Snapshot(ctx, tenantID, queueID)
	if err != nil {
		return nil, err
	}

	candidates := make([]strategy.Candidate, 0, len(members))
	for _, m := range members {
		c := strategy.Candidate{
			AgentID:  m.AgentID,
			Capacity: m.Capacity,
			Priority: m.Priority,
			Position: m.Position,
			Load:     loads[m.AgentID],
		}
		if c.Eligible() {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

// guard re-checks ownership of entities loaded from storage or cache; on a
// mismatch it records the violation on the audit channel before surfacing it.
func (s *Service) guard(ctx context.Context, expected tenant.ID, entity tenant.Owned, operation string) error {
	if err := tenant.Guard(expected, entity); err != nil {
		s.publish(ctx, event.New(event.TypeIsolationViolation, entity.Owner(), uuid.Nil).
			WithMeta("attempted_tenant", expected.String()).
			WithMeta("operation", operation))
		return err
	}
	return nil
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "type", e.Type, "error", err)
	}
}
