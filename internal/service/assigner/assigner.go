package assigner

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
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
	"github.com/omnidesk/ticketflow/internal/metrics"
	portassignment "github.com/omnidesk/ticketflow/internal/port/assignment"
	portcursor "github.com/omnidesk/ticketflow/internal/port/cursor"
	portbus "github.com/omnidesk/ticketflow/internal/port/eventbus"
	portqueue "github.com/omnidesk/ticketflow/internal/port/queue"
	"github.com/omnidesk/ticketflow/internal/service/strategy"
	workloadsvc "github.com/omnidesk/ticketflow/internal/service/workload"
)

// ErrQueueSaturated is returned instead of a pending decision only when the
// engine is configured with SaturationIsError. Saturation is otherwise an
// expected operating condition, not an error.
var ErrQueueSaturated = errors.New("queue saturated")

// errStale marks an agent that saturated between snapshot and reserve; the
// coordinator refreshes the snapshot and re-runs selection.
var errStale = errors.New("chosen agent saturated since snapshot")

const DefaultRetryLimit = 3

// Config is the engine's recognized option surface.
type Config struct {
	DefaultStrategy   domainqueue.Strategy
	RetryLimit        int
	SaturationIsError bool
}

func (c Config) withDefaults() Config {
	if c.DefaultStrategy == "" {
		c.DefaultStrategy = domainqueue.StrategyRoundRobin
	}
	if c.RetryLimit <= 0 {
		c.RetryLimit = DefaultRetryLimit
	}
	return c
}

// EligibleLister is the narrow slice of the registry the coordinator needs.
type EligibleLister interface {
	ListEligibleAgents(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID, at time.Time) ([]strategy.Candidate, error)
}

// Options tunes a single assignment attempt.
type Options struct {
	// StrategyOverride replaces the queue's default strategy for this call.
	StrategyOverride domainqueue.Strategy
	// ManualAgentID routes directly to one agent: membership is validated,
	// the capacity check is skipped, and the bypass is audited.
	ManualAgentID *uuid.UUID
	// Reassign releases an existing open assignment before assigning again.
	// Without it an open-assigned ticket fails with ErrAlreadyAssigned.
	Reassign bool
}

// Service is the assignment coordinator. It owns the end-to-end transaction
// (validate, select, reserve, bind, emit) and compensates with a decrement on
// every failure branch after the reserve, so the workload counters never
// drift from the committed bindings.
type Service struct {
	queues   portqueue.Reader
	eligible EligibleLister
	workload *workloadsvc.Service
	bindings portassignment.Repository
	cursors  portcursor.Store
	bus      portbus.EventBus
	cfg      Config
	now      func() time.Time
}

func NewService(
	queues portqueue.Reader,
	eligible EligibleLister,
	workload *workloadsvc.Service,
	bindings portassignment.Repository,
	cursors portcursor.Store,
	bus portbus.EventBus,
	cfg Config,
) *Service {
	return &Service{
		queues:   queues,
		eligible: eligible,
		workload: workload,
		bindings: bindings,
		cursors:  cursors,
		bus:      bus,
		cfg:      cfg.withDefaults(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Assign routes one ticket to an agent in the queue. At most one successful
// assignment exists per open ticket: a concurrent duplicate observes either
// ErrAlreadyAssigned or the first caller's result, never a second binding.
func (s *Service) Assign(ctx context.Context, tenantID tenant.ID, ticketID, queueID uuid.UUID, opts Options) (ticket.Decision, error) {
	q, err := s.queues.GetQueue(ctx, tenantID, queueID)
	if err != nil {
		return ticket.Decision{}, fmt.Errorf("get queue: %w", err)
	}
	if err := s.guard(ctx, tenantID, q, "Assign"); err != nil {
		return ticket.Decision{}, err
	}
	if !q.Active {
		return ticket.Decision{}, domainqueue.ErrQueueInactive
	}

	// Idempotency: an open-assigned ticket is never silently re-assigned.
	existing, err := s.bindings.GetBinding(ctx, tenantID, ticketID)
	switch {
	case err == nil:
		if !opts.Reassign {
			d := s.decide(tenantID, ticketID, queueID, &existing.AgentID, ticket.OutcomeAlreadyAssigned, q.Strategy, false, "ticket already assigned")
			s.record(ctx, d)
			return d, ticket.ErrAlreadyAssigned
		}
		if err := s.Release(ctx, tenantID, ticketID); err != nil {
			return ticket.Decision{}, fmt.Errorf("release prior assignment: %w", err)
		}
	case errors.Is(err, ticket.ErrNotAssigned):
		// No open binding, proceed.
	default:
		return ticket.Decision{}, fmt.Errorf("check existing binding: %w", err)
	}

	strat := s.resolveStrategy(q, opts)
	if strat == domainqueue.StrategyManual || opts.ManualAgentID != nil {
		return s.assignManual(ctx, tenantID, ticketID, q, opts.ManualAgentID)
	}

	return s.assignBySelection(ctx, tenantID, ticketID, q, strat)
}

func (s *Service) resolveStrategy(q domainqueue.Queue, opts Options) domainqueue.Strategy {
	if opts.StrategyOverride != "" {
		return opts.StrategyOverride
	}
	if q.Strategy != "" {
		return q.Strategy
	}
	return s.cfg.DefaultStrategy
}

// assignBySelection runs the bounded snapshot→select→reserve→bind loop. A
// stale snapshot (agent saturated before the reserve committed) retries with
// a fresh snapshot up to the configured limit; exhausting the limit yields a
// saturated decision rather than oversubscribing an agent.
func (s *Service) assignBySelection(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID, q domainqueue.Queue, strat domainqueue.Strategy) (ticket.Decision, error) {
	var lastErr error

	for attempt := 0; attempt < s.cfg.RetryLimit; attempt++ {
		candidates, err := s.eligible.ListEligibleAgents(ctx, tenantID, q.ID, s.now())
		if err != nil {
			return ticket.Decision{}, err
		}
		if len(candidates) == 0 {
			return s.saturated(ctx, tenantID, ticketID, q.ID, strat, "no eligible agent")
		}

		var chosen uuid.UUID
		err = s.cursors.Advance(ctx, tenantID, q.ID, func(cur int) (int, error) {
			agentID, next, serr := strategy.Select(strat, candidates, cur)
			if serr != nil {
				return cur, serr
			}
			ok, werr := s.workload.Reserve(ctx, tenantID, q.ID, agentID, capacityOf(candidates, agentID))
			if werr != nil {
				return cur, werr
			}
			if !ok {
				return cur, errStale
			}
			chosen = agentID
			return next, nil
		})
		switch {
		case errors.Is(err, strategy.ErrNoEligibleAgent):
			return s.saturated(ctx, tenantID, ticketID, q.ID, strat, "all agents at capacity")
		case errors.Is(err, errStale):
			lastErr = err
			continue
		case err != nil:
			return ticket.Decision{}, err
		}

		d, err := s.commit(ctx, tenantID, ticketID, q.ID, chosen, strat, false)
		if err != nil {
			if errors.Is(err, ticket.ErrAlreadyAssigned) {
				return d, err
			}
			// Bind failed after the reserve; the slot was already given back.
			lastErr = err
			continue
		}
		return d, nil
	}

	slog.ErrorContext(ctx, "assignment retries exhausted",
		"tenant_id", tenantID, "ticket_id", ticketID, "queue_id", q.ID, "error", lastErr)
	if errors.Is(lastErr, errStale) {
		return s.saturated(ctx, tenantID, ticketID, q.ID, strat, "agents saturated during retries")
	}
	return ticket.Decision{}, fmt.Errorf("%w: %v", ticket.ErrAssignmentFailed, lastErr)
}

// assignManual validates membership only; capacity is deliberately skipped
// and the bypass recorded for audit.
func (s *Service) assignManual(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID, q domainqueue.Queue, agentID *uuid.UUID) (ticket.Decision, error) {
	if agentID == nil {
		return ticket.Decision{}, fmt.Errorf("manual strategy requires a target agent")
	}
	m, err := s.queues.GetMember(ctx, tenantID, q.ID, *agentID)
	if err != nil {
		return ticket.Decision{}, fmt.Errorf("validate membership: %w", err)
	}
	if err := s.guard(ctx, tenantID, m, "Assign"); err != nil {
		return ticket.Decision{}, err
	}

	if err := s.workload.ForceReserve(ctx, tenantID, q.ID, *agentID); err != nil {
		return ticket.Decision{}, err
	}
	return s.commit(ctx, tenantID, ticketID, q.ID, *agentID, domainqueue.StrategyManual, true)
}

// commit persists the binding and emits the event. A failed bind rolls the
// reserved slot back so the counter never drifts from committed bindings.
func (s *Service) commit(ctx context.Context, tenantID tenant.ID, ticketID, queueID, agentID uuid.UUID, strat domainqueue.Strategy, bypassed bool) (ticket.Decision, error) {
	b := ticket.Binding{
		TicketID:   ticketID,
		TenantID:   tenantID,
		QueueID:    queueID,
		AgentID:    agentID,
		AssignedAt: s.now(),
	}
	if err := s.bindings.Bind(ctx, b); err != nil {
		if rerr := s.workload.Release(ctx, tenantID, queueID, agentID); rerr != nil {
			slog.ErrorContext(ctx, "compensating release failed",
				"tenant_id", tenantID, "queue_id", queueID, "agent_id", agentID, "error", rerr)
		}
		if errors.Is(err, ticket.ErrAlreadyAssigned) {
			d := s.decide(tenantID, ticketID, queueID, nil, ticket.OutcomeAlreadyAssigned, strat, bypassed, "concurrent assignment won")
			s.record(ctx, d)
			return d, ticket.ErrAlreadyAssigned
		}
		return ticket.Decision{}, fmt.Errorf("persist binding: %w", err)
	}

	d := s.decide(tenantID, ticketID, queueID, &agentID, ticket.OutcomeAssigned, strat, bypassed, "")
	s.record(ctx, d)
	s.publish(ctx, event.New(event.TypeAssignmentMade, tenantID, ticketID).
		WithMeta("queue_id", queueID.String()).
		WithMeta("agent_id", agentID.String()).
		WithMeta("strategy", string(strat)))
	metrics.AssignmentsTotal.WithLabelValues(tenantID.String(), queueID.String(), string(strat)).Inc()
	return d, nil
}

// saturated leaves the ticket pending in the queue and reports the condition
// through an event; callers only see an error under SaturationIsError.
func (s *Service) saturated(ctx context.Context, tenantID tenant.ID, ticketID, queueID uuid.UUID, strat domainqueue.Strategy, reason string) (ticket.Decision, error) {
	d := s.decide(tenantID, ticketID, queueID, nil, ticket.OutcomeSaturated, strat, false, reason)
	s.record(ctx, d)
	s.publish(ctx, event.New(event.TypeQueueSaturated, tenantID, ticketID).
		WithMeta("queue_id", queueID.String()))
	metrics.SaturationTotal.WithLabelValues(tenantID.String(), queueID.String()).Inc()

	if s.cfg.SaturationIsError {
		return d, ErrQueueSaturated
	}
	return d, nil
}

// Release clears a ticket's binding and frees its workload slot. Idempotent:
// releasing an already-released ticket is a no-op, not an error.
func (s *Service) Release(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) error {
	b, err := s.bindings.ClearBinding(ctx, tenantID, ticketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotAssigned) {
			return nil
		}
		return fmt.Errorf("clear binding: %w", err)
	}

	if err := s.workload.Release(ctx, tenantID, b.QueueID, b.AgentID); err != nil {
		return err
	}

	s.publish(ctx, event.New(event.TypeAssignmentReleased, tenantID, ticketID).
		WithMeta("queue_id", b.QueueID.String()).
		WithMeta("agent_id", b.AgentID.String()))
	metrics.ReleasesTotal.WithLabelValues(tenantID.String(), b.QueueID.String()).Inc()
	return nil
}

// GetBinding exposes the current assignment of a ticket.
func (s *Service) GetBinding(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error) {
	b, err := s.bindings.GetBinding(ctx, tenantID, ticketID)
	if err != nil {
		return ticket.Binding{}, err
	}
	if err := s.guard(ctx, tenantID, b, "GetBinding"); err != nil {
		return ticket.Binding{}, err
	}
	return b, nil
}

// Decisions returns the audit trail for one ticket, newest first.
func (s *Service) Decisions(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) ([]ticket.Decision, error) {
	ds, err := s.bindings.ListDecisions(ctx, tenantID, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	return ds, nil
}

func (s *Service) decide(tenantID tenant.ID, ticketID, queueID uuid.UUID, agentID *uuid.UUID, outcome ticket.Outcome, strat domainqueue.Strategy, bypassed bool, reason string) ticket.Decision {
	return ticket.Decision{
		TicketID:         ticketID,
		TenantID:         tenantID,
		QueueID:          queueID,
		AgentID:          agentID,
		Outcome:          outcome,
		Strategy:         strat,
		CapacityBypassed: bypassed,
		Reason:           reason,
		DecidedAt:        s.now(),
	}
}

func (s *Service) record(ctx context.Context, d ticket.Decision) {
	if err := s.bindings.RecordDecision(ctx, d); err != nil {
		slog.ErrorContext(ctx, "failed to record assignment decision",
			"ticket_id", d.TicketID, "outcome", d.Outcome, "error", err)
	}
}

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

func capacityOf(candidates []strategy.Candidate, agentID uuid.UUID) int {
	for _, c := range candidates {
		if c.AgentID == agentID {
			return c.Capacity
		}
	}
	return 0
}
