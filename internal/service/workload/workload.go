package workload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/metrics"
	portworkload "github.com/omnidesk/ticketflow/internal/port/workload"
)

// Service tracks per-agent open-ticket counters for each queue. It owns the
// increment/decrement discipline; the coordinator guarantees that every
// Reserve on a failure branch is matched by a Release.
type Service struct {
	repo portworkload.Repository
}

func NewService(repo portworkload.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CurrentLoad(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	load, err := s.repo.Load(ctx, tenantID, queueID, agentID)
	if err != nil {
		return 0, fmt.Errorf("load workload counter: %w", err)
	}
	return load, nil
}

// Snapshot is a point-in-time read used by strategy selection. It may be
// stale by the time Reserve commits; Reserve re-validates capacity.
func (s *Service) Snapshot(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (map[uuid.UUID]int, error) {
	snap, err := s.repo.Snapshot(ctx, tenantID, queueID)
	if err != nil {
		return nil, fmt.Errorf("snapshot workload: %w", err)
	}
	return snap, nil
}

// Reserve atomically takes one slot of the agent's capacity. A false return
// means the agent saturated between snapshot and commit and the caller should
// re-run selection.
func (s *Service) Reserve(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity int) (bool, error) {
	ok, err := s.repo.IncrementIfBelow(ctx, tenantID, queueID, agentID, capacity)
	if err != nil {
		return false, fmt.Errorf("reserve workload slot: %w", err)
	}
	if ok {
		metrics.AgentWorkload.WithLabelValues(tenantID.String(), queueID.String(), agentID.String()).Inc()
	}
	return ok, nil
}

// ForceReserve bypasses the capacity check. Manual assignments only; the
// bypass is recorded on the decision by the coordinator.
func (s *Service) ForceReserve(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	if err := s.repo.ForceIncrement(ctx, tenantID, queueID, agentID); err != nil {
		return fmt.Errorf("force-reserve workload slot: %w", err)
	}
	metrics.AgentWorkload.WithLabelValues(tenantID.String(), queueID.String(), agentID.String()).Inc()
	return nil
}

// Release gives one slot back. Floors at 0: a counter that would go negative
// is logged as an inconsistency but never fails the caller, because release
// paths (ticket close, compensation) must always complete.
func (s *Service) Release(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	applied, err := s.repo.Decrement(ctx, tenantID, queueID, agentID)
	if err != nil {
		return fmt.Errorf("release workload slot: %w", err)
	}
	if !applied {
		slog.WarnContext(ctx, "workload counter already at zero on release",
			"tenant_id", tenantID, "queue_id", queueID, "agent_id", agentID)
		return nil
	}
	metrics.AgentWorkload.WithLabelValues(tenantID.String(), queueID.String(), agentID.String()).Dec()
	return nil
}
