package workload

import (
	"context"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

// Repository maintains the per-(tenant, queue, agent) open-ticket counters.
// All mutations to one key are linearizable: implementations use a
// conditional UPDATE (postgres) or a CAS under a per-key mutex (memory).
type Repository interface {
	// Load returns the current counter value, 0 for unknown keys.
	Load(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error)

	// Snapshot returns a point-in-time agentID→load mapping for one queue.
	// Callers must tolerate staleness between snapshot and commit.
	Snapshot(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (map[uuid.UUID]int, error)

	// IncrementIfBelow atomically increments the counter only while it is
	// below capacity. Returns false (and leaves the counter untouched) when
	// the agent is already at capacity. This is the re-validation that restores
	// correctness after a stale snapshot.
	IncrementIfBelow(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity int) (bool, error)

	// ForceIncrement bypasses the capacity check. Manual assignments only.
	ForceIncrement(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error

	// Decrement floors at 0 and reports whether it actually decremented.
	// A false return with no error means the counter was already 0.
	Decrement(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (bool, error)
}
