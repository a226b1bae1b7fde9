package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type counterKey struct {
	tenantID tenant.ID
	queueID  uuid.UUID
	agentID  uuid.UUID
}

// WorkloadRepository keeps the per-(tenant, queue, agent) counters in a keyed
// map guarded by one mutex. Every mutation is a read-modify-write under the
// lock, which makes IncrementIfBelow linearizable against concurrent callers.
type WorkloadRepository struct {
	mu       sync.Mutex
	counters map[counterKey]int
}

func NewWorkloadRepository() *WorkloadRepository {
	return &WorkloadRepository{counters: make(map[counterKey]int)}
}

func (r *WorkloadRepository) Load(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[counterKey{tenantID, queueID, agentID}], nil
}

func (r *WorkloadRepository) Snapshot(_ context.Context, tenantID tenant.ID, queueID uuid.UUID) (map[uuid.UUID]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := make(map[uuid.UUID]int)
	for key, count := range r.counters {
		if key.tenantID == tenantID && key.queueID == queueID {
			snap[key.agentID] = count
		}
	}
	return snap, nil
}

func (r *WorkloadRepository) IncrementIfBelow(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := counterKey{tenantID, queueID, agentID}
	if r.counters[key] >= capacity {
		return false, nil
	}
	r.counters[key]++
	return true, nil
}

func (r *WorkloadRepository) ForceIncrement(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	r.mu.Lock()
	r.counters[counterKey{tenantID, queueID, agentID}]++
	r.mu.Unlock()
	return nil
}

func (r *WorkloadRepository) Decrement(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := counterKey{tenantID, queueID, agentID}
	if r.counters[key] <= 0 {
		return false, nil
	}
	r.counters[key]--
	return true, nil
}
