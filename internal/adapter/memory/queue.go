package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type memberKey struct {
	queueID uuid.UUID
	agentID uuid.UUID
}

// QueueRepository is an in-memory port/queue.Repository. Cross-tenant reads
// report ErrNotFound, matching the row-filter behaviour of the postgres
// implementation, so callers cannot probe other tenants' queue ids.
type QueueRepository struct {
	mu      sync.RWMutex
	queues  map[uuid.UUID]domainqueue.Queue
	members map[memberKey]domainqueue.Membership
	nextPos map[uuid.UUID]int
}

func NewQueueRepository() *QueueRepository {
	return &QueueRepository{
		queues:  make(map[uuid.UUID]domainqueue.Queue),
		members: make(map[memberKey]domainqueue.Membership),
		nextPos: make(map[uuid.UUID]int),
	}
}

func (r *QueueRepository) CreateQueue(_ context.Context, q domainqueue.Queue) (domainqueue.Queue, error) {
	r.mu.Lock()
	r.queues[q.ID] = q
	r.mu.Unlock()
	return q, nil
}

func (r *QueueRepository) GetQueue(_ context.Context, tenantID tenant.ID, queueID uuid.UUID) (domainqueue.Queue, error) {
	r.mu.RLock()
	q, ok := r.queues[queueID]
	r.mu.RUnlock()
	if !ok || q.TenantID != tenantID {
		return domainqueue.Queue{}, domainqueue.ErrNotFound
	}
	return q, nil
}

func (r *QueueRepository) ListQueues(_ context.Context, tenantID tenant.ID, activeOnly bool) ([]domainqueue.Queue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domainqueue.Queue
	for _, q := range r.queues {
		if q.TenantID != tenantID {
			continue
		}
		if activeOnly && !q.Active {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *QueueRepository) UpdateQueue(_ context.Context, q domainqueue.Queue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.queues[q.ID]
	if !ok || existing.TenantID != q.TenantID {
		return domainqueue.ErrNotFound
	}
	r.queues[q.ID] = q
	return nil
}

func (r *QueueRepository) ActiveByName(_ context.Context, tenantID tenant.ID, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.queues {
		if q.TenantID == tenantID && q.Active && q.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *QueueRepository) Deactivate(_ context.Context, tenantID tenant.ID, queueID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queues[queueID]
	if !ok || q.TenantID != tenantID {
		return domainqueue.ErrNotFound
	}
	q.Active = false
	r.queues[queueID] = q
	return nil
}

func (r *QueueRepository) AddMember(_ context.Context, m domainqueue.Membership) (domainqueue.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey{queueID: m.QueueID, agentID: m.AgentID}
	if _, exists := r.members[key]; exists {
		return domainqueue.Membership{}, domainqueue.ErrDuplicateMember
	}
	m.Position = r.nextPos[m.QueueID]
	r.nextPos[m.QueueID]++
	r.members[key] = m
	return m, nil
}

func (r *QueueRepository) GetMember(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (domainqueue.Membership, error) {
	r.mu.RLock()
	m, ok := r.members[memberKey{queueID: queueID, agentID: agentID}]
	r.mu.RUnlock()
	if !ok || m.TenantID != tenantID {
		return domainqueue.Membership{}, domainqueue.ErrMemberNotFound
	}
	return m, nil
}

func (r *QueueRepository) ListMembers(_ context.Context, tenantID tenant.ID, queueID uuid.UUID) ([]domainqueue.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domainqueue.Membership
	for _, m := range r.members {
		if m.QueueID == queueID && m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *QueueRepository) UpdateMember(_ context.Context, m domainqueue.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey{queueID: m.QueueID, agentID: m.AgentID}
	existing, ok := r.members[key]
	if !ok || existing.TenantID != m.TenantID {
		return domainqueue.ErrMemberNotFound
	}
	m.Position = existing.Position
	r.members[key] = m
	return nil
}

func (r *QueueRepository) RemoveMember(_ context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey{queueID: queueID, agentID: agentID}
	m, ok := r.members[key]
	if !ok || m.TenantID != tenantID {
		return domainqueue.ErrMemberNotFound
	}
	delete(r.members, key)
	return nil
}
