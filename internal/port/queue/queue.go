package queue

import (
	"context"

	"github.com/google/uuid"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

// Repository is the tenant-scoped storage contract for queues and their
// memberships. Every method filters by tenant; implementations return
// domainqueue.ErrNotFound for rows owned by other tenants so callers cannot
// distinguish "missing" from "not yours".
type Repository interface {
	CreateQueue(ctx context.Context, q domainqueue.Queue) (domainqueue.Queue, error)
	GetQueue(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (domainqueue.Queue, error)
	ListQueues(ctx context.Context, tenantID tenant.ID, activeOnly bool) ([]domainqueue.Queue, error)
	UpdateQueue(ctx context.Context, q domainqueue.Queue) error

	// ActiveByName reports whether the tenant already has an active queue
	// with the given name. Used for the duplicate-name guard.
	ActiveByName(ctx context.Context, tenantID tenant.ID, name string) (bool, error)

	// Deactivate soft-deletes: active=false, row and memberships retained.
	Deactivate(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) error

	AddMember(ctx context.Context, m domainqueue.Membership) (domainqueue.Membership, error)
	GetMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (domainqueue.Membership, error)
	// ListMembers returns memberships ordered by Position (insertion order).
	ListMembers(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) ([]domainqueue.Membership, error)
	UpdateMember(ctx context.Context, m domainqueue.Membership) error
	RemoveMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error
}

// Reader is the narrow read-side the assignment coordinator needs.
type Reader interface {
	GetQueue(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (domainqueue.Queue, error)
	GetMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (domainqueue.Membership, error)
	ListMembers(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) ([]domainqueue.Membership, error)
}
