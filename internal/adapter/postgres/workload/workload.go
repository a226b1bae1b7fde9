package workload

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

// Repository stores workload counters as one row per (tenant, queue, agent).
// Mutations are single conditional statements, so linearizability comes from
// the database's row-level locking, with no read-modify-write in Go.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Load(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(
			(SELECT open_count FROM workload_counters
			 WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3), 0)`,
		tenantID, queueID, agentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("loading workload counter: %w", err)
	}
	return count, nil
}

func (r *Repository) Snapshot(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT agent_id, open_count FROM workload_counters WHERE tenant_id = $1 AND queue_id = $2`,
		tenantID, queueID,
	)
	if err != nil {
		return nil, fmt.Errorf("snapshotting workload: %w", err)
	}
	defer rows.Close()

	snap := make(map[uuid.UUID]int)
	for rows.Next() {
		var agentID uuid.UUID
		var count int
		if err := rows.Scan(&agentID, &count); err != nil {
			return nil, fmt.Errorf("scanning workload row: %w", err)
		}
		snap[agentID] = count
	}
	return snap, rows.Err()
}

// IncrementIfBelow is the storage-level "increment-if-below-capacity"
// primitive: a single upsert whose guard re-validates capacity at commit
// time, even when the caller's snapshot was stale.
func (r *Repository) IncrementIfBelow(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID, capacity int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO workload_counters (tenant_id, queue_id, agent_id, open_count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (tenant_id, queue_id, agent_id)
		DO UPDATE SET open_count = workload_counters.open_count + 1
		WHERE workload_counters.open_count < $4`,
		tenantID, queueID, agentID, capacity,
	)
	if err != nil {
		return false, fmt.Errorf("incrementing workload counter: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ForceIncrement(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO workload_counters (tenant_id, queue_id, agent_id, open_count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (tenant_id, queue_id, agent_id)
		DO UPDATE SET open_count = workload_counters.open_count + 1`,
		tenantID, queueID, agentID,
	)
	if err != nil {
		return fmt.Errorf("force-incrementing workload counter: %w", err)
	}
	return nil
}

// Decrement floors at 0 through its WHERE guard; a zero rows-affected result
// tells the service layer to log the inconsistency.
func (r *Repository) Decrement(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE workload_counters SET open_count = open_count - 1
		WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3 AND open_count > 0`,
		tenantID, queueID, agentID,
	)
	if err != nil {
		return false, fmt.Errorf("decrementing workload counter: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
