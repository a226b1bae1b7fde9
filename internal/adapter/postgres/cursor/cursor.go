package cursor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pglocker "github.com/omnidesk/ticketflow/internal/adapter/postgres/locker"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	portlocker "github.com/omnidesk/ticketflow/internal/port/locker"
)

// Store persists round-robin cursors so fairness survives restarts when the
// engine runs against postgres. An advisory lock keyed on (tenant, queue)
// serialises Advance across instances, the multi-node equivalent of the
// in-memory per-key mutex.
type Store struct {
	pool   *pgxpool.Pool
	locker portlocker.AdvisoryLocker
}

func New(pool *pgxpool.Pool, locker portlocker.AdvisoryLocker) *Store {
	return &Store{pool: pool, locker: locker}
}

func (s *Store) Advance(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID, fn func(current int) (int, error)) error {
	return s.locker.WithLock(ctx, pglocker.QueueKey(tenantID, queueID), func(ctx context.Context) error {
		current := -1
		err := s.pool.QueryRow(ctx,
			`SELECT position FROM rotation_cursors WHERE tenant_id = $1 AND queue_id = $2`,
			tenantID, queueID,
		).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("loading rotation cursor: %w", err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == current {
			return nil
		}

		_, err = s.pool.Exec(ctx, `
			INSERT INTO rotation_cursors (tenant_id, queue_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (tenant_id, queue_id) DO UPDATE SET position = $3`,
			tenantID, queueID, next,
		)
		if err != nil {
			return fmt.Errorf("storing rotation cursor: %w", err)
		}
		return nil
	})
}
