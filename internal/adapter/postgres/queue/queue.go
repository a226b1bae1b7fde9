package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const queueColumns = `id, tenant_id, name, description, active, display_order, strategy, hours_jsonb, created_at, updated_at`

func (r *Repository) CreateQueue(ctx context.Context, q domainqueue.Queue) (domainqueue.Queue, error) {
	hoursJSON, err := marshalHours(q.Hours)
	if err != nil {
		return domainqueue.Queue{}, err
	}

	query := `
		INSERT INTO queues (id, tenant_id, name, description, active, display_order, strategy, hours_jsonb, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING ` + queueColumns

	row := r.pool.QueryRow(ctx, query,
		q.ID, q.TenantID, q.Name, q.Description, q.Active, q.Order, string(q.Strategy), hoursJSON, q.CreatedAt, q.UpdatedAt,
	)
	created, err := scanQueue(row)
	if err != nil {
		return domainqueue.Queue{}, fmt.Errorf("inserting queue: %w", err)
	}
	return created, nil
}

func (r *Repository) GetQueue(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) (domainqueue.Queue, error) {
	query := `SELECT ` + queueColumns + ` FROM queues WHERE tenant_id = $1 AND id = $2`

	q, err := scanQueue(r.pool.QueryRow(ctx, query, tenantID, queueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainqueue.Queue{}, domainqueue.ErrNotFound
		}
		return domainqueue.Queue{}, fmt.Errorf("fetching queue: %w", err)
	}
	return q, nil
}

func (r *Repository) ListQueues(ctx context.Context, tenantID tenant.ID, activeOnly bool) ([]domainqueue.Queue, error) {
	query := `SELECT ` + queueColumns + ` FROM queues WHERE tenant_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY display_order, name`

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}
	defer rows.Close()

	var out []domainqueue.Queue
	for rows.Next() {
		q, err := scanQueue(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning queue: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateQueue(ctx context.Context, q domainqueue.Queue) error {
	hoursJSON, err := marshalHours(q.Hours)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE queues
		SET name = $3, description = $4, display_order = $5, strategy = $6, hours_jsonb = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`,
		q.TenantID, q.ID, q.Name, q.Description, q.Order, string(q.Strategy), hoursJSON, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating queue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainqueue.ErrNotFound
	}
	return nil
}

func (r *Repository) ActiveByName(ctx context.Context, tenantID tenant.ID, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM queues WHERE tenant_id = $1 AND name = $2 AND active)`,
		tenantID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking queue name: %w", err)
	}
	return exists, nil
}

func (r *Repository) Deactivate(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE queues SET active = false, updated_at = NOW() WHERE tenant_id = $1 AND id = $2`,
		tenantID, queueID,
	)
	if err != nil {
		return fmt.Errorf("deactivating queue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainqueue.ErrNotFound
	}
	return nil
}

const memberColumns = `queue_id, tenant_id, agent_id, capacity, priority, position, created_at`

// AddMember assigns the next position within the queue so round-robin scan
// order matches insertion order.
func (r *Repository) AddMember(ctx context.Context, m domainqueue.Membership) (domainqueue.Membership, error) {
	query := `
		INSERT INTO queue_members (queue_id, tenant_id, agent_id, capacity, priority, position, created_at)
		SELECT $1, $2, $3, $4, $5, COALESCE(MAX(position) + 1, 0), $6
		FROM queue_members WHERE queue_id = $1
		RETURNING ` + memberColumns

	row := r.pool.QueryRow(ctx, query, m.QueueID, m.TenantID, m.AgentID, m.Capacity, m.Priority, m.CreatedAt)
	created, err := scanMember(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainqueue.Membership{}, domainqueue.ErrDuplicateMember
		}
		return domainqueue.Membership{}, fmt.Errorf("inserting member: %w", err)
	}
	return created, nil
}

func (r *Repository) GetMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (domainqueue.Membership, error) {
	query := `SELECT ` + memberColumns + ` FROM queue_members WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3`

	m, err := scanMember(r.pool.QueryRow(ctx, query, tenantID, queueID, agentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainqueue.Membership{}, domainqueue.ErrMemberNotFound
		}
		return domainqueue.Membership{}, fmt.Errorf("fetching member: %w", err)
	}
	return m, nil
}

func (r *Repository) ListMembers(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID) ([]domainqueue.Membership, error) {
	query := `SELECT ` + memberColumns + ` FROM queue_members WHERE tenant_id = $1 AND queue_id = $2 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, tenantID, queueID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var out []domainqueue.Membership
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateMember(ctx context.Context, m domainqueue.Membership) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE queue_members SET capacity = $4, priority = $5
		WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3`,
		m.TenantID, m.QueueID, m.AgentID, m.Capacity, m.Priority,
	)
	if err != nil {
		return fmt.Errorf("updating member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainqueue.ErrMemberNotFound
	}
	return nil
}

func (r *Repository) RemoveMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM queue_members WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3`,
		tenantID, queueID, agentID,
	)
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainqueue.ErrMemberNotFound
	}
	return nil
}

func marshalHours(s *domainqueue.Schedule) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling schedule: %w", err)
	}
	return data, nil
}

func scanQueue(row pgx.Row) (domainqueue.Queue, error) {
	var q domainqueue.Queue
	var strategy string
	var hoursJSON []byte
	err := row.Scan(&q.ID, &q.TenantID, &q.Name, &q.Description, &q.Active, &q.Order, &strategy, &hoursJSON, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return domainqueue.Queue{}, err
	}
	q.Strategy = domainqueue.Strategy(strategy)
	if len(hoursJSON) > 0 {
		var s domainqueue.Schedule
		if err := json.Unmarshal(hoursJSON, &s); err != nil {
			return domainqueue.Queue{}, fmt.Errorf("unmarshaling schedule: %w", err)
		}
		q.Hours = &s
	}
	return q, nil
}

func scanMember(row pgx.Row) (domainqueue.Membership, error) {
	var m domainqueue.Membership
	err := row.Scan(&m.QueueID, &m.TenantID, &m.AgentID, &m.Capacity, &m.Priority, &m.Position, &m.CreatedAt)
	if err != nil {
		return domainqueue.Membership{}, err
	}
	return m, nil
}
