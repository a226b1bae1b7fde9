package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetBinding(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error) {
	query := `
		SELECT ticket_id, tenant_id, queue_id, agent_id, assigned_at, needs_review
		FROM ticket_bindings WHERE tenant_id = $1 AND ticket_id = $2`

	var b ticket.Binding
	err := r.pool.QueryRow(ctx, query, tenantID, ticketID).
		Scan(&b.TicketID, &b.TenantID, &b.QueueID, &b.AgentID, &b.AssignedAt, &b.NeedsReview)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Binding{}, ticket.ErrNotAssigned
		}
		return ticket.Binding{}, fmt.Errorf("fetching binding: %w", err)
	}
	return b, nil
}

// Bind relies on the primary key on ticket_id: under concurrent duplicate
// assigns exactly one insert lands and the loser sees ErrAlreadyAssigned.
func (r *Repository) Bind(ctx context.Context, b ticket.Binding) error {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO ticket_bindings (ticket_id, tenant_id, queue_id, agent_id, assigned_at, needs_review)
		VALUES ($1, $2, $3, $4, $5, false)
		ON CONFLICT (ticket_id) DO NOTHING`,
		b.TicketID, b.TenantID, b.QueueID, b.AgentID, b.AssignedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting binding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ticket.ErrAlreadyAssigned
	}
	return nil
}

func (r *Repository) ClearBinding(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) (ticket.Binding, error) {
	query := `
		DELETE FROM ticket_bindings WHERE tenant_id = $1 AND ticket_id = $2
		RETURNING ticket_id, tenant_id, queue_id, agent_id, assigned_at, needs_review`

	var b ticket.Binding
	err := r.pool.QueryRow(ctx, query, tenantID, ticketID).
		Scan(&b.TicketID, &b.TenantID, &b.QueueID, &b.AgentID, &b.AssignedAt, &b.NeedsReview)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Binding{}, ticket.ErrNotAssigned
		}
		return ticket.Binding{}, fmt.Errorf("clearing binding: %w", err)
	}
	return b, nil
}

func (r *Repository) FlagForReview(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ticket_bindings SET needs_review = true
		WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3 AND NOT needs_review`,
		tenantID, queueID, agentID,
	)
	if err != nil {
		return 0, fmt.Errorf("flagging bindings for review: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) CountOpenByMember(ctx context.Context, tenantID tenant.ID, queueID, agentID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ticket_bindings WHERE tenant_id = $1 AND queue_id = $2 AND agent_id = $3`,
		tenantID, queueID, agentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting open bindings: %w", err)
	}
	return count, nil
}

func (r *Repository) RecordDecision(ctx context.Context, d ticket.Decision) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assignment_decisions
			(ticket_id, tenant_id, queue_id, agent_id, outcome, strategy, capacity_bypassed, reason, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.TicketID, d.TenantID, d.QueueID, d.AgentID, string(d.Outcome), string(d.Strategy), d.CapacityBypassed, d.Reason, d.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("recording decision: %w", err)
	}
	return nil
}

func (r *Repository) ListDecisions(ctx context.Context, tenantID tenant.ID, ticketID uuid.UUID) ([]ticket.Decision, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ticket_id, tenant_id, queue_id, agent_id, outcome, strategy, capacity_bypassed, reason, decided_at
		FROM assignment_decisions
		WHERE tenant_id = $1 AND ticket_id = $2
		ORDER BY decided_at DESC`,
		tenantID, ticketID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var out []ticket.Decision
	for rows.Next() {
		var d ticket.Decision
		var outcome, strategy string
		if err := rows.Scan(&d.TicketID, &d.TenantID, &d.QueueID, &d.AgentID, &outcome, &strategy, &d.CapacityBypassed, &d.Reason, &d.DecidedAt); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		d.Outcome = ticket.Outcome(outcome)
		d.Strategy = domainqueue.Strategy(strategy)
		out = append(out, d)
	}
	return out, rows.Err()
}
