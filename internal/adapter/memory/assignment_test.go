package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidesk/ticketflow/internal/adapter/memory"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
)

func binding(tenantID, queueID, agentID uuid.UUID) ticket.Binding {
	return ticket.Binding{
		TicketID:   uuid.New(),
		TenantID:   tenantID,
		QueueID:    queueID,
		AgentID:    agentID,
		AssignedAt: time.Now().UTC(),
	}
}

func TestAssignmentRepo_ConcurrentBindsCollapseToOne(t *testing.T) {
	repo := memory.NewAssignmentRepository()
	ctx := context.Background()
	b := binding(uuid.New(), uuid.New(), uuid.New())

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Bind(ctx, b)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ticket.ErrAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestAssignmentRepo_ClearBindingReturnsAndRemoves(t *testing.T) {
	repo := memory.NewAssignmentRepository()
	ctx := context.Background()
	b := binding(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, repo.Bind(ctx, b))

	got, err := repo.ClearBinding(ctx, b.TenantID, b.TicketID)
	require.NoError(t, err)
	assert.Equal(t, b.AgentID, got.AgentID)

	_, err = repo.ClearBinding(ctx, b.TenantID, b.TicketID)
	assert.ErrorIs(t, err, ticket.ErrNotAssigned)
}

func TestAssignmentRepo_FlagForReviewScopedToAgentAndQueue(t *testing.T) {
	repo := memory.NewAssignmentRepository()
	ctx := context.Background()
	tenantID := uuid.New()
	queueID := uuid.New()
	agentID := uuid.New()

	first := binding(tenantID, queueID, agentID)
	second := binding(tenantID, queueID, agentID)
	other := binding(tenantID, queueID, uuid.New())
	require.NoError(t, repo.Bind(ctx, first))
	require.NoError(t, repo.Bind(ctx, second))
	require.NoError(t, repo.Bind(ctx, other))

	flagged, err := repo.FlagForReview(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.Equal(t, 2, flagged)

	got, err := repo.GetBinding(ctx, tenantID, first.TicketID)
	require.NoError(t, err)
	assert.True(t, got.NeedsReview)

	got, err = repo.GetBinding(ctx, tenantID, other.TicketID)
	require.NoError(t, err)
	assert.False(t, got.NeedsReview)

	// Repeating the flag is a no-op.
	flagged, err = repo.FlagForReview(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.Equal(t, 0, flagged)
}

func TestAssignmentRepo_CountOpenByMember(t *testing.T) {
	repo := memory.NewAssignmentRepository()
	ctx := context.Background()
	tenantID := uuid.New()
	queueID := uuid.New()
	agentID := uuid.New()

	require.NoError(t, repo.Bind(ctx, binding(tenantID, queueID, agentID)))
	require.NoError(t, repo.Bind(ctx, binding(tenantID, queueID, agentID)))
	require.NoError(t, repo.Bind(ctx, binding(tenantID, uuid.New(), agentID)))

	count, err := repo.CountOpenByMember(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAssignmentRepo_DecisionsNewestFirst(t *testing.T) {
	repo := memory.NewAssignmentRepository()
	ctx := context.Background()
	tenantID := uuid.New()
	ticketID := uuid.New()

	older := ticket.Decision{TicketID: ticketID, TenantID: tenantID, Outcome: ticket.OutcomeSaturated, DecidedAt: time.Now().Add(-time.Minute)}
	newer := ticket.Decision{TicketID: ticketID, TenantID: tenantID, Outcome: ticket.OutcomeAssigned, DecidedAt: time.Now()}
	require.NoError(t, repo.RecordDecision(ctx, older))
	require.NoError(t, repo.RecordDecision(ctx, newer))

	ds, err := repo.ListDecisions(ctx, tenantID, ticketID)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, ticket.OutcomeAssigned, ds[0].Outcome)
	assert.Equal(t, ticket.OutcomeSaturated, ds[1].Outcome)
}
