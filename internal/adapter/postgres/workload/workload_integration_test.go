//go:build integration

package workload_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgworkload "github.com/omnidesk/ticketflow/internal/adapter/postgres/workload"
	"github.com/omnidesk/ticketflow/internal/testutil"
)

func TestWorkloadRepository_ConcurrentIncrementsRespectCapacity(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := pgworkload.New(pool)
	ctx := context.Background()
	tenantID := uuid.New()
	queueID := uuid.New()
	agentID := uuid.New()

	const capacity = 5
	const callers = 20

	var wg sync.WaitGroup
	granted := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.IncrementIfBelow(ctx, tenantID, queueID, agentID, capacity)
			require.NoError(t, err)
			granted[i] = ok
		}(i)
	}
	wg.Wait()

	var wins int
	for _, ok := range granted {
		if ok {
			wins++
		}
	}
	assert.Equal(t, capacity, wins)

	load, err := repo.Load(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.Equal(t, capacity, load)
}

func TestWorkloadRepository_DecrementFloorsAtZero(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := pgworkload.New(pool)
	ctx := context.Background()
	tenantID := uuid.New()
	queueID := uuid.New()
	agentID := uuid.New()

	applied, err := repo.Decrement(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, repo.ForceIncrement(ctx, tenantID, queueID, agentID))

	applied, err = repo.Decrement(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.Decrement(ctx, tenantID, queueID, agentID)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestWorkloadRepository_Snapshot(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := pgworkload.New(pool)
	ctx := context.Background()
	tenantID := uuid.New()
	queueID := uuid.New()
	agentA := uuid.New()
	agentB := uuid.New()

	require.NoError(t, repo.ForceIncrement(ctx, tenantID, queueID, agentA))
	require.NoError(t, repo.ForceIncrement(ctx, tenantID, queueID, agentB))
	require.NoError(t, repo.ForceIncrement(ctx, tenantID, queueID, agentB))

	snap, err := repo.Snapshot(ctx, tenantID, queueID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{agentA: 1, agentB: 2}, snap)
}
