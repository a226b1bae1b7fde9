package assigner_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidesk/ticketflow/internal/adapter/memory"
	"github.com/omnidesk/ticketflow/internal/domain/event"
	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
	"github.com/omnidesk/ticketflow/internal/service/assigner"
	registrysvc "github.com/omnidesk/ticketflow/internal/service/registry"
	workloadsvc "github.com/omnidesk/ticketflow/internal/service/workload"
	"github.com/omnidesk/ticketflow/internal/testutil"
)

// engine wires the full assignment path over the in-memory adapters: real
// registry, real workload accounting, real cursor store, capture bus.
type engine struct {
	assigner *assigner.Service
	registry *registrysvc.Service
	workload *workloadsvc.Service
	bus      *testutil.CaptureBus
}

func newEngine(t *testing.T, cfg assigner.Config) *engine {
	t.Helper()
	queues := memory.NewQueueRepository()
	bindings := memory.NewAssignmentRepository()
	bus := testutil.NewCaptureBus()
	wl := workloadsvc.NewService(memory.NewWorkloadRepository())
	reg := registrysvc.NewService(queues, bindings, wl, bus, domainqueue.StrategyRoundRobin)
	asg := assigner.NewService(queues, reg, wl, bindings, memory.NewCursorStore(), bus, cfg)
	return &engine{assigner: asg, registry: reg, workload: wl, bus: bus}
}

// seedQueue creates a queue with the given strategy and members. Each member
// is (capacity, priority); returned agent ids follow the input order.
func (e *engine) seedQueue(t *testing.T, tenantID tenant.ID, strat domainqueue.Strategy, members ...[2]int) (domainqueue.Queue, []uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	q, err := e.registry.CreateQueue(ctx, tenantID, "support", "", 0, strat, nil)
	require.NoError(t, err)

	agents := make([]uuid.UUID, len(members))
	for i, m := range members {
		agents[i] = uuid.New()
		_, err := e.registry.AddMember(ctx, tenantID, q.ID, agents[i], m[0], m[1])
		require.NoError(t, err)
	}
	return q, agents
}

func TestEngine_LeastBusyFillsToCapacityThenSaturates(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{2, 5}, [2]int{2, 5}, [2]int{2, 5})

	perAgent := map[uuid.UUID]int{}
	for i := 0; i < 6; i++ {
		d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
		require.NoError(t, err)
		require.Equal(t, ticket.OutcomeAssigned, d.Outcome, "ticket %d", i)
		perAgent[*d.AgentID]++
	}
	for _, a := range agents {
		assert.Equal(t, 2, perAgent[a], "agent %s load", a)
	}

	d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)
	assert.Equal(t, ticket.OutcomeSaturated, d.Outcome)
	assert.Len(t, e.bus.OfType(event.TypeQueueSaturated), 1)
}

func TestEngine_RoundRobinRotatesFairly(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyRoundRobin, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5})

	var got []uuid.UUID
	for i := 0; i < 6; i++ {
		d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
		require.NoError(t, err)
		got = append(got, *d.AgentID)
	}
	want := []uuid.UUID{agents[0], agents[1], agents[2], agents[0], agents[1], agents[2]}
	assert.Equal(t, want, got)
}

func TestEngine_RoundRobinSkipsSaturatedAgent(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyRoundRobin, [2]int{1, 5}, [2]int{5, 5})

	d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)
	assert.Equal(t, agents[0], *d.AgentID)

	// Agent 0 is now full: the next two picks both land on agent 1.
	for i := 0; i < 2; i++ {
		d, err = e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
		require.NoError(t, err)
		assert.Equal(t, agents[1], *d.AgentID)
	}
}

func TestEngine_PriorityWeightedDrainsLowBucketFirst(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyPriorityWeighted, [2]int{2, 1}, [2]int{2, 5})

	// First two tickets go to the priority-1 agent, next two spill to the
	// priority-5 agent, fifth saturates the queue.
	for i := 0; i < 2; i++ {
		d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
		require.NoError(t, err)
		assert.Equal(t, agents[0], *d.AgentID, "ticket %d", i)
	}
	for i := 2; i < 4; i++ {
		d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
		require.NoError(t, err)
		assert.Equal(t, agents[1], *d.AgentID, "ticket %d", i)
	}

	d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)
	assert.Equal(t, ticket.OutcomeSaturated, d.Outcome)
}

func TestEngine_ConcurrentDuplicateAssignBindsOnce(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, _ := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{10, 5}, [2]int{10, 5})
	ticketID := uuid.New()

	const callers = 8
	outcomes := make([]ticket.Outcome, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := e.assigner.Assign(ctx, tenantID, ticketID, q.ID, assigner.Options{})
			outcomes[i] = d.Outcome
			errs[i] = err
		}(i)
	}
	wg.Wait()

	var assigned, duplicate int
	for i := 0; i < callers; i++ {
		switch {
		case errs[i] == nil && outcomes[i] == ticket.OutcomeAssigned:
			assigned++
		case errs[i] != nil:
			assert.ErrorIs(t, errs[i], ticket.ErrAlreadyAssigned)
			duplicate++
		}
	}
	assert.Equal(t, 1, assigned, "exactly one caller wins the binding")
	assert.Equal(t, callers-1, duplicate)
	assert.Len(t, e.bus.OfType(event.TypeAssignmentMade), 1)

	// Exactly one workload slot is held despite the racing reserves.
	b, err := e.assigner.GetBinding(ctx, tenantID, ticketID)
	require.NoError(t, err)
	load, err := e.workload.CurrentLoad(ctx, tenantID, q.ID, b.AgentID)
	require.NoError(t, err)
	assert.Equal(t, 1, load)
}

func TestEngine_ReleaseFreesCapacity(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{1, 5})

	first := uuid.New()
	d, err := e.assigner.Assign(ctx, tenantID, first, q.ID, assigner.Options{})
	require.NoError(t, err)
	require.Equal(t, ticket.OutcomeAssigned, d.Outcome)

	d, err = e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)
	require.Equal(t, ticket.OutcomeSaturated, d.Outcome)

	require.NoError(t, e.assigner.Release(ctx, tenantID, first))

	d, err = e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)
	assert.Equal(t, ticket.OutcomeAssigned, d.Outcome)
	assert.Equal(t, agents[0], *d.AgentID)
}

func TestEngine_DoubleReleaseDoesNotUnderflow(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{3, 5})

	ticketID := uuid.New()
	_, err := e.assigner.Assign(ctx, tenantID, ticketID, q.ID, assigner.Options{})
	require.NoError(t, err)

	require.NoError(t, e.assigner.Release(ctx, tenantID, ticketID))
	require.NoError(t, e.assigner.Release(ctx, tenantID, ticketID))

	load, err := e.workload.CurrentLoad(ctx, tenantID, q.ID, agents[0])
	require.NoError(t, err)
	assert.Equal(t, 0, load)
	assert.Len(t, e.bus.OfType(event.TypeAssignmentReleased), 1)
}

func TestEngine_ManualAssignOverCapacity(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{1, 5})

	_, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	require.NoError(t, err)

	// Agent is full; a manual assignment still lands and is audited as a
	// capacity bypass.
	d, err := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{ManualAgentID: &agents[0]})
	require.NoError(t, err)
	assert.Equal(t, ticket.OutcomeAssigned, d.Outcome)
	assert.True(t, d.CapacityBypassed)

	load, err := e.workload.CurrentLoad(ctx, tenantID, q.ID, agents[0])
	require.NoError(t, err)
	assert.Equal(t, 2, load)
}

func TestEngine_DeactivatedQueueRejectsAssignments(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, _ := e.seedQueue(t, tenantID, domainqueue.StrategyRoundRobin, [2]int{5, 5})

	ticketID := uuid.New()
	_, err := e.assigner.Assign(ctx, tenantID, ticketID, q.ID, assigner.Options{})
	require.NoError(t, err)

	require.NoError(t, e.registry.Deactivate(ctx, tenantID, q.ID))

	_, err = e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
	assert.ErrorIs(t, err, domainqueue.ErrQueueInactive)

	// The existing assignment survives deactivation and can still be released.
	b, err := e.assigner.GetBinding(ctx, tenantID, ticketID)
	require.NoError(t, err)
	assert.Equal(t, ticketID, b.TicketID)
	require.NoError(t, e.assigner.Release(ctx, tenantID, ticketID))
}

func TestEngine_DecisionTrailRecordsEveryAttempt(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{})
	q, _ := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{1, 5})

	ticketID := uuid.New()
	_, err := e.assigner.Assign(ctx, tenantID, ticketID, q.ID, assigner.Options{})
	require.NoError(t, err)

	// Duplicate attempt without reassign is itself recorded.
	_, err = e.assigner.Assign(ctx, tenantID, ticketID, q.ID, assigner.Options{})
	require.ErrorIs(t, err, ticket.ErrAlreadyAssigned)

	ds, err := e.assigner.Decisions(ctx, tenantID, ticketID)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, ticket.OutcomeAlreadyAssigned, ds[0].Outcome)
	assert.Equal(t, ticket.OutcomeAssigned, ds[1].Outcome)
}

func TestEngine_TenantsNeverCross(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, assigner.Config{})

	tenantA := uuid.New()
	tenantB := uuid.New()
	qA, _ := e.seedQueue(t, tenantA, domainqueue.StrategyRoundRobin, [2]int{5, 5})

	// Tenant B cannot see, assign into, or deactivate tenant A's queue.
	_, err := e.registry.GetQueue(ctx, tenantB, qA.ID)
	assert.ErrorIs(t, err, domainqueue.ErrNotFound)

	_, err = e.assigner.Assign(ctx, tenantB, uuid.New(), qA.ID, assigner.Options{})
	assert.ErrorIs(t, err, domainqueue.ErrNotFound)

	err = e.registry.Deactivate(ctx, tenantB, qA.ID)
	assert.ErrorIs(t, err, domainqueue.ErrNotFound)

	// A ticket assigned under tenant A is invisible to tenant B.
	ticketID := uuid.New()
	_, err = e.assigner.Assign(ctx, tenantA, ticketID, qA.ID, assigner.Options{})
	require.NoError(t, err)
	_, err = e.assigner.GetBinding(ctx, tenantB, ticketID)
	assert.ErrorIs(t, err, ticket.ErrNotAssigned)
}

func TestEngine_ConcurrentAssignsNeverOversubscribe(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	e := newEngine(t, assigner.Config{RetryLimit: 5})
	q, agents := e.seedQueue(t, tenantID, domainqueue.StrategyLeastBusy, [2]int{3, 5}, [2]int{3, 5})

	const tickets = 12 // double the total capacity of 6
	var wg sync.WaitGroup
	results := make([]ticket.Decision, tickets)
	for i := 0; i < tickets; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, _ := e.assigner.Assign(ctx, tenantID, uuid.New(), q.ID, assigner.Options{})
			results[i] = d
		}(i)
	}
	wg.Wait()

	var assigned int
	for _, d := range results {
		if d.Outcome == ticket.OutcomeAssigned {
			assigned++
		}
	}
	assert.Equal(t, 6, assigned, "assignments must equal total capacity")

	for _, a := range agents {
		load, err := e.workload.CurrentLoad(ctx, tenantID, q.ID, a)
		require.NoError(t, err)
		assert.LessOrEqual(t, load, 3, "agent %s over capacity", a)
	}
}
