package strategy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/service/strategy"
)

// Fixed ids so byte-order tiebreaks are stable across runs.
var (
	agentA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	agentB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	agentC = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

func candidate(id uuid.UUID, pos, load, capacity, priority int) strategy.Candidate {
	return strategy.Candidate{AgentID: id, Position: pos, Load: load, Capacity: capacity, Priority: priority}
}

func TestRoundRobin_CyclesInInsertionOrder(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 0, 5, 5),
		candidate(agentB, 1, 0, 5, 5),
		candidate(agentC, 2, 0, 5, 5),
	}

	cursor := -1
	want := []uuid.UUID{agentA, agentB, agentC, agentA, agentB}
	for i, expected := range want {
		chosen, next, err := strategy.Select(domainqueue.StrategyRoundRobin, candidates, cursor)
		require.NoError(t, err, "pick %d", i)
		assert.Equal(t, expected, chosen, "pick %d", i)
		cursor = next
	}
}

func TestRoundRobin_SkipsSaturatedMember(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 0, 5, 5),
		candidate(agentB, 1, 5, 5, 5), // full
		candidate(agentC, 2, 0, 5, 5),
	}

	chosen, next, err := strategy.Select(domainqueue.StrategyRoundRobin, candidates, 0)
	require.NoError(t, err)
	assert.Equal(t, agentC, chosen)
	assert.Equal(t, 2, next)
}

func TestRoundRobin_WrapsPastTail(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 0, 5, 5),
		candidate(agentB, 1, 0, 5, 5),
	}

	chosen, next, err := strategy.Select(domainqueue.StrategyRoundRobin, candidates, 1)
	require.NoError(t, err)
	assert.Equal(t, agentA, chosen)
	assert.Equal(t, 0, next)
}

func TestRoundRobin_AllSaturated(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 5, 5, 5),
		candidate(agentB, 1, 5, 5, 5),
	}

	_, next, err := strategy.Select(domainqueue.StrategyRoundRobin, candidates, 0)
	assert.ErrorIs(t, err, strategy.ErrNoEligibleAgent)
	assert.Equal(t, 0, next, "cursor must not move on a failed pick")
}

func TestRoundRobin_EmptyCandidates(t *testing.T) {
	_, _, err := strategy.Select(domainqueue.StrategyRoundRobin, nil, -1)
	assert.ErrorIs(t, err, strategy.ErrNoEligibleAgent)
}

func TestLeastBusy_PicksLowestRatio(t *testing.T) {
	// A at 3/10 (0.30), B at 1/2 (0.50): A wins despite the higher count.
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 3, 10, 5),
		candidate(agentB, 1, 1, 2, 5),
	}

	chosen, _, err := strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentA, chosen)
}

func TestLeastBusy_SkipsFullAgents(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 2, 2, 5), // full
		candidate(agentB, 1, 4, 5, 5),
	}

	chosen, _, err := strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentB, chosen)
}

func TestLeastBusy_TieBreaksOnPriorityThenID(t *testing.T) {
	// Equal ratios, B has the lower priority value.
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 1, 5, 5),
		candidate(agentB, 1, 1, 5, 2),
	}
	chosen, _, err := strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentB, chosen)

	// Equal ratio and priority: lowest agent id bytes win.
	candidates = []strategy.Candidate{
		candidate(agentB, 0, 1, 5, 5),
		candidate(agentA, 1, 1, 5, 5),
	}
	chosen, _, err = strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentA, chosen)
}

func TestLeastBusy_Deterministic(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentC, 0, 2, 8, 3),
		candidate(agentA, 1, 1, 4, 3),
		candidate(agentB, 2, 3, 10, 3),
	}

	first, _, err := strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := strategy.Select(domainqueue.StrategyLeastBusy, candidates, -1)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPriorityWeighted_ServesLowestBucketFirst(t *testing.T) {
	// B is priority 1 with spare capacity: always chosen over priority-5 A.
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 0, 5, 5),
		candidate(agentB, 1, 1, 2, 1),
	}

	chosen, _, err := strategy.Select(domainqueue.StrategyPriorityWeighted, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentB, chosen)
}

func TestPriorityWeighted_SpillsWhenBucketFull(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 2, 2, 1), // priority 1, full
		candidate(agentB, 1, 0, 5, 5),
	}

	chosen, _, err := strategy.Select(domainqueue.StrategyPriorityWeighted, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentB, chosen)
}

func TestPriorityWeighted_LeastBusyWithinBucket(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 3, 5, 2),
		candidate(agentB, 1, 1, 5, 2),
		candidate(agentC, 2, 0, 5, 7),
	}

	chosen, _, err := strategy.Select(domainqueue.StrategyPriorityWeighted, candidates, -1)
	require.NoError(t, err)
	assert.Equal(t, agentB, chosen)
}

func TestPriorityWeighted_AllSaturated(t *testing.T) {
	candidates := []strategy.Candidate{
		candidate(agentA, 0, 2, 2, 1),
		candidate(agentB, 1, 5, 5, 5),
	}

	_, _, err := strategy.Select(domainqueue.StrategyPriorityWeighted, candidates, -1)
	assert.ErrorIs(t, err, strategy.ErrNoEligibleAgent)
}

func TestSelect_ManualDoesNotSelect(t *testing.T) {
	_, _, err := strategy.Select(domainqueue.StrategyManual, []strategy.Candidate{candidate(agentA, 0, 0, 5, 5)}, -1)
	require.Error(t, err)
}
