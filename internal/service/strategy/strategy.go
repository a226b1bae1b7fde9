package strategy

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
)

// ErrNoEligibleAgent means every member is at capacity or the candidate set
// is empty. It is an expected operating condition: the coordinator turns it
// into a saturated decision, not a failure.
var ErrNoEligibleAgent = errors.New("no eligible agent")

// Candidate is one queue member with its point-in-time load. Selection is a
// pure function of the candidate slice (ordered by Position ascending) plus
// the round-robin cursor. No randomness, so every pick is reproducible.
type Candidate struct {
	AgentID  uuid.UUID
	Capacity int
	Priority int
	Position int
	Load     int
}

// Eligible reports whether the agent can take one more ticket.
func (c Candidate) Eligible() bool { return c.Load < c.Capacity }

// Select picks the destination agent for one ticket. cursor is the member
// Position the previous round-robin pick landed on (-1 before the first);
// next is the cursor to store for the following pick. Strategies other than
// round-robin pass the cursor through untouched.
func Select(s domainqueue.Strategy, candidates []Candidate, cursor int) (chosen uuid.UUID, next int, err error) {
	switch s {
	case domainqueue.StrategyRoundRobin:
		return roundRobin(candidates, cursor)
	case domainqueue.StrategyLeastBusy:
		chosen, err = leastBusy(candidates)
		return chosen, cursor, err
	case domainqueue.StrategyPriorityWeighted:
		chosen, err = priorityWeighted(candidates)
		return chosen, cursor, err
	default:
		// Manual never reaches Select; the coordinator validates membership
		// and bypasses selection entirely.
		return uuid.Nil, cursor, fmt.Errorf("strategy %q does not select", s)
	}
}

// roundRobin scans insertion order starting just after the cursor, wrapping
// at most once. Saturated members are skipped; the cursor advances to the
// chosen member so consecutive picks visit members fairly.
func roundRobin(candidates []Candidate, cursor int) (uuid.UUID, int, error) {
	if len(candidates) == 0 {
		return uuid.Nil, cursor, ErrNoEligibleAgent
	}

	start := 0
	for i, c := range candidates {
		if c.Position > cursor {
			start = i
			break
		}
		if i == len(candidates)-1 {
			// Cursor at or past the tail, wrap to the head.
			start = 0
		}
	}

	for i := 0; i < len(candidates); i++ {
		c := candidates[(start+i)%len(candidates)]
		if c.Eligible() {
			return c.AgentID, c.Position, nil
		}
	}
	return uuid.Nil, cursor, ErrNoEligibleAgent
}

// leastBusy picks the smallest load/capacity ratio. Ties break on lower
// priority value, then on agent id bytes, keeping the result deterministic
// for identical inputs.
func leastBusy(candidates []Candidate) (uuid.UUID, error) {
	var best *Candidate
	for i := range candidates {
		c := &candidates[i]
		if !c.Eligible() {
			continue
		}
		if best == nil || lessBusy(*c, *best) {
			best = c
		}
	}
	if best == nil {
		return uuid.Nil, ErrNoEligibleAgent
	}
	return best.AgentID, nil
}

// lessBusy compares load/capacity ratios without floating point:
// a.Load/a.Capacity < b.Load/b.Capacity  ⇔  a.Load*b.Capacity < b.Load*a.Capacity.
func lessBusy(a, b Candidate) bool {
	ar, br := a.Load*b.Capacity, b.Load*a.Capacity
	if ar != br {
		return ar < br
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return bytes.Compare(a.AgentID[:], b.AgentID[:]) < 0
}

// priorityWeighted serves the lowest non-empty priority bucket (1 first) and
// applies least-busy within it. A priority-5 agent is never chosen while any
// priority-1 agent still has spare capacity.
func priorityWeighted(candidates []Candidate) (uuid.UUID, error) {
	bucket := domainqueue.MaxPriority + 1
	for _, c := range candidates {
		if c.Eligible() && c.Priority < bucket {
			bucket = c.Priority
		}
	}
	if bucket > domainqueue.MaxPriority {
		return uuid.Nil, ErrNoEligibleAgent
	}

	inBucket := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Priority == bucket {
			inBucket = append(inBucket, c)
		}
	}
	return leastBusy(inBucket)
}
