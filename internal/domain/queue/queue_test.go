package queue_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidesk/ticketflow/internal/domain/queue"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"round_robin", "least_busy", "priority_weighted", "manual"} {
		s, err := queue.ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, queue.Strategy(name), s)
	}

	_, err := queue.ParseStrategy("fastest_first")
	assert.Error(t, err)

	_, err = queue.ParseStrategy("")
	assert.Error(t, err)
}

func TestMembershipValidate(t *testing.T) {
	m := queue.NewMembership(uuid.New(), uuid.New(), uuid.New(), queue.DefaultCapacity, queue.DefaultPriority)
	require.NoError(t, m.Validate())

	m.Capacity = 0
	assert.ErrorIs(t, m.Validate(), queue.ErrInvalidCapacity)

	m.Capacity = queue.MaxCapacity + 1
	assert.ErrorIs(t, m.Validate(), queue.ErrInvalidCapacity)

	m.Capacity = queue.DefaultCapacity
	m.Priority = queue.MaxPriority + 1
	assert.ErrorIs(t, m.Validate(), queue.ErrInvalidPriority)
}

func TestQueueOpen(t *testing.T) {
	monday9to5, err := queue.NewSchedule([]queue.Window{
		{Weekday: time.Monday, Start: 9 * 60, End: 17 * 60},
	})
	require.NoError(t, err)

	q := queue.New(uuid.New(), "support", "", 0, queue.StrategyRoundRobin, monday9to5)

	mondayNoon := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	mondayEvening := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	tuesdayNoon := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	assert.True(t, q.Open(mondayNoon))
	assert.False(t, q.Open(mondayEvening))
	assert.False(t, q.Open(tuesdayNoon))

	// A nil schedule means always open; an inactive queue is never open.
	q.Hours = nil
	assert.True(t, q.Open(mondayEvening))
	q.Active = false
	assert.False(t, q.Open(mondayNoon))
}

func TestScheduleBoundaries(t *testing.T) {
	s, err := queue.NewSchedule([]queue.Window{
		{Weekday: time.Friday, Start: 9 * 60, End: 17 * 60},
	})
	require.NoError(t, err)

	friday := func(h, m int) time.Time {
		return time.Date(2025, 6, 6, h, m, 0, 0, time.UTC)
	}
	assert.True(t, s.Contains(friday(9, 0)), "start is inclusive")
	assert.True(t, s.Contains(friday(16, 59)))
	assert.False(t, s.Contains(friday(17, 0)), "end is exclusive")
	assert.False(t, s.Contains(friday(8, 59)))
}

func TestNewScheduleValidation(t *testing.T) {
	_, err := queue.NewSchedule(nil)
	assert.Error(t, err, "empty schedule would never open")

	_, err = queue.NewSchedule([]queue.Window{{Weekday: time.Monday, Start: 600, End: 600}})
	assert.Error(t, err, "zero-length window")

	_, err = queue.NewSchedule([]queue.Window{{Weekday: time.Monday, Start: 600, End: 25 * 60}})
	assert.Error(t, err, "window past midnight")
}
