package queue

import (
	"fmt"
	"time"
)

// Window is a single operating window on one weekday. Start and End are
// minutes from midnight in wall-clock time; End is exclusive. Windows never
// span midnight; a queue open over midnight declares one window per day.
type Window struct {
	Weekday time.Weekday `json:"weekday" yaml:"weekday"`
	Start   int          `json:"start" yaml:"start"`
	End     int          `json:"end" yaml:"end"`
}

func (w Window) validate() error {
	if w.Start < 0 || w.End > 24*60 || w.Start >= w.End {
		return fmt.Errorf("invalid window %d-%d on %s", w.Start, w.End, w.Weekday)
	}
	return nil
}

// Schedule is an explicit operating-hours predicate evaluated against a
// timestamp. Queues without operating hours carry a nil *Schedule instead of
// an empty one.
type Schedule struct {
	Windows []Window `json:"windows" yaml:"windows"`
}

// NewSchedule validates every window. The zero-window schedule is rejected so
// callers cannot accidentally create a queue that never opens. Use a nil
// schedule for "always open".
func NewSchedule(windows []Window) (*Schedule, error) {
	if len(windows) == 0 {
		return nil, fmt.Errorf("schedule requires at least one window")
	}
	for _, w := range windows {
		if err := w.validate(); err != nil {
			return nil, err
		}
	}
	return &Schedule{Windows: windows}, nil
}

// Contains reports whether t falls inside any declared window.
func (s *Schedule) Contains(t time.Time) bool {
	if s == nil || len(s.Windows) == 0 {
		return true
	}
	minutes := t.Hour()*60 + t.Minute()
	for _, w := range s.Windows {
		if w.Weekday == t.Weekday() && minutes >= w.Start && minutes < w.End {
			return true
		}
	}
	return false
}
