package testutil

import (
	"context"
	"sync"

	"github.com/omnidesk/ticketflow/internal/domain/event"
	portbus "github.com/omnidesk/ticketflow/internal/port/eventbus"
)

// CaptureBus is an in-process EventBus test double. It records every published
// event and delivers it synchronously to matching subscribers, so tests can
// assert on the event stream without a database.
type CaptureBus struct {
	mu     sync.Mutex
	events []event.Event
	subs   map[event.Channel][]portbus.Handler
}

func NewCaptureBus() *CaptureBus {
	return &CaptureBus{subs: make(map[event.Channel][]portbus.Handler)}
}

func (b *CaptureBus) Publish(ctx context.Context, e event.Event) error {
	b.mu.Lock()
	b.events = append(b.events, e)
	handlers := append([]portbus.Handler(nil), b.subs[event.ChannelFor(e.Type)]...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *CaptureBus) Subscribe(_ context.Context, ch event.Channel, handler portbus.Handler) (portbus.Subscription, error) {
	b.mu.Lock()
	b.subs[ch] = append(b.subs[ch], handler)
	b.mu.Unlock()
	return nopSubscription{}, nil
}

// Events returns a copy of everything published so far.
func (b *CaptureBus) Events() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event.Event(nil), b.events...)
}

// OfType returns all published events of one type, in publish order.
func (b *CaptureBus) OfType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, e := range b.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears all recorded events.
func (b *CaptureBus) Reset() {
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()
}

type nopSubscription struct{}

func (nopSubscription) Unsubscribe() {}
