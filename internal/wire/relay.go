package wire

import (
	"context"
	"log/slog"

	amqppub "github.com/omnidesk/ticketflow/internal/adapter/amqp"
	"github.com/omnidesk/ticketflow/internal/domain/event"
	portbus "github.com/omnidesk/ticketflow/internal/port/eventbus"
)

// startRelay republishes every internal event to the AMQP exchange so
// notification and audit collaborators outside the process can consume the
// stream without a database connection.
func startRelay(ctx context.Context, bus portbus.EventBus, pub *amqppub.Publisher) {
	channels := []event.Channel{event.ChannelAssignment, event.ChannelQueue, event.ChannelAudit}
	for _, ch := range channels {
		if _, err := bus.Subscribe(ctx, ch, func(ctx context.Context, e event.Event) {
			if err := pub.Publish(ctx, e); err != nil {
				slog.ErrorContext(ctx, "AMQP relay publish failed", "type", e.Type, "error", err)
			}
		}); err != nil {
			slog.Error("AMQP relay subscribe failed", "channel", ch, "error", err)
		}
	}
}
