package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/omnidesk/ticketflow/internal/domain/event"
)

const exchange = "ticketflow.events"

// Publisher fans engine events out to an AMQP topic exchange for external
// notification and audit consumers. It is an optional relay wired behind the
// internal bus, never a replacement for it.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Connect(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dialing AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening AMQP channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// Publish routes with key "<channel>.<type>", e.g. "assignment.assignment_made",
// so consumers can bind to a whole channel or a single event type.
func (p *Publisher) Publish(_ context.Context, e event.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	key := fmt.Sprintf("%s.%s", event.ChannelFor(e.Type), e.Type)
	err = p.ch.Publish(exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publishing to exchange: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
