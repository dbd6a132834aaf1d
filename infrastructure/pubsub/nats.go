package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"huddle/domain/event"
)

// NATSPublisher broadcasts mutation events over NATS. The pub/sub channel
// name (e.g. "TEAM.team1") is used as the subject unchanged, so subscribers
// can use NATS wildcards for team-scoped fan-out ("TEAM.>").
type NATSPublisher struct {
	nc  *nats.Conn
	log *slog.Logger
}

func NewNATSPublisher(nc *nats.Conn, log *slog.Logger) NATSPublisher {
	return NATSPublisher{nc: nc, log: log}
}

func (p NATSPublisher) Publish(_ context.Context, channel string, envelope event.Envelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope for %s: %w", channel, err)
	}
	if err := p.nc.Publish(channel, payload); err != nil {
		return fmt.Errorf("publish on %s: %w", channel, err)
	}
	p.log.With("channel", channel, "operationId", envelope.OperationID).Debug("event published")
	return nil
}
