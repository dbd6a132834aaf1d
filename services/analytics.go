package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// analyticsSubject is where tracking events are published for the
// downstream analytics forwarder.
const analyticsSubject = "huddle.analytics.track"

// SegmentAnalytics publishes tracking events over NATS, one message per
// mutation, carrying the full user id list.
type SegmentAnalytics struct {
	nc  *nats.Conn
	log *slog.Logger
}

func NewSegmentAnalytics(nc *nats.Conn, log *slog.Logger) SegmentAnalytics {
	return SegmentAnalytics{nc: nc, log: log}
}

type trackMessage struct {
	Event      string         `json:"event"`
	UserIDs    []string       `json:"userIds"`
	Properties map[string]any `json:"properties,omitempty"`
	SentAt     time.Time      `json:"sentAt"`
}

func (a SegmentAnalytics) Track(ctx context.Context, eventName string, userIDs []string, properties map[string]any) error {
	if len(userIDs) == 0 {
		a.log.With("event", eventName).Debug("no users to track, skipping analytics event")
		return nil
	}
	payload, err := json.Marshal(trackMessage{
		Event:      eventName,
		UserIDs:    userIDs,
		Properties: properties,
		SentAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal analytics event: %w", err)
	}
	if err := a.nc.Publish(analyticsSubject, payload); err != nil {
		return fmt.Errorf("publish analytics event: %w", err)
	}
	return nil
}
