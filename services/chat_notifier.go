package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// SlackNotifier posts a short end-of-meeting note to an incoming webhook.
// An empty webhook URL disables the integration.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	log        *slog.Logger
}

func NewSlackNotifier(webhookURL string, log *slog.Logger) SlackNotifier {
	return SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		log:        log,
	}
}

func (n SlackNotifier) MeetingEnded(ctx context.Context, meetingID, teamID string) error {
	if n.webhookURL == "" {
		n.log.With("teamId", teamID).Debug("no slack webhook configured, skipping notification")
		return nil
	}
	body, err := json.Marshal(map[string]string{
		"text": fmt.Sprintf("The meeting for team %s has ended. Summary on its way! (meeting %s)", teamID, meetingID),
	})
	if err != nil {
		return fmt.Errorf("marshal slack message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post slack notification: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}
	return nil
}
