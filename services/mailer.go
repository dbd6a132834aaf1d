package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"huddle/domain"
)

// summarySubject is consumed by the mailer worker that renders and sends
// the actual email.
const summarySubject = "huddle.email.summary"

// EmailSummaryService queues the end-of-meeting summary email by publishing
// the rendered summary over NATS.
type EmailSummaryService struct {
	nc  *nats.Conn
	log *slog.Logger
}

func NewEmailSummaryService(nc *nats.Conn, log *slog.Logger) EmailSummaryService {
	return EmailSummaryService{nc: nc, log: log}
}

type summaryMessage struct {
	MeetingID     string   `json:"meetingId"`
	TeamID        string   `json:"teamId"`
	MeetingNumber int      `json:"meetingNumber"`
	Recipients    []string `json:"recipients"`
	Body          string   `json:"body"`
}

func (s EmailSummaryService) SendSummary(ctx context.Context, meeting domain.Meeting) error {
	recipients := make([]string, 0, len(meeting.Invitees))
	for _, invitee := range meeting.Invitees {
		userID, _ := domain.SplitCompositeID(invitee.ID)
		recipients = append(recipients, userID)
	}
	payload, err := json.Marshal(summaryMessage{
		MeetingID:     meeting.ID,
		TeamID:        meeting.TeamID,
		MeetingNumber: meeting.MeetingNumber,
		Recipients:    recipients,
		Body:          renderSummary(meeting),
	})
	if err != nil {
		return fmt.Errorf("marshal summary email: %w", err)
	}
	if err := s.nc.Publish(summarySubject, payload); err != nil {
		return fmt.Errorf("queue summary email: %w", err)
	}
	s.log.With("meetingId", meeting.ID, "recipients", len(recipients)).Debug("meeting summary queued")
	return nil
}

// renderSummary produces the plain text body of the summary email.
func renderSummary(meeting domain.Meeting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meeting #%d — %s!\n", meeting.MeetingNumber, meeting.SuccessExpression)
	fmt.Fprintf(&b, "%s\n\n", meeting.SuccessStatement)
	fmt.Fprintf(&b, "Agenda items completed: %d\n\n", meeting.AgendaItemsCompleted)
	for _, invitee := range meeting.Invitees {
		presence := "absent"
		if invitee.Present {
			presence = "present"
		}
		fmt.Fprintf(&b, "%s (%s)\n", invitee.PreferredName, presence)
		for _, project := range invitee.Projects {
			fmt.Fprintf(&b, "  - [%s] %s\n", project.Status, project.Content)
		}
	}
	return b.String()
}
