//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"huddle/domain"
	"huddle/domain/event"
)

// Publisher broadcasts a payload on a string-keyed channel. Implementations
// must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, channel string, envelope event.Envelope) error
}

// SortOrderer recomputes the sort order of the snapshotted projects after a
// meeting ends. Input order is creation order; output pairs each live
// project id with its new position.
type SortOrderer interface {
	NewSortOrders(snapshots []domain.ProjectSnapshot) []SortOrderUpdate
}

type SortOrderUpdate struct {
	ProjectID string
	SortOrder float64
}

// Archiver moves finished projects to the archive and returns the records as
// persisted, with the archived tag applied.
type Archiver interface {
	Archive(ctx context.Context, projects []domain.Project) ([]domain.Project, error)
}

// Analytics delivers a named tracking event for a set of users.
type Analytics interface {
	Track(ctx context.Context, eventName string, userIDs []string, properties map[string]any) error
}

// ChatNotifier tells an external chat integration that a team's meeting ended.
type ChatNotifier interface {
	MeetingEnded(ctx context.Context, meetingID, teamID string) error
}

// SummaryMailer queues the email summary for a completed meeting.
type SummaryMailer interface {
	SendSummary(ctx context.Context, meeting domain.Meeting) error
}

// Shuffler draws a random permutation of [0..n). Injected so the check-in
// reshuffle is deterministic under test.
type Shuffler func(n int) []int

// IntN picks a number in [0, n). Same seam as Shuffler, feeding the success
// copy generators; production callers pass rand.IntN.
type IntN func(n int) int
