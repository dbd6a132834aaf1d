package domain

import "time"

// AgendaItem is a discussion topic raised for a team's meeting. Items stay
// active across the meeting and are all deactivated when it is finalized.
type AgendaItem struct {
	ID        string
	TeamID    string
	Content   string
	IsActive  bool
	CreatedAt time.Time
}
