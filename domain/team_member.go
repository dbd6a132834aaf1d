package domain

import "time"

// TeamMember links a user to a team. Its id is "userId::teamId".
// IsCheckedIn is a tri-state flag: nil means the member never checked in
// during the current cycle.
type TeamMember struct {
	ID            string
	TeamID        string
	UserID        string
	PreferredName string
	Picture       string
	IsNotRemoved  bool
	IsCheckedIn   *bool
	CheckInOrder  int
	CreatedAt     time.Time
}

// Present collapses the nullable check-in flag to a boolean.
func (m TeamMember) Present() bool {
	return m.IsCheckedIn != nil && *m.IsCheckedIn
}
