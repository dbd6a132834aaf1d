package domain

import "time"

// Meeting is the historical record of one meeting cycle. It is created when
// the meeting starts and mutated exactly once, by finalization, which fills
// in EndedAt, the generated success copy and the invitee/project snapshots.
type Meeting struct {
	ID                   string
	TeamID               string
	MeetingNumber        int
	CreatedAt            time.Time
	EndedAt              *time.Time
	AgendaItemsCompleted int
	Facilitator          string
	SuccessExpression    string
	SuccessStatement     string
	Invitees             []Invitee
	Projects             []ProjectSnapshot
}

// Ended reports whether the meeting has already been finalized.
func (m Meeting) Ended() bool {
	return m.EndedAt != nil
}

// PresentUserIDs returns the user ids of invitees marked present, derived by
// stripping the "::teamId" suffix from each invitee id.
func (m Meeting) PresentUserIDs() []string {
	var userIDs []string
	for _, invitee := range m.Invitees {
		if !invitee.Present {
			continue
		}
		userID, _ := SplitCompositeID(invitee.ID)
		userIDs = append(userIDs, userID)
	}
	return userIDs
}

// Invitee is the snapshot of a team member taken at finalization time,
// annotated with presence and the member's share of the project snapshots.
type Invitee struct {
	ID            string            `json:"id"`
	Picture       string            `json:"picture"`
	PreferredName string            `json:"preferredName"`
	Present       bool              `json:"present"`
	Projects      []ProjectSnapshot `json:"projects"`
}
