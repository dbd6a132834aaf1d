package domain

// Phase describes where a team currently is in the meeting flow.
type Phase string

const (
	PhaseLobby       Phase = "lobby"
	PhaseCheckIn     Phase = "checkin"
	PhaseUpdates     Phase = "updates"
	PhaseFirstCall   Phase = "firstcall"
	PhaseAgendaItems Phase = "agendaitems"
	PhaseLastCall    Phase = "lastcall"
	PhaseSummary     Phase = "summary"
)

// Team carries the shared meeting state for a group of members.
// MeetingID is empty while no meeting is running.
type Team struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	MeetingID            string `json:"meetingId,omitempty"`
	ActiveFacilitator    string `json:"activeFacilitator,omitempty"`
	FacilitatorPhase     Phase  `json:"facilitatorPhase"`
	MeetingPhase         Phase  `json:"meetingPhase"`
	FacilitatorPhaseItem *int   `json:"facilitatorPhaseItem,omitempty"`
	MeetingPhaseItem     *int   `json:"meetingPhaseItem,omitempty"`
}

// InMeeting reports whether the team currently has an active meeting.
func (t Team) InMeeting() bool {
	return t.MeetingID != ""
}

// ForSummary returns a copy of the team advanced to the summary phase with
// the meeting id restored. This is the shape broadcast to connected clients
// right after finalization, while the stored record is already reset to the
// lobby.
func (t Team) ForSummary(meetingID string) Team {
	t.FacilitatorPhase = PhaseSummary
	t.MeetingPhase = PhaseSummary
	t.MeetingID = meetingID
	return t
}
