package event

import (
	"fmt"

	"huddle/domain"
)

// Channel prefixes for team-scoped pub/sub topics.
const (
	ChannelProject        = "PROJECT"
	ChannelTeam           = "TEAM"
	ChannelMeetingUpdated = "MEETING_UPDATED"
)

const TypeUpdated = "UPDATED"

func ProjectChannel(teamID string) string {
	return fmt.Sprintf("%s.%s", ChannelProject, teamID)
}

func TeamChannel(teamID string) string {
	return fmt.Sprintf("%s.%s", ChannelTeam, teamID)
}

func MeetingUpdatedChannel(teamID string) string {
	return fmt.Sprintf("%s.%s", ChannelMeetingUpdated, teamID)
}

// Envelope is the wire shape of every published message. MutatorID tags the
// originating client connection so it can skip its own echo; OperationID lets
// subscribers de-duplicate fan-out from a single mutation.
type Envelope struct {
	Data           any             `json:"data,omitempty"`
	MeetingUpdated *MeetingUpdated `json:"meetingUpdated,omitempty"`
	MutatorID      string          `json:"mutatorId,omitempty"`
	OperationID    string          `json:"operationId,omitempty"`
}

// ProjectUpdated announces a change to a live project, including its
// before/after privacy so subscribers can move it between boards.
type ProjectUpdated struct {
	Type       string `json:"type"`
	ProjectID  string `json:"projectId"`
	IsPrivate  bool   `json:"isPrivate"`
	WasPrivate bool   `json:"wasPrivate"`
	UserID     string `json:"userId"`
}

type TeamUpdated struct {
	Type string      `json:"type"`
	Team domain.Team `json:"team"`
}

type MeetingUpdated struct {
	Team domain.Team `json:"team"`
}
