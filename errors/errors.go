package errors

import "fmt"

var (
	ErrMeetingAlreadyEnded = fmt.Errorf("meeting already ended")
	ErrNoActiveMeeting     = fmt.Errorf("no meeting exists for this team")
	ErrNotTeamMember       = fmt.Errorf("caller is not a member of this team")
	ErrTeamNotFound        = fmt.Errorf("team not found")
	ErrMeetingNotFound     = fmt.Errorf("meeting not found")
	ErrProjectNotFound     = fmt.Errorf("project not found")
)
