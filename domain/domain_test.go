package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestCompositeID_RoundTrip(t *testing.T) {
	req := require.New(t)

	id := CompositeID("user-1", "T1")
	req.Equal("user-1::T1", id)

	left, right := SplitCompositeID(id)
	req.Equal("user-1", left)
	req.Equal("T1", right)
}

func TestSplitCompositeID_PlainID(t *testing.T) {
	req := require.New(t)

	left, right := SplitCompositeID("user-1")
	req.Equal("user-1", left)
	req.Empty(right)
}

func TestMakeSuccessExpression_Deterministic(t *testing.T) {
	req := require.New(t)

	expression := MakeSuccessExpression(func(int) int { return 0 })
	req.Equal("unstoppable team of wonders", expression)

	statement := MakeSuccessStatement(func(int) int { return 0 })
	req.Equal("The train of progress has no brakes", statement)
}

func TestMakeSuccessExpression_InBounds(t *testing.T) {
	req := require.New(t)

	// The picker must never receive a zero bound.
	MakeSuccessExpression(func(n int) int {
		req.Positive(n)
		return n - 1
	})
}

func TestProject_Snapshot(t *testing.T) {
	req := require.New(t)

	project := Project{
		ID:           "P1",
		TeamMemberID: "user-1::T1",
		Content:      "ship it",
		Status:       ProjectDone,
		Tags:         []string{TagPrivate},
	}

	snapshot := project.Snapshot("meeting-1")
	req.Equal("meeting-1::P1", snapshot.ID)
	req.Equal("P1", snapshot.ProjectID())
	req.Equal(project.Content, snapshot.Content)
	req.Equal(project.Status, snapshot.Status)

	// The snapshot owns its tags
	snapshot.Tags[0] = "mutated"
	req.Equal(TagPrivate, project.Tags[0])
}

func TestProject_UserID(t *testing.T) {
	req := require.New(t)

	project := Project{TeamMemberID: "user-7::T3"}
	req.Equal("user-7", project.UserID())
}

func TestTeam_ForSummary(t *testing.T) {
	req := require.New(t)

	team := Team{
		ID:               "T1",
		FacilitatorPhase: PhaseLobby,
		MeetingPhase:     PhaseLobby,
	}

	summary := team.ForSummary("meeting-1")
	req.Equal(PhaseSummary, summary.FacilitatorPhase)
	req.Equal(PhaseSummary, summary.MeetingPhase)
	req.Equal("meeting-1", summary.MeetingID)

	// The receiver is untouched
	req.Equal(PhaseLobby, team.MeetingPhase)
	req.Empty(team.MeetingID)
}

func TestMeeting_PresentUserIDs(t *testing.T) {
	req := require.New(t)

	now := time.Now()
	meeting := Meeting{
		EndedAt: &now,
		Invitees: []Invitee{
			{ID: "user-1::T1", Present: true},
			{ID: "user-2::T1", Present: false},
			{ID: "user-3::T1", Present: true},
		},
	}

	req.True(meeting.Ended())
	req.Equal([]string{"user-1", "user-3"}, meeting.PresentUserIDs())
}

func TestTeamMember_Present(t *testing.T) {
	req := require.New(t)

	req.False(TeamMember{}.Present())
	req.False(TeamMember{IsCheckedIn: lo.ToPtr(false)}.Present())
	req.True(TeamMember{IsCheckedIn: lo.ToPtr(true)}.Present())
}
