package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"huddle/domain"
	huddleerrors "huddle/errors"
)

func TestMeetingRepository_MostRecentByTeam(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewMeetingRepository(db, testLogger())

	// Given: three meetings created over time for the same team
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var lastID string
	for i := 0; i < 3; i++ {
		meeting := domain.Meeting{
			ID:            uuid.New().String(),
			TeamID:        "team-1",
			MeetingNumber: i + 1,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		req.NoError(repo.Create(meeting))
		lastID = meeting.ID
	}
	// And: a meeting belonging to another team, created even later
	req.NoError(repo.Create(domain.Meeting{
		ID:        uuid.New().String(),
		TeamID:    "team-2",
		CreatedAt: base.Add(24 * time.Hour),
	}))

	// When: fetching the most recent meeting for team-1
	meeting, err := repo.MostRecentByTeam("team-1")

	// Then: the latest team-1 meeting comes back
	req.NoError(err)
	req.Equal(lastID, meeting.ID)
	req.Equal(3, meeting.MeetingNumber)
}

func TestMeetingRepository_MostRecentByTeam_NoMeeting(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewMeetingRepository(db, testLogger())

	_, err := repo.MostRecentByTeam("ghost-team")
	req.ErrorIs(err, huddleerrors.ErrMeetingNotFound)
}

func TestMeetingRepository_Finalize(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewMeetingRepository(db, testLogger())

	meeting := domain.Meeting{
		ID:        "m1",
		TeamID:    "team-1",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	req.NoError(repo.Create(meeting))

	endedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	update := FinalizeUpdate{
		AgendaItemsCompleted: 2,
		EndedAt:              endedAt,
		Facilitator:          "user-1::team-1",
		SuccessExpression:    "mighty crew of champions",
		SuccessStatement:     "High fives all around",
		Invitees:             []domain.Invitee{{ID: "user-1::team-1", Present: true}},
		Projects:             []domain.ProjectSnapshot{{ID: "m1::p1", TeamMemberID: "user-1::team-1"}},
	}

	// When: finalizing returns the post-update document
	completed, err := repo.Finalize("m1", update)
	req.NoError(err)
	req.NotNil(completed.EndedAt)
	req.True(completed.EndedAt.Equal(endedAt))
	req.Equal(2, completed.AgendaItemsCompleted)
	req.Len(completed.Invitees, 1)
	req.Len(completed.Projects, 1)

	// And: the stored document matches
	stored, err := repo.GetByID("m1")
	req.NoError(err)
	req.True(stored.Ended())
	req.Equal("user-1::team-1", stored.Facilitator)

	// And: finalizing again is rejected
	_, err = repo.Finalize("m1", update)
	req.ErrorIs(err, huddleerrors.ErrMeetingAlreadyEnded)
}

func TestMeetingRepository_Finalize_UnknownMeeting(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewMeetingRepository(db, testLogger())

	_, err := repo.Finalize("missing", FinalizeUpdate{EndedAt: time.Now()})
	req.ErrorIs(err, huddleerrors.ErrMeetingNotFound)
}
