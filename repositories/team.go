package repositories

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"huddle/domain"
	huddleerrors "huddle/errors"
)

type ITeamRepository interface {
	Save(team domain.Team) error
	Get(teamID string) (domain.Team, error)
	ResetAfterMeeting(teamID string) (domain.Team, error)
}

type TeamRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTeamRepository(db *badger.DB, log *slog.Logger) TeamRepository {
	return TeamRepository{db: db, log: log}
}

func teamKey(teamID string) []byte {
	return fmt.Appendf(nil, "team:%s", teamID)
}

func (r TeamRepository) Save(team domain.Team) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return store(txn, teamKey(team.ID), team)
	})
}

func (r TeamRepository) Get(teamID string) (domain.Team, error) {
	var team domain.Team
	err := r.db.View(func(txn *badger.Txn) error {
		return load(txn, teamKey(teamID), &team)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Team{}, huddleerrors.ErrTeamNotFound
	}
	return team, err
}

// ResetAfterMeeting drops the team back to the lobby and clears the meeting
// linkage, returning the document as persisted.
func (r TeamRepository) ResetAfterMeeting(teamID string) (domain.Team, error) {
	var team domain.Team
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := load(txn, teamKey(teamID), &team); err != nil {
			return err
		}
		team.FacilitatorPhase = domain.PhaseLobby
		team.MeetingPhase = domain.PhaseLobby
		team.MeetingID = ""
		team.ActiveFacilitator = ""
		team.FacilitatorPhaseItem = nil
		team.MeetingPhaseItem = nil
		return store(txn, teamKey(teamID), team)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Team{}, huddleerrors.ErrTeamNotFound
	}
	return team, err
}
