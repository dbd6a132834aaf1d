package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"huddle/domain"
	huddleerrors "huddle/errors"
)

type IMeetingRepository interface {
	Create(meeting domain.Meeting) error
	GetByID(meetingID string) (domain.Meeting, error)
	MostRecentByTeam(teamID string) (domain.Meeting, error)
	Finalize(meetingID string, update FinalizeUpdate) (domain.Meeting, error)
}

// FinalizeUpdate is the single write applied to a meeting when it ends.
type FinalizeUpdate struct {
	AgendaItemsCompleted int
	EndedAt              time.Time
	Facilitator          string
	SuccessExpression    string
	SuccessStatement     string
	Invitees             []domain.Invitee
	Projects             []domain.ProjectSnapshot
}

type MeetingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMeetingRepository(db *badger.DB, log *slog.Logger) MeetingRepository {
	return MeetingRepository{db: db, log: log}
}

// Keys are "meeting:{teamId}:{createdAt_padded}:{meetingId}" so a reverse
// prefix scan yields meetings newest-first. A "meeting_ref:{meetingId}"
// pointer allows direct lookups by id.
func meetingKey(meeting domain.Meeting) []byte {
	return fmt.Appendf(nil, "meeting:%s:%s:%s", meeting.TeamID, paddedNano(meeting.CreatedAt), meeting.ID)
}

func meetingRefKey(meetingID string) []byte {
	return fmt.Appendf(nil, "meeting_ref:%s", meetingID)
}

func (r MeetingRepository) Create(meeting domain.Meeting) error {
	key := meetingKey(meeting)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := store(txn, key, meeting); err != nil {
			return err
		}
		return txn.Set(meetingRefKey(meeting.ID), key)
	})
}

func (r MeetingRepository) GetByID(meetingID string) (domain.Meeting, error) {
	var meeting domain.Meeting
	err := r.db.View(func(txn *badger.Txn) error {
		return loadMeetingByID(txn, meetingID, &meeting)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Meeting{}, huddleerrors.ErrMeetingNotFound
	}
	return meeting, err
}

// MostRecentByTeam returns the team's latest meeting by creation time.
func (r MeetingRepository) MostRecentByTeam(teamID string) (domain.Meeting, error) {
	var meeting domain.Meeting
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("meeting:%s:", teamID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then step back onto the
		// most recent entry for the team.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		it.Seek(seekKey)
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		found = true
		return it.Item().Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &meeting)
		})
	})
	if err != nil {
		return domain.Meeting{}, err
	}
	if !found {
		return domain.Meeting{}, huddleerrors.ErrMeetingNotFound
	}
	return meeting, nil
}

// Finalize applies the end-of-meeting update in a single read-modify-write
// and returns the post-update document. It refuses to touch a meeting that
// already ended.
func (r MeetingRepository) Finalize(meetingID string, update FinalizeUpdate) (domain.Meeting, error) {
	var meeting domain.Meeting
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := loadMeetingByID(txn, meetingID, &meeting); err != nil {
			return err
		}
		if meeting.Ended() {
			return huddleerrors.ErrMeetingAlreadyEnded
		}
		endedAt := update.EndedAt
		meeting.AgendaItemsCompleted = update.AgendaItemsCompleted
		meeting.EndedAt = &endedAt
		meeting.Facilitator = update.Facilitator
		meeting.SuccessExpression = update.SuccessExpression
		meeting.SuccessStatement = update.SuccessStatement
		meeting.Invitees = update.Invitees
		meeting.Projects = update.Projects
		return store(txn, meetingKey(meeting), meeting)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Meeting{}, huddleerrors.ErrMeetingNotFound
	}
	if err != nil {
		return domain.Meeting{}, err
	}
	return meeting, nil
}

func loadMeetingByID(txn *badger.Txn, meetingID string, out *domain.Meeting) error {
	item, err := txn.Get(meetingRefKey(meetingID))
	if err != nil {
		return err
	}
	var primaryKey []byte
	if err = item.Value(func(val []byte) error {
		primaryKey = append([]byte{}, val...)
		return nil
	}); err != nil {
		return err
	}
	return load(txn, primaryKey, out)
}
