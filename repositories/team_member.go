package repositories

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"huddle/domain"
)

type ITeamMemberRepository interface {
	Save(member domain.TeamMember) error
	ByTeam(teamID string) ([]domain.TeamMember, error)
	NotRemovedByTeam(teamID string) ([]domain.TeamMember, error)
	SetCheckInOrders(teamID string, orders map[string]int) error
}

type TeamMemberRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTeamMemberRepository(db *badger.DB, log *slog.Logger) TeamMemberRepository {
	return TeamMemberRepository{db: db, log: log}
}

func memberKey(teamID, memberID string) []byte {
	return fmt.Appendf(nil, "member:%s:%s", teamID, memberID)
}

func (r TeamMemberRepository) Save(member domain.TeamMember) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return store(txn, memberKey(member.TeamID, member.ID), member)
	})
}

// ByTeam returns every member of the team ordered by preferred name.
func (r TeamMemberRepository) ByTeam(teamID string) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.View(func(txn *badger.Txn) error {
		return r.scanTeam(txn, teamID, func(member domain.TeamMember) {
			members = append(members, member)
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].PreferredName < members[j].PreferredName
	})
	return members, nil
}

// NotRemovedByTeam narrows ByTeam to members still on the team.
func (r TeamMemberRepository) NotRemovedByTeam(teamID string) ([]domain.TeamMember, error) {
	members, err := r.ByTeam(teamID)
	if err != nil {
		return nil, err
	}
	kept := members[:0]
	for _, member := range members {
		if member.IsNotRemoved {
			kept = append(kept, member)
		}
	}
	return kept, nil
}

// SetCheckInOrders writes each member's position in the new check-in
// permutation and clears the check-in flag, all in one transaction. Members
// missing from orders are left untouched.
func (r TeamMemberRepository) SetCheckInOrders(teamID string, orders map[string]int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var all []domain.TeamMember
		if err := r.scanTeam(txn, teamID, func(member domain.TeamMember) {
			all = append(all, member)
		}); err != nil {
			return err
		}
		for _, member := range all {
			position, ok := orders[member.ID]
			if !ok {
				continue
			}
			member.CheckInOrder = position
			member.IsCheckedIn = nil
			if err := store(txn, memberKey(member.TeamID, member.ID), member); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r TeamMemberRepository) scanTeam(txn *badger.Txn, teamID string, visit func(domain.TeamMember)) error {
	prefix := []byte(fmt.Sprintf("member:%s:", teamID))
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var member domain.TeamMember
		err := it.Item().Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &member)
		})
		if err != nil {
			return err
		}
		visit(member)
	}
	return nil
}
