package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"huddle/domain"
)

type IAgendaItemRepository interface {
	Create(item domain.AgendaItem) error
	ActiveByTeam(teamID string) ([]domain.AgendaItem, error)
	DeactivateAllForTeam(teamID string) error
}

type AgendaItemRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAgendaItemRepository(db *badger.DB, log *slog.Logger) AgendaItemRepository {
	return AgendaItemRepository{db: db, log: log}
}

// Keys are "agenda:{teamId}:{createdAt_padded}:{itemId}" so iteration yields
// items in the order they were raised.
func agendaKey(item domain.AgendaItem) []byte {
	return fmt.Appendf(nil, "agenda:%s:%s:%s", item.TeamID, paddedNano(item.CreatedAt), item.ID)
}

func (r AgendaItemRepository) Create(item domain.AgendaItem) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return store(txn, agendaKey(item), item)
	})
}

// ActiveByTeam returns the team's active agenda items. A team with no items
// yields an empty slice, never an error.
func (r AgendaItemRepository) ActiveByTeam(teamID string) ([]domain.AgendaItem, error) {
	var items []domain.AgendaItem
	err := r.db.View(func(txn *badger.Txn) error {
		return r.scanTeam(txn, teamID, func(item domain.AgendaItem) {
			if item.IsActive {
				items = append(items, item)
			}
		})
	})
	return items, err
}

// DeactivateAllForTeam flips IsActive off on every agenda item of the team
// in one transaction.
func (r AgendaItemRepository) DeactivateAllForTeam(teamID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var all []domain.AgendaItem
		if err := r.scanTeam(txn, teamID, func(item domain.AgendaItem) {
			all = append(all, item)
		}); err != nil {
			return err
		}
		for _, item := range all {
			item.IsActive = false
			if err := store(txn, agendaKey(item), item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r AgendaItemRepository) scanTeam(txn *badger.Txn, teamID string, visit func(domain.AgendaItem)) error {
	prefix := []byte(fmt.Sprintf("agenda:%s:", teamID))
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var item domain.AgendaItem
		err := it.Item().Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &item)
		})
		if err != nil {
			return err
		}
		visit(item)
	}
	return nil
}
