package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"

	"huddle/domain"
	huddleerrors "huddle/errors"
)

type IProjectRepository interface {
	Create(project domain.Project) error
	GetByID(projectID string) (domain.Project, error)
	ByAgendaIDs(teamID string, agendaIDs []string) ([]domain.Project, error)
	DoneUnarchivedByTeam(teamID string) ([]domain.Project, error)
	UpdateSortOrder(projectID string, sortOrder float64) error
	MarkArchived(projectID string) (domain.Project, error)
}

type ProjectRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProjectRepository(db *badger.DB, log *slog.Logger) ProjectRepository {
	return ProjectRepository{db: db, log: log}
}

// Keys are "project:{teamId}:{createdAt_padded}:{projectId}" so a forward
// prefix scan yields projects in creation order. A "project_ref:{projectId}"
// pointer allows direct lookups by id.
func projectKey(project domain.Project) []byte {
	return fmt.Appendf(nil, "project:%s:%s:%s", project.TeamID, paddedNano(project.CreatedAt), project.ID)
}

func projectRefKey(projectID string) []byte {
	return fmt.Appendf(nil, "project_ref:%s", projectID)
}

func (r ProjectRepository) Create(project domain.Project) error {
	key := projectKey(project)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := store(txn, key, project); err != nil {
			return err
		}
		return txn.Set(projectRefKey(project.ID), key)
	})
}

func (r ProjectRepository) GetByID(projectID string) (domain.Project, error) {
	var project domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		return loadProjectByID(txn, projectID, &project)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Project{}, huddleerrors.ErrProjectNotFound
	}
	return project, err
}

// ByAgendaIDs returns the team's projects attached to any of the given
// agenda items, ordered by creation time. Missing items yield an empty
// slice, never an error.
func (r ProjectRepository) ByAgendaIDs(teamID string, agendaIDs []string) ([]domain.Project, error) {
	if len(agendaIDs) == 0 {
		return nil, nil
	}
	wanted := lo.SliceToMap(agendaIDs, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	var projects []domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		return r.scanTeam(txn, teamID, func(project domain.Project) {
			if _, ok := wanted[project.AgendaID]; ok {
				projects = append(projects, project)
			}
		})
	})
	return projects, err
}

// DoneUnarchivedByTeam returns the team's projects with status done that do
// not carry the archived tag yet.
func (r ProjectRepository) DoneUnarchivedByTeam(teamID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		return r.scanTeam(txn, teamID, func(project domain.Project) {
			if project.Status == domain.ProjectDone && !project.HasTag(domain.TagArchived) {
				projects = append(projects, project)
			}
		})
	})
	return projects, err
}

func (r ProjectRepository) UpdateSortOrder(projectID string, sortOrder float64) error {
	err := r.mutate(projectID, func(project *domain.Project) {
		project.SortOrder = sortOrder
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return huddleerrors.ErrProjectNotFound
	}
	return err
}

// MarkArchived appends the archived tag to the project's tags and content
// and returns the record as persisted.
func (r ProjectRepository) MarkArchived(projectID string) (domain.Project, error) {
	var archived domain.Project
	err := r.mutate(projectID, func(project *domain.Project) {
		if !project.HasTag(domain.TagArchived) {
			project.Tags = append(project.Tags, domain.TagArchived)
			project.Content = fmt.Sprintf("%s #%s", project.Content, domain.TagArchived)
		}
		archived = *project
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Project{}, huddleerrors.ErrProjectNotFound
	}
	return archived, err
}

// mutate runs a read-modify-write on a single project document.
func (r ProjectRepository) mutate(projectID string, apply func(*domain.Project)) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var project domain.Project
		if err := loadProjectByID(txn, projectID, &project); err != nil {
			return err
		}
		apply(&project)
		project.UpdatedAt = time.Now().UTC()
		return store(txn, projectKey(project), project)
	})
}

func (r ProjectRepository) scanTeam(txn *badger.Txn, teamID string, visit func(domain.Project)) error {
	prefix := []byte(fmt.Sprintf("project:%s:", teamID))
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var project domain.Project
		err := it.Item().Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &project)
		})
		if err != nil {
			return err
		}
		visit(project)
	}
	return nil
}

func loadProjectByID(txn *badger.Txn, projectID string, out *domain.Project) error {
	item, err := txn.Get(projectRefKey(projectID))
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
