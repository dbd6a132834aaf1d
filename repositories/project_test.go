package repositories

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"huddle/domain"
	huddleerrors "huddle/errors"
)

func seedProject(t *testing.T, repo ProjectRepository, project domain.Project) domain.Project {
	t.Helper()
	require.NoError(t, repo.Create(project))
	return project
}

func TestProjectRepository_ByAgendaIDs(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewProjectRepository(db, testLogger())
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Given: two projects on agenda a1 (created out of insertion order), one
	// on a2, one on an agenda we won't ask for
	seedProject(t, repo, domain.Project{ID: "p2", TeamID: "team-1", AgendaID: "a1", CreatedAt: base.Add(2 * time.Minute)})
	seedProject(t, repo, domain.Project{ID: "p1", TeamID: "team-1", AgendaID: "a1", CreatedAt: base})
	seedProject(t, repo, domain.Project{ID: "p3", TeamID: "team-1", AgendaID: "a2", CreatedAt: base.Add(time.Minute)})
	seedProject(t, repo, domain.Project{ID: "p4", TeamID: "team-1", AgendaID: "other", CreatedAt: base})

	// When: querying both agenda items
	projects, err := repo.ByAgendaIDs("team-1", []string{"a1", "a2"})

	// Then: results come back in creation order, p4 excluded
	req.NoError(err)
	ids := lo.Map(projects, func(p domain.Project, _ int) string { return p.ID })
	req.Equal([]string{"p1", "p3", "p2"}, ids)
}

func TestProjectRepository_ByAgendaIDs_Empty(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewProjectRepository(db, testLogger())

	// No agenda ids means no projects, not an error
	projects, err := repo.ByAgendaIDs("team-1", nil)
	req.NoError(err)
	req.Empty(projects)
}

func TestProjectRepository_DoneUnarchivedByTeam(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewProjectRepository(db, testLogger())
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	seedProject(t, repo, domain.Project{ID: "done", TeamID: "team-1", Status: domain.ProjectDone, CreatedAt: base})
	seedProject(t, repo, domain.Project{ID: "done-archived", TeamID: "team-1", Status: domain.ProjectDone,
		Tags: []string{domain.TagArchived}, CreatedAt: base})
	seedProject(t, repo, domain.Project{ID: "active", TeamID: "team-1", Status: domain.ProjectActive, CreatedAt: base})

	projects, err := repo.DoneUnarchivedByTeam("team-1")
	req.NoError(err)
	req.Len(projects, 1)
	req.Equal("done", projects[0].ID)
}

func TestProjectRepository_UpdateSortOrder(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewProjectRepository(db, testLogger())
	seedProject(t, repo, domain.Project{ID: "p1", TeamID: "team-1", SortOrder: 1,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})

	req.NoError(repo.UpdateSortOrder("p1", 7.5))

	project, err := repo.GetByID("p1")
	req.NoError(err)
	req.InDelta(7.5, project.SortOrder, 0.001)

	req.ErrorIs(repo.UpdateSortOrder("missing", 1), huddleerrors.ErrProjectNotFound)
}

func TestProjectRepository_MarkArchived(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repo := NewProjectRepository(db, testLogger())
	seedProject(t, repo, domain.Project{ID: "p1", TeamID: "team-1", Content: "ship it",
		Status: domain.ProjectDone, Tags: []string{domain.TagPrivate},
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})

	archived, err := repo.MarkArchived("p1")
	req.NoError(err)
	req.True(archived.HasTag(domain.TagArchived))
	req.True(archived.HasTag(domain.TagPrivate))
	req.Equal("ship it #archived", archived.Content)

	// Archiving twice does not duplicate the tag
	again, err := repo.MarkArchived("p1")
	req.NoError(err)
	req.Equal([]string{domain.TagPrivate, domain.TagArchived}, again.Tags)
	req.Equal("ship it #archived", again.Content)
}
