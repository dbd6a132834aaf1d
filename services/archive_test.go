package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"huddle/domain"
	"huddle/repositories"
)

func TestArchiveService_Archive(t *testing.T) {
	req := require.New(t)
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	req.NoError(err)
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.DiscardHandler)
	projects := repositories.NewProjectRepository(db, log)
	service := NewArchiveService(log, projects)

	// Given: two finished projects
	for _, id := range []string{"p1", "p2"} {
		req.NoError(projects.Create(domain.Project{
			ID:           id,
			AgendaID:     "a1",
			TeamID:       "T1",
			TeamMemberID: "user-1::T1",
			Content:      "wrap up " + id,
			Status:       domain.ProjectDone,
			CreatedAt:    time.Now(),
		}))
	}
	batch, err := projects.DoneUnarchivedByTeam("T1")
	req.NoError(err)
	req.Len(batch, 2)

	// When
	archived, err := service.Archive(context.Background(), batch)

	// Then: both records come back tagged and the store agrees
	req.NoError(err)
	req.Len(archived, 2)
	for _, record := range archived {
		req.True(record.HasTag(domain.TagArchived))
	}
	remaining, err := projects.DoneUnarchivedByTeam("T1")
	req.NoError(err)
	req.Empty(remaining)
}

func TestArchiveService_CancelledContext(t *testing.T) {
	req := require.New(t)
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	req.NoError(err)
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.DiscardHandler)
	service := NewArchiveService(log, repositories.NewProjectRepository(db, log))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	archived, err := service.Archive(ctx, []domain.Project{{ID: "p1"}})
	req.ErrorIs(err, context.Canceled)
	req.Empty(archived)
}
