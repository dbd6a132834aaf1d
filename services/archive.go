package services

import (
	"context"
	"fmt"
	"log/slog"

	"huddle/domain"
	"huddle/repositories"
)

// ArchiveService tags finished projects as archived so they drop off the
// active board while staying queryable in the archive view.
type ArchiveService struct {
	log      *slog.Logger
	projects repositories.IProjectRepository
}

func NewArchiveService(log *slog.Logger, projects repositories.IProjectRepository) ArchiveService {
	return ArchiveService{log: log, projects: projects}
}

// Archive marks every given project archived and returns the records as
// persisted. The first storage failure aborts the batch; projects archived
// before it stay archived.
func (s ArchiveService) Archive(ctx context.Context, projects []domain.Project) ([]domain.Project, error) {
	archived := make([]domain.Project, 0, len(projects))
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return archived, err
		}
		record, err := s.projects.MarkArchived(project.ID)
		if err != nil {
			return archived, fmt.Errorf("archive project %s: %w", project.ID, err)
		}
		s.log.With("projectId", project.ID).Debug("project archived")
		archived = append(archived, record)
	}
	return archived, nil
}
