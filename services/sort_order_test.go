package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"huddle/contract"
	"huddle/domain"
)

func snapshot(meetingID, projectID string, status domain.ProjectStatus) domain.ProjectSnapshot {
	return domain.Project{ID: projectID, Status: status}.Snapshot(meetingID)
}

func TestSortOrderService_GroupsByStatus(t *testing.T) {
	req := require.New(t)
	service := NewSortOrderService()

	// Given: snapshots in creation order, statuses interleaved
	snapshots := []domain.ProjectSnapshot{
		snapshot("m1", "p-done", domain.ProjectDone),
		snapshot("m1", "p-active-1", domain.ProjectActive),
		snapshot("m1", "p-stuck", domain.ProjectStuck),
		snapshot("m1", "p-future", domain.ProjectFuture),
		snapshot("m1", "p-active-2", domain.ProjectActive),
	}

	// When
	updates := service.NewSortOrders(snapshots)

	// Then: stuck first, done last, creation order kept within a status
	ids := lo.Map(updates, func(u contract.SortOrderUpdate, _ int) string { return u.ProjectID })
	req.Equal([]string{"p-stuck", "p-active-1", "p-active-2", "p-future", "p-done"}, ids)
	for position, update := range updates {
		req.InDelta(float64(position), update.SortOrder, 0.001)
	}
}

func TestSortOrderService_Empty(t *testing.T) {
	req := require.New(t)

	updates := NewSortOrderService().NewSortOrders(nil)
	req.Empty(updates)
}
