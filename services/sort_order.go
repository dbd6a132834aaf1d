package services

import (
	"sort"

	"huddle/contract"
	"huddle/domain"
)

// sortOrderSpacing leaves room between consecutive projects so later drag
// and drop inserts don't force a full rebalance.
const sortOrderSpacing = 1.0

// statusRank drives the post-meeting board layout: stuck work floats to the
// top, finished work sinks to the bottom.
var statusRank = map[domain.ProjectStatus]int{
	domain.ProjectStuck:  0,
	domain.ProjectActive: 1,
	domain.ProjectFuture: 2,
	domain.ProjectDone:   3,
}

// SortOrderService recomputes project sort orders at the end of a meeting,
// grouping by status and keeping the meeting's creation order within each
// group.
type SortOrderService struct{}

func NewSortOrderService() SortOrderService {
	return SortOrderService{}
}

func (SortOrderService) NewSortOrders(snapshots []domain.ProjectSnapshot) []contract.SortOrderUpdate {
	indexed := make([]int, len(snapshots))
	for i := range snapshots {
		indexed[i] = i
	}
	sort.SliceStable(indexed, func(a, b int) bool {
		return statusRank[snapshots[indexed[a]].Status] < statusRank[snapshots[indexed[b]].Status]
	})

	updates := make([]contract.SortOrderUpdate, 0, len(snapshots))
	for position, i := range indexed {
		updates = append(updates, contract.SortOrderUpdate{
			ProjectID: snapshots[i].ProjectID(),
			SortOrder: float64(position) * sortOrderSpacing,
		})
	}
	return updates
}
