package domain

import (
	"slices"
	"time"
)

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectStuck  ProjectStatus = "stuck"
	ProjectDone   ProjectStatus = "done"
	ProjectFuture ProjectStatus = "future"
)

const (
	TagArchived = "archived"
	TagPrivate  = "private"
)

// Project is a unit of work owned by a team member, attached to an agenda
// item. SortOrder drives the column position on the team dashboard.
type Project struct {
	ID           string
	AgendaID     string
	TeamID       string
	TeamMemberID string
	Content      string
	Status       ProjectStatus
	Tags         []string
	SortOrder    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Project) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// UserID strips the "::teamId" suffix from the owning team member id.
func (p Project) UserID() string {
	userID, _ := SplitCompositeID(p.TeamMemberID)
	return userID
}

// ProjectSnapshot is a point-in-time copy of a project embedded in a
// finalized meeting. Its id is "meetingId::projectId", so it is never
// re-identified with the live project.
type ProjectSnapshot struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	Status       ProjectStatus `json:"status"`
	Tags         []string      `json:"tags"`
	TeamMemberID string        `json:"teamMemberId"`
}

// Snapshot copies the project under its composite meeting-scoped id.
func (p Project) Snapshot(meetingID string) ProjectSnapshot {
	return ProjectSnapshot{
		ID:           CompositeID(meetingID, p.ID),
		Content:      p.Content,
		Status:       p.Status,
		Tags:         slices.Clone(p.Tags),
		TeamMemberID: p.TeamMemberID,
	}
}

// ProjectID recovers the live project id from the snapshot's composite id.
func (s ProjectSnapshot) ProjectID() string {
	_, projectID := SplitCompositeID(s.ID)
	return projectID
}
