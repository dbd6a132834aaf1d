package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"huddle/contract"
	"huddle/domain"
	"huddle/domain/event"
	huddleerrors "huddle/errors"
	"huddle/repositories"
)

var validate = validator.New()

type IMeetingFinalizer interface {
	EndMeeting(ctx context.Context, cmd EndMeetingCommand) (domain.Team, error)
}

// EndMeetingCommand carries the mutation input plus the per-request identity
// and pub/sub tagging from the auth context.
type EndMeetingCommand struct {
	TeamID      string `validate:"required"`
	UserID      string `validate:"required"`
	MutatorID   string
	OperationID string
}

// Collaborators groups the external services the finalizer drives. Shuffle,
// IntN, Now and Dispatch have production defaults and exist as fields so
// tests can pin them down.
type Collaborators struct {
	Sorter    contract.SortOrderer
	Archiver  contract.Archiver
	Analytics contract.Analytics
	Chat      contract.ChatNotifier
	Mailer    contract.SummaryMailer
	Publisher contract.Publisher
	Shuffle   contract.Shuffler
	IntN      contract.IntN
	Now       func() time.Time
	Dispatch  func(name string, fn func() error)
}

// MeetingFinalizer ends a team's active meeting: it freezes the meeting
// record with invitee and project snapshots, resets the team to the lobby,
// deactivates the agenda, reshuffles the check-in order, archives finished
// projects and broadcasts the resulting state.
type MeetingFinalizer struct {
	log      *slog.Logger
	meetings repositories.IMeetingRepository
	agenda   repositories.IAgendaItemRepository
	projects repositories.IProjectRepository
	teams    repositories.ITeamRepository
	members  repositories.ITeamMemberRepository
	collab   Collaborators
}

func NewMeetingFinalizer(
	log *slog.Logger,
	meetings repositories.IMeetingRepository,
	agenda repositories.IAgendaItemRepository,
	projects repositories.IProjectRepository,
	teams repositories.ITeamRepository,
	members repositories.ITeamMemberRepository,
	collab Collaborators,
) *MeetingFinalizer {
	if collab.Shuffle == nil {
		collab.Shuffle = rand.Perm
	}
	if collab.IntN == nil {
		collab.IntN = rand.IntN
	}
	if collab.Now == nil {
		collab.Now = func() time.Time { return time.Now().UTC() }
	}
	f := &MeetingFinalizer{
		log:      log,
		meetings: meetings,
		agenda:   agenda,
		projects: projects,
		teams:    teams,
		members:  members,
		collab:   collab,
	}
	if f.collab.Dispatch == nil {
		f.collab.Dispatch = f.dispatchAsync
	}
	return f
}

// EndMeeting finalizes the team's most recent meeting. The precondition
// check is side-effect free: a missing or already-ended meeting aborts
// before any write. Once the meeting record has been committed, later
// failures no longer abort the mutation; they are logged and the call still
// returns the reset team.
func (f *MeetingFinalizer) EndMeeting(ctx context.Context, cmd EndMeetingCommand) (domain.Team, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Team{}, err
	}

	meeting, err := f.meetings.MostRecentByTeam(cmd.TeamID)
	if errors.Is(err, huddleerrors.ErrMeetingNotFound) {
		// A team without any meeting is reported as such, never faked as an
		// already-ended record.
		return domain.Team{}, huddleerrors.ErrNoActiveMeeting
	}
	if err != nil {
		return domain.Team{}, err
	}
	if meeting.Ended() {
		return domain.Team{}, huddleerrors.ErrMeetingAlreadyEnded
	}
	meetingID := meeting.ID

	// Snapshot the active agenda and its projects.
	activeItems, err := f.agenda.ActiveByTeam(cmd.TeamID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("collect agenda items: %w", err)
	}
	agendaIDs := lo.Map(activeItems, func(item domain.AgendaItem, _ int) string { return item.ID })
	agendaProjects, err := f.projects.ByAgendaIDs(cmd.TeamID, agendaIDs)
	if err != nil {
		return domain.Team{}, fmt.Errorf("collect projects: %w", err)
	}
	snapshots := lo.Map(agendaProjects, func(project domain.Project, _ int) domain.ProjectSnapshot {
		return project.Snapshot(meetingID)
	})

	invitees, err := f.buildInvitees(cmd.TeamID, snapshots)
	if err != nil {
		return domain.Team{}, fmt.Errorf("collect invitees: %w", err)
	}

	// The one write that commits the finalization.
	completed, err := f.meetings.Finalize(meetingID, repositories.FinalizeUpdate{
		AgendaItemsCompleted: len(activeItems),
		EndedAt:              f.collab.Now(),
		Facilitator:          domain.CompositeID(cmd.UserID, cmd.TeamID),
		SuccessExpression:    domain.MakeSuccessExpression(f.collab.IntN),
		SuccessStatement:     domain.MakeSuccessStatement(f.collab.IntN),
		Invitees:             invitees,
		Projects:             snapshots,
	})
	if err != nil {
		return domain.Team{}, err
	}

	f.persistSortOrders(completed.Projects)

	team, projectsToArchive, err := f.resetTeamState(cmd.TeamID)
	if err != nil {
		return domain.Team{}, err
	}

	f.archiveAndAnnounce(ctx, cmd, projectsToArchive)

	// Dispatched side effects must outlive the request: the HTTP server
	// cancels the caller's context as soon as the handler returns.
	bgCtx := context.WithoutCancel(ctx)

	f.collab.Dispatch("analytics", func() error {
		return f.collab.Analytics.Track(bgCtx, "Meeting Completed", completed.PresentUserIDs(), map[string]any{
			"teamId":        cmd.TeamID,
			"meetingNumber": completed.MeetingNumber,
		})
	})
	f.collab.Dispatch("chat notify", func() error {
		return f.collab.Chat.MeetingEnded(bgCtx, meetingID, cmd.TeamID)
	})

	// Broadcast the team advanced to the summary phase; storage already holds
	// the lobby reset.
	summaryTeam := team.ForSummary(meetingID)
	f.publish(ctx, event.TeamChannel(cmd.TeamID), event.Envelope{
		Data:        event.TeamUpdated{Type: event.TypeUpdated, Team: summaryTeam},
		MutatorID:   cmd.MutatorID,
		OperationID: cmd.OperationID,
	})
	f.publish(ctx, event.MeetingUpdatedChannel(cmd.TeamID), event.Envelope{
		MeetingUpdated: &event.MeetingUpdated{Team: summaryTeam},
		MutatorID:      cmd.MutatorID,
		OperationID:    cmd.OperationID,
	})

	f.collab.Dispatch("email summary", func() error {
		return f.collab.Mailer.SendSummary(bgCtx, completed)
	})

	return team, nil
}

// buildInvitees snapshots the non-removed team members ordered by preferred
// name, annotating each with presence and its share of the project
// snapshots.
func (f *MeetingFinalizer) buildInvitees(teamID string, snapshots []domain.ProjectSnapshot) ([]domain.Invitee, error) {
	teamMembers, err := f.members.NotRemovedByTeam(teamID)
	if err != nil {
		return nil, err
	}
	return lo.Map(teamMembers, func(member domain.TeamMember, _ int) domain.Invitee {
		return domain.Invitee{
			ID:            member.ID,
			Picture:       member.Picture,
			PreferredName: member.PreferredName,
			Present:       member.Present(),
			Projects: lo.Filter(snapshots, func(s domain.ProjectSnapshot, _ int) bool {
				return s.TeamMemberID == member.ID
			}),
		}
	}), nil
}

// persistSortOrders writes each project's recomputed sort order. The writes
// are independent and issued concurrently; failures only affect dashboard
// ordering, so they are logged rather than propagated.
func (f *MeetingFinalizer) persistSortOrders(snapshots []domain.ProjectSnapshot) {
	updates := f.collab.Sorter.NewSortOrders(snapshots)
	var wg sync.WaitGroup
	for _, update := range updates {
		wg.Add(1)
		go func(update contract.SortOrderUpdate) {
			defer wg.Done()
			if err := f.projects.UpdateSortOrder(update.ProjectID, update.SortOrder); err != nil {
				f.log.With("error", err, "projectId", update.ProjectID).Error("failed to persist sort order")
			}
		}(update)
	}
	wg.Wait()
}

// resetTeamState runs the four independent post-meeting writes plus the
// archive candidate query concurrently and waits for all of them. Only the
// team reset is load-bearing for the return value; other failures are
// logged and accepted as partial completion.
func (f *MeetingFinalizer) resetTeamState(teamID string) (domain.Team, []domain.Project, error) {
	var (
		wg        sync.WaitGroup
		team      domain.Team
		toArchive []domain.Project
		teamErr   error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		team, teamErr = f.teams.ResetAfterMeeting(teamID)
	}()
	go func() {
		defer wg.Done()
		if err := f.agenda.DeactivateAllForTeam(teamID); err != nil {
			f.log.With("error", err, "teamId", teamID).Error("failed to deactivate agenda items")
		}
	}()
	go func() {
		defer wg.Done()
		if err := f.reshuffleCheckInOrder(teamID); err != nil {
			f.log.With("error", err, "teamId", teamID).Error("failed to reshuffle check-in order")
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if toArchive, err = f.projects.DoneUnarchivedByTeam(teamID); err != nil {
			f.log.With("error", err, "teamId", teamID).Error("failed to collect projects to archive")
		}
	}()
	wg.Wait()

	if teamErr != nil {
		return domain.Team{}, nil, fmt.Errorf("reset team: %w", teamErr)
	}
	return team, toArchive, nil
}

// reshuffleCheckInOrder assigns every team member a fresh position drawn
// from a random permutation and clears the check-in flag.
func (f *MeetingFinalizer) reshuffleCheckInOrder(teamID string) error {
	teamMembers, err := f.members.ByTeam(teamID)
	if err != nil {
		return err
	}
	if len(teamMembers) == 0 {
		return nil
	}
	permutation := f.collab.Shuffle(len(teamMembers))
	orders := make(map[string]int, len(teamMembers))
	for i, member := range teamMembers {
		orders[member.ID] = permutation[i]
	}
	return f.members.SetCheckInOrders(teamID, orders)
}

// archiveAndAnnounce archives the finished projects and publishes one
// updated event per archived record. Runs after the core state transition,
// so failures are logged, never propagated.
func (f *MeetingFinalizer) archiveAndAnnounce(ctx context.Context, cmd EndMeetingCommand, projectsToArchive []domain.Project) {
	if len(projectsToArchive) == 0 {
		return
	}
	archived, err := f.collab.Archiver.Archive(ctx, projectsToArchive)
	if err != nil {
		f.log.With("error", err, "teamId", cmd.TeamID).Error("failed to archive completed projects")
		return
	}
	for _, project := range archived {
		isPrivate := project.HasTag(domain.TagPrivate)
		f.publish(ctx, event.ProjectChannel(cmd.TeamID), event.Envelope{
			Data: event.ProjectUpdated{
				Type:       event.TypeUpdated,
				ProjectID:  project.ID,
				IsPrivate:  isPrivate,
				WasPrivate: isPrivate,
				UserID:     project.UserID(),
			},
			MutatorID:   cmd.MutatorID,
			OperationID: cmd.OperationID,
		})
	}
}

func (f *MeetingFinalizer) publish(ctx context.Context, channel string, envelope event.Envelope) {
	if err := f.collab.Publisher.Publish(ctx, channel, envelope); err != nil {
		f.log.With("error", err, "channel", channel).Error("failed to publish event")
	}
}

// dispatchAsync runs a best-effort side effect in the background, logging
// errors and recovering panics so they never reach the caller.
func (f *MeetingFinalizer) dispatchAsync(name string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.log.With("panic", r, "task", name).Error("side effect panicked")
			}
		}()
		if err := fn(); err != nil {
			f.log.With("error", err, "task", name).Error("side effect failed")
		}
	}()
}
