// Seed tool: populates a badger store with a demo team mid-meeting so the
// endMeeting mutation can be exercised locally, and prints a bearer token
// for one of the members.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"huddle/auth"
	"huddle/domain"
	"huddle/repositories"
)

func main() {
	badgerPath := flag.String("badger", "./data", "badger database directory")
	teamID := flag.String("team", "team-demo", "team id to create")
	flag.Parse()

	if err := seed(*badgerPath, *teamID); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func seed(badgerPath, teamID string) error {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, err := badger.Open(badger.DefaultOptions(badgerPath).WithLogger(nil))
	if err != nil {
		return err
	}
	defer db.Close()

	teams := repositories.NewTeamRepository(db, log)
	members := repositories.NewTeamMemberRepository(db, log)
	agenda := repositories.NewAgendaItemRepository(db, log)
	projects := repositories.NewProjectRepository(db, log)
	meetings := repositories.NewMeetingRepository(db, log)

	now := time.Now().UTC()
	meetingID := uuid.New().String()

	if err := teams.Save(domain.Team{
		ID:               teamID,
		Name:             "Demo Team",
		MeetingID:        meetingID,
		FacilitatorPhase: domain.PhaseAgendaItems,
		MeetingPhase:     domain.PhaseAgendaItems,
	}); err != nil {
		return err
	}

	names := []string{"Ada", "Grace", "Linus"}
	memberIDs := make([]string, 0, len(names))
	for i, name := range names {
		userID := fmt.Sprintf("user-%d", i+1)
		member := domain.TeamMember{
			ID:            domain.CompositeID(userID, teamID),
			TeamID:        teamID,
			UserID:        userID,
			PreferredName: name,
			IsNotRemoved:  true,
			CheckInOrder:  i,
			CreatedAt:     now,
		}
		if i > 0 {
			member.IsCheckedIn = lo.ToPtr(true)
		}
		if err := members.Save(member); err != nil {
			return err
		}
		memberIDs = append(memberIDs, member.ID)
	}

	itemID := uuid.New().String()
	if err := agenda.Create(domain.AgendaItem{
		ID:        itemID,
		TeamID:    teamID,
		Content:   "sprint retro notes",
		IsActive:  true,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	statuses := []domain.ProjectStatus{domain.ProjectActive, domain.ProjectDone, domain.ProjectStuck}
	for i, status := range statuses {
		project := domain.Project{
			ID:           uuid.New().String(),
			AgendaID:     itemID,
			TeamID:       teamID,
			TeamMemberID: memberIDs[i%len(memberIDs)],
			Content:      fmt.Sprintf("demo project %d", i+1),
			Status:       status,
			SortOrder:    float64(i),
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
		}
		if status == domain.ProjectDone {
			project.Tags = []string{domain.TagPrivate}
		}
		if err := projects.Create(project); err != nil {
			return err
		}
	}

	if err := meetings.Create(domain.Meeting{
		ID:            meetingID,
		TeamID:        teamID,
		MeetingNumber: 1,
		CreatedAt:     now,
	}); err != nil {
		return err
	}

	token, err := auth.GenerateToken("user-1", []string{teamID}, 24*time.Hour)
	if err != nil {
		return err
	}

	fmt.Printf("seeded team %s with an open meeting %s\n", teamID, meetingID)
	fmt.Printf("try it:\n  curl -X POST localhost:8080/mutations/endMeeting \\\n"+
		"    -H 'Authorization: Bearer %s' \\\n    -d '{\"teamId\":%q}'\n", token, teamID)
	return nil
}
