// tournament/store/team_store.go
package store

import (
	"context"

	"github.com/valorhub/tournament-services/shared/models"
)

// NewTeam carries the caller-supplied team fields. TournamentsEntered and
// TournamentsWon are always zeroed on creation.
type NewTeam struct {
	Name      string
	Tag       string
	CaptainID string
}

// TeamUpdate is a partial update: nil fields are left unchanged.
type TeamUpdate struct {
	Name               *string
	Tag                *string
	CaptainID          *string
	TournamentsEntered *int
	TournamentsWon     *int
}

// NewTeamMember carries the fields for adding a user to a team. Role
// defaults to "member".
type NewTeamMember struct {
	TeamID string
	UserID string
	Role   string
}

// GetTeams returns all teams in creation order.
func (s *Store) GetTeams(ctx context.Context) []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.teams.values()
}

// GetTeam retrieves a team by id.
func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &team, nil
}

// GetTeamsByUser returns every team the user belongs to, resolved through
// the team member rows.
func (s *Store) GetTeamsByUser(ctx context.Context, userID string) []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams := []models.Team{}
	for _, tm := range s.teamMembers.values() {
		if tm.UserID != userID {
			continue
		}
		if team, ok := s.teams.get(tm.TeamID); ok {
			teams = append(teams, team)
		}
	}
	return teams
}

// CreateTeam stores a new team and, in the same critical section, a captain
// member row for the team's captain. Readers never observe the team without
// its captain membership.
func (s *Store) CreateTeam(ctx context.Context, nt NewTeam) *models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := models.Team{
		ID:                 s.newID(),
		Name:               nt.Name,
		Tag:                nt.Tag,
		CaptainID:          nt.CaptainID,
		TournamentsEntered: 0,
		TournamentsWon:     0,
	}
	s.teams.put(team.ID, team)

	captain := models.TeamMember{
		ID:     s.newID(),
		TeamID: team.ID,
		UserID: nt.CaptainID,
		Role:   models.RoleCaptain,
	}
	s.teamMembers.put(captain.ID, captain)

	return &team
}

// UpdateTeam merges the provided fields into an existing team.
func (s *Store) UpdateTeam(ctx context.Context, id string, u TeamUpdate) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if u.Name != nil {
		team.Name = *u.Name
	}
	if u.Tag != nil {
		team.Tag = *u.Tag
	}
	if u.CaptainID != nil {
		team.CaptainID = *u.CaptainID
	}
	if u.TournamentsEntered != nil {
		team.TournamentsEntered = *u.TournamentsEntered
	}
	if u.TournamentsWon != nil {
		team.TournamentsWon = *u.TournamentsWon
	}
	s.teams.put(team.ID, team)
	return &team, nil
}

// DeleteTeam removes a team and fans out to delete its member rows.
// Registrations and matches referencing the team are intentionally left in
// place as historical soft-references.
func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.teams.delete(id) {
		return ErrNotFound
	}
	for _, tm := range s.teamMembers.values() {
		if tm.TeamID == id {
			s.teamMembers.delete(tm.ID)
		}
	}
	return nil
}

// GetTeamMembers returns all member rows for a team.
func (s *Store) GetTeamMembers(ctx context.Context, teamID string) []models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := []models.TeamMember{}
	for _, tm := range s.teamMembers.values() {
		if tm.TeamID == teamID {
			members = append(members, tm)
		}
	}
	return members
}

// AddTeamMember stores a new member row under a fresh id.
func (s *Store) AddTeamMember(ctx context.Context, nm NewTeamMember) *models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.TeamMember{
		ID:     s.newID(),
		TeamID: nm.TeamID,
		UserID: nm.UserID,
		Role:   nm.Role,
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}
	s.teamMembers.put(member.ID, member)
	return &member
}

// RemoveTeamMember deletes the member row matching both team and user.
// Removing the captain is allowed; no re-election happens.
func (s *Store) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tm := range s.teamMembers.values() {
		if tm.TeamID == teamID && tm.UserID == userID {
			s.teamMembers.delete(tm.ID)
			return nil
		}
	}
	return ErrNotFound
}
