// tournament/service/team_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/valorhub/tournament-services/shared/models"
	"github.com/valorhub/tournament-services/tournament/store"
)

var (
	ErrTeamNotFound   = fmt.Errorf("team not found")
	ErrMemberNotFound = fmt.Errorf("team member not found")
)

// MemberDetail is a team member row joined with the member's username.
type MemberDetail struct {
	models.TeamMember
	Username string `json:"username"`
}

// TeamStats aggregates a team's win rates: the tournament record kept on the
// team itself plus the match record derived from completed matches.
type TeamStats struct {
	TeamID             string  `json:"teamId"`
	TournamentsEntered int     `json:"tournamentsEntered"`
	TournamentsWon     int     `json:"tournamentsWon"`
	TournamentWinRate  float64 `json:"tournamentWinRate"`
	MatchesPlayed      int     `json:"matchesPlayed"`
	MatchesWon         int     `json:"matchesWon"`
	MatchWinRate       float64 `json:"matchWinRate"`
}

// TeamService encapsulates team and membership logic.
type TeamService struct {
	store *store.Store
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(s *store.Store) *TeamService {
	return &TeamService{store: s}
}

// ListTeams returns all teams in creation order.
func (ts *TeamService) ListTeams(ctx context.Context) []models.Team {
	return ts.store.GetTeams(ctx)
}

// ListTeamsByUser returns the teams the user is a member of.
func (ts *TeamService) ListTeamsByUser(ctx context.Context, userID string) []models.Team {
	return ts.store.GetTeamsByUser(ctx, userID)
}

// GetTeam retrieves a single team.
func (ts *TeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	team, err := ts.store.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("service failed to get team: %w", err)
	}
	return team, nil
}

// CreateTeam creates a team together with its captain membership.
func (ts *TeamService) CreateTeam(ctx context.Context, nt store.NewTeam) *models.Team {
	return ts.store.CreateTeam(ctx, nt)
}

// UpdateTeam merges a partial update into a team.
func (ts *TeamService) UpdateTeam(ctx context.Context, id string, u store.TeamUpdate) (*models.Team, error) {
	team, err := ts.store.UpdateTeam(ctx, id, u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("service failed to update team: %w", err)
	}
	return team, nil
}

// DeleteTeam removes a team and its member rows.
func (ts *TeamService) DeleteTeam(ctx context.Context, id string) error {
	if err := ts.store.DeleteTeam(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("service failed to delete team: %w", err)
	}
	return nil
}

// Members returns a team's member rows joined with usernames. Members whose
// user record no longer exists show up as "Unknown".
func (ts *TeamService) Members(ctx context.Context, teamID string) []MemberDetail {
	members := ts.store.GetTeamMembers(ctx, teamID)
	details := make([]MemberDetail, 0, len(members))
	for _, m := range members {
		username := "Unknown"
		if user, err := ts.store.GetUser(ctx, m.UserID); err == nil {
			username = user.Username
		}
		details = append(details, MemberDetail{TeamMember: m, Username: username})
	}
	return details
}

// AddMember adds a user to a team, defaulting the role to "member".
func (ts *TeamService) AddMember(ctx context.Context, nm store.NewTeamMember) *models.TeamMember {
	return ts.store.AddTeamMember(ctx, nm)
}

// RemoveMember removes the member row matching team and user.
func (ts *TeamService) RemoveMember(ctx context.Context, teamID, userID string) error {
	if err := ts.store.RemoveTeamMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("service failed to remove team member: %w", err)
	}
	return nil
}

// Stats computes a team's aggregated win rates. The tournament rate comes
// from the counters on the team record; the match rate counts completed
// matches the team played in.
func (ts *TeamService) Stats(ctx context.Context, teamID string) (*TeamStats, error) {
	team, err := ts.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	stats := &TeamStats{
		TeamID:             team.ID,
		TournamentsEntered: team.TournamentsEntered,
		TournamentsWon:     team.TournamentsWon,
	}
	if team.TournamentsEntered > 0 {
		stats.TournamentWinRate = float64(team.TournamentsWon) / float64(team.TournamentsEntered)
	}

	for _, m := range ts.store.GetMatchesByTeam(ctx, teamID) {
		if m.Status != models.MatchStatusCompleted {
			continue
		}
		stats.MatchesPlayed++
		if m.WinnerID != nil && *m.WinnerID == teamID {
			stats.MatchesWon++
		}
	}
	if stats.MatchesPlayed > 0 {
		stats.MatchWinRate = float64(stats.MatchesWon) / float64(stats.MatchesPlayed)
	}

	return stats, nil
}
