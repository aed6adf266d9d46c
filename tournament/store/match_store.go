// tournament/store/match_store.go
package store

import (
	"context"
	"sort"

	"github.com/valorhub/tournament-services/shared/models"
)

// NewMatch carries the caller-supplied match fields. Status defaults to
// "pending"; team references, scores and winner stay null until given.
type NewMatch struct {
	TournamentID string
	Round        int
	Position     int
	Team1ID      *string
	Team2ID      *string
	Team1Score   *int
	Team2Score   *int
	WinnerID     *string
	Status       string
}

// MatchUpdate is a partial update: nil fields are left unchanged.
type MatchUpdate struct {
	Round      *int
	Position   *int
	Team1ID    *string
	Team2ID    *string
	Team1Score *int
	Team2Score *int
	WinnerID   *string
	Status     *string
}

// GetMatches returns a tournament's bracket: all its matches sorted by round
// ascending, then position ascending. The bracket UI depends on this exact
// order.
func (s *Store) GetMatches(ctx context.Context, tournamentID string) []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []models.Match{}
	for _, m := range s.matches.values() {
		if m.TournamentID == tournamentID {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Round != matches[j].Round {
			return matches[i].Round < matches[j].Round
		}
		return matches[i].Position < matches[j].Position
	})
	return matches
}

// GetMatchesByTeam returns every match the team appears in, on either side,
// in insertion order.
func (s *Store) GetMatchesByTeam(ctx context.Context, teamID string) []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []models.Match{}
	for _, m := range s.matches.values() {
		if (m.Team1ID != nil && *m.Team1ID == teamID) || (m.Team2ID != nil && *m.Team2ID == teamID) {
			matches = append(matches, m)
		}
	}
	return matches
}

// GetMatch retrieves a match by id.
func (s *Store) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// CreateMatch stores a new match under a fresh id, applying defaults.
func (s *Store) CreateMatch(ctx context.Context, nm NewMatch) *models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Match{
		ID:           s.newID(),
		TournamentID: nm.TournamentID,
		Round:        nm.Round,
		Position:     nm.Position,
		Team1ID:      nm.Team1ID,
		Team2ID:      nm.Team2ID,
		Team1Score:   nm.Team1Score,
		Team2Score:   nm.Team2Score,
		WinnerID:     nm.WinnerID,
		Status:       nm.Status,
	}
	if m.Status == "" {
		m.Status = models.MatchStatusPending
	}
	s.matches.put(m.ID, m)
	return &m
}

// UpdateMatch merges the provided fields into an existing match.
func (s *Store) UpdateMatch(ctx context.Context, id string, u MatchUpdate) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if u.Round != nil {
		m.Round = *u.Round
	}
	if u.Position != nil {
		m.Position = *u.Position
	}
	if u.Team1ID != nil {
		m.Team1ID = u.Team1ID
	}
	if u.Team2ID != nil {
		m.Team2ID = u.Team2ID
	}
	if u.Team1Score != nil {
		m.Team1Score = u.Team1Score
	}
	if u.Team2Score != nil {
		m.Team2Score = u.Team2Score
	}
	if u.WinnerID != nil {
		m.WinnerID = u.WinnerID
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	s.matches.put(m.ID, m)
	return &m, nil
}
