// tournament/store/registration_store.go
package store

import (
	"context"

	"github.com/valorhub/tournament-services/shared/models"
)

// NewRegistration carries the caller-supplied registration fields. TeamID
// and UserID are both optional; the model permits both to be absent.
type NewRegistration struct {
	TournamentID string
	TeamID       *string
	UserID       *string
}

// GetTournamentRegistrations returns all registrations for a tournament.
func (s *Store) GetTournamentRegistrations(ctx context.Context, tournamentID string) []models.TournamentRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs := []models.TournamentRegistration{}
	for _, reg := range s.registrations.values() {
		if reg.TournamentID == tournamentID {
			regs = append(regs, reg)
		}
	}
	return regs
}

// GetUserTournamentRegistrations returns registrations made directly by the
// user plus team registrations of any team the user is a member of.
// Membership is resolved against the member rows at query time.
func (s *Store) GetUserTournamentRegistrations(ctx context.Context, userID string) []models.TournamentRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs := []models.TournamentRegistration{}
	for _, reg := range s.registrations.values() {
		if reg.UserID != nil && *reg.UserID == userID {
			regs = append(regs, reg)
			continue
		}
		if reg.TeamID != nil && s.isUserInTeam(userID, *reg.TeamID) {
			regs = append(regs, reg)
		}
	}
	return regs
}

// isUserInTeam reports whether a member row links the user to the team.
// Callers must hold s.mu.
func (s *Store) isUserInTeam(userID, teamID string) bool {
	for _, tm := range s.teamMembers.values() {
		if tm.TeamID == teamID && tm.UserID == userID {
			return true
		}
	}
	return false
}

// RegisterForTournament stores a new registration and, in the same critical
// section, increments the tournament's participant counter. A registration
// for an unknown tournament is still created; only the counter update is
// skipped.
func (s *Store) RegisterForTournament(ctx context.Context, nr NewRegistration) *models.TournamentRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := models.TournamentRegistration{
		ID:           s.newID(),
		TournamentID: nr.TournamentID,
		TeamID:       nr.TeamID,
		UserID:       nr.UserID,
		RegisteredAt: s.now(),
	}
	s.registrations.put(reg.ID, reg)

	if t, ok := s.tournaments.get(nr.TournamentID); ok {
		t.CurrentParticipants++
		s.tournaments.put(t.ID, t)
	}

	return &reg
}

// UnregisterFromTournament deletes the registration matching the tournament
// and the registration's own UserID, then decrements the participant
// counter, floored at zero. Team-based registrations are not matched by this
// path.
func (s *Store) UnregisterFromTournament(ctx context.Context, tournamentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, reg := range s.registrations.values() {
		if reg.TournamentID != tournamentID || reg.UserID == nil || *reg.UserID != userID {
			continue
		}
		s.registrations.delete(reg.ID)
		if t, ok := s.tournaments.get(tournamentID); ok && t.CurrentParticipants > 0 {
			t.CurrentParticipants--
			s.tournaments.put(t.ID, t)
		}
		return nil
	}
	return ErrNotFound
}
