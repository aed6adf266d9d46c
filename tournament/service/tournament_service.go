// tournament/service/tournament_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/valorhub/tournament-services/shared/models"
	"github.com/valorhub/tournament-services/tournament/store"
)

// Named errors for the API layer to map onto status codes.
var (
	ErrTournamentNotFound   = fmt.Errorf("tournament not found")
	ErrRegistrationNotFound = fmt.Errorf("registration not found")
	ErrMatchNotFound        = fmt.Errorf("match not found")
)

// TournamentService encapsulates tournament, registration and bracket logic.
type TournamentService struct {
	store *store.Store
}

// NewTournamentService creates a new TournamentService instance.
func NewTournamentService(s *store.Store) *TournamentService {
	return &TournamentService{store: s}
}

// ListTournaments returns all tournaments in creation order.
func (ts *TournamentService) ListTournaments(ctx context.Context) []models.Tournament {
	return ts.store.GetTournaments(ctx)
}

// GetTournament retrieves a single tournament.
func (ts *TournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := ts.store.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("service failed to get tournament: %w", err)
	}
	return t, nil
}

// CreateTournament creates a tournament with store-applied defaults.
func (ts *TournamentService) CreateTournament(ctx context.Context, nt store.NewTournament) *models.Tournament {
	return ts.store.CreateTournament(ctx, nt)
}

// UpdateTournament merges a partial update into a tournament.
func (ts *TournamentService) UpdateTournament(ctx context.Context, id string, u store.TournamentUpdate) (*models.Tournament, error) {
	t, err := ts.store.UpdateTournament(ctx, id, u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("service failed to update tournament: %w", err)
	}
	return t, nil
}

// Registrations returns all registrations for a tournament.
func (ts *TournamentService) Registrations(ctx context.Context, tournamentID string) []models.TournamentRegistration {
	return ts.store.GetTournamentRegistrations(ctx, tournamentID)
}

// Register records a registration and bumps the tournament's participant
// counter.
func (ts *TournamentService) Register(ctx context.Context, nr store.NewRegistration) *models.TournamentRegistration {
	return ts.store.RegisterForTournament(ctx, nr)
}

// Unregister removes a user's own registration for a tournament. It only
// matches registrations carrying that UserID; team registrations are not
// removable through this path.
func (ts *TournamentService) Unregister(ctx context.Context, tournamentID, userID string) error {
	if err := ts.store.UnregisterFromTournament(ctx, tournamentID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRegistrationNotFound
		}
		return fmt.Errorf("service failed to unregister: %w", err)
	}
	return nil
}

// Bracket returns a tournament's matches ordered by round, then position.
func (ts *TournamentService) Bracket(ctx context.Context, tournamentID string) []models.Match {
	return ts.store.GetMatches(ctx, tournamentID)
}

// GetMatch retrieves a single match.
func (ts *TournamentService) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	m, err := ts.store.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("service failed to get match: %w", err)
	}
	return m, nil
}

// CreateMatch adds a match to a tournament's bracket.
func (ts *TournamentService) CreateMatch(ctx context.Context, nm store.NewMatch) *models.Match {
	return ts.store.CreateMatch(ctx, nm)
}

// UpdateMatch merges a partial update into a match, typically to record
// scores and the winner.
func (ts *TournamentService) UpdateMatch(ctx context.Context, id string, u store.MatchUpdate) (*models.Match, error) {
	m, err := ts.store.UpdateMatch(ctx, id, u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("service failed to update match: %w", err)
	}
	return m, nil
}
