// tournament/store/tournament_store.go
package store

import (
	"context"

	"github.com/valorhub/tournament-services/shared/models"
)

// NewTournament carries the caller-supplied tournament fields. Status
// defaults to "upcoming" and Rules to an empty list; CurrentParticipants is
// always forced to zero no matter what the caller sends.
type NewTournament struct {
	Name              string
	Description       string
	Status            string
	PrizePool         string
	EntryFee          int
	MaxParticipants   int
	Format            string
	Rules             []string
	Schedule          string
	PrizeDistribution string
}

// TournamentUpdate is a partial update: nil fields are left unchanged.
type TournamentUpdate struct {
	Name                *string
	Description         *string
	Status              *string
	PrizePool           *string
	EntryFee            *int
	MaxParticipants     *int
	CurrentParticipants *int
	Format              *string
	Rules               []string
	Schedule            *string
	PrizeDistribution   *string
}

// GetTournaments returns all tournaments in creation order.
func (s *Store) GetTournaments(ctx context.Context) []models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tournaments.values()
}

// GetTournament retrieves a tournament by id.
func (s *Store) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// CreateTournament stores a new tournament under a fresh id, applying
// defaults.
func (s *Store) CreateTournament(ctx context.Context, nt NewTournament) *models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Tournament{
		ID:                  s.newID(),
		Name:                nt.Name,
		Description:         nt.Description,
		Status:              nt.Status,
		PrizePool:           nt.PrizePool,
		EntryFee:            nt.EntryFee,
		MaxParticipants:     nt.MaxParticipants,
		CurrentParticipants: 0,
		Format:              nt.Format,
		Rules:               nt.Rules,
		Schedule:            nt.Schedule,
		PrizeDistribution:   nt.PrizeDistribution,
	}
	if t.Status == "" {
		t.Status = models.TournamentStatusUpcoming
	}
	if t.Rules == nil {
		t.Rules = []string{}
	}
	s.tournaments.put(t.ID, t)
	return &t
}

// UpdateTournament merges the provided fields into an existing tournament and
// returns the result.
func (s *Store) UpdateTournament(ctx context.Context, id string, u TournamentUpdate) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.PrizePool != nil {
		t.PrizePool = *u.PrizePool
	}
	if u.EntryFee != nil {
		t.EntryFee = *u.EntryFee
	}
	if u.MaxParticipants != nil {
		t.MaxParticipants = *u.MaxParticipants
	}
	if u.CurrentParticipants != nil {
		t.CurrentParticipants = *u.CurrentParticipants
	}
	if u.Format != nil {
		t.Format = *u.Format
	}
	if u.Rules != nil {
		t.Rules = u.Rules
	}
	if u.Schedule != nil {
		t.Schedule = *u.Schedule
	}
	if u.PrizeDistribution != nil {
		t.PrizeDistribution = *u.PrizeDistribution
	}
	s.tournaments.put(t.ID, t)
	return &t, nil
}
