// tournament/api/tournament_handlers.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/valorhub/tournament-services/shared/api"
	"github.com/valorhub/tournament-services/tournament/service"
	"github.com/valorhub/tournament-services/tournament/store"
)

// CreateTournamentRequest mirrors the tournament insert schema: required
// display fields plus optional status, entry fee and rules.
type CreateTournamentRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Status            string   `json:"status"`
	PrizePool         string   `json:"prizePool"`
	EntryFee          int      `json:"entryFee"`
	MaxParticipants   int      `json:"maxParticipants"`
	Format            string   `json:"format"`
	Rules             []string `json:"rules"`
	Schedule          string   `json:"schedule"`
	PrizeDistribution string   `json:"prizeDistribution"`
}

// UpdateTournamentRequest carries a partial update; absent fields are left
// unchanged.
type UpdateTournamentRequest struct {
	Name                *string  `json:"name"`
	Description         *string  `json:"description"`
	Status              *string  `json:"status"`
	PrizePool           *string  `json:"prizePool"`
	EntryFee            *int     `json:"entryFee"`
	MaxParticipants     *int     `json:"maxParticipants"`
	CurrentParticipants *int     `json:"currentParticipants"`
	Format              *string  `json:"format"`
	Rules               []string `json:"rules"`
	Schedule            *string  `json:"schedule"`
	PrizeDistribution   *string  `json:"prizeDistribution"`
}

// RegisterRequest identifies the registrant: a team, a user, or neither.
type RegisterRequest struct {
	TeamID *string `json:"teamId"`
	UserID *string `json:"userId"`
}

// ListTournamentsHandler handles GET /api/tournaments.
func (h *Handlers) ListTournamentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	api.WriteJSON(w, http.StatusOK, h.Tournaments.ListTournaments(ctx))
}

// GetTournamentHandler handles GET /api/tournaments/{id}.
func (h *Handlers) GetTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	tournament, err := h.Tournaments.GetTournament(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			api.WriteError(w, http.StatusNotFound, "Tournament not found")
		default:
			log.Printf("ERROR: Failed to get tournament %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to fetch tournament")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, tournament)
}

// CreateTournamentHandler handles POST /api/tournaments.
func (h *Handlers) CreateTournamentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Description == "" || req.PrizePool == "" ||
		req.MaxParticipants <= 0 || req.Format == "" || req.Schedule == "" ||
		req.PrizeDistribution == "" {
		api.WriteError(w, http.StatusBadRequest, "Invalid tournament data")
		return
	}
	if req.EntryFee < 0 {
		api.WriteError(w, http.StatusBadRequest, "Entry fee must not be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	tournament := h.Tournaments.CreateTournament(ctx, store.NewTournament{
		Name:              req.Name,
		Description:       req.Description,
		Status:            req.Status,
		PrizePool:         req.PrizePool,
		EntryFee:          req.EntryFee,
		MaxParticipants:   req.MaxParticipants,
		Format:            req.Format,
		Rules:             req.Rules,
		Schedule:          req.Schedule,
		PrizeDistribution: req.PrizeDistribution,
	})
	api.WriteJSON(w, http.StatusCreated, tournament)
}

// UpdateTournamentHandler handles PUT /api/tournaments/{id}.
func (h *Handlers) UpdateTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	tournament, err := h.Tournaments.UpdateTournament(ctx, id, store.TournamentUpdate{
		Name:                req.Name,
		Description:         req.Description,
		Status:              req.Status,
		PrizePool:           req.PrizePool,
		EntryFee:            req.EntryFee,
		MaxParticipants:     req.MaxParticipants,
		CurrentParticipants: req.CurrentParticipants,
		Format:              req.Format,
		Rules:               req.Rules,
		Schedule:            req.Schedule,
		PrizeDistribution:   req.PrizeDistribution,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTournamentNotFound):
			api.WriteError(w, http.StatusNotFound, "Tournament not found")
		default:
			log.Printf("ERROR: Failed to update tournament %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to update tournament")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, tournament)
}

// ListRegistrationsHandler handles GET /api/tournaments/{id}/registrations.
func (h *Handlers) ListRegistrationsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	api.WriteJSON(w, http.StatusOK, h.Tournaments.Registrations(ctx, id))
}

// RegisterHandler handles POST /api/tournaments/{id}/register.
func (h *Handlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Failed to register for tournament")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	registration := h.Tournaments.Register(ctx, store.NewRegistration{
		TournamentID: id,
		TeamID:       req.TeamID,
		UserID:       req.UserID,
	})
	api.WriteJSON(w, http.StatusCreated, registration)
}

// UnregisterHandler handles DELETE /api/tournaments/{tournamentId}/unregister/{userId}.
func (h *Handlers) UnregisterHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.Tournaments.Unregister(ctx, vars["tournamentId"], vars["userId"]); err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			api.WriteError(w, http.StatusNotFound, "Registration not found")
		default:
			log.Printf("ERROR: Failed to unregister user %s from tournament %s: %v", vars["userId"], vars["tournamentId"], err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to unregister from tournament")
		}
		return
	}
	api.WriteSuccess(w)
}
