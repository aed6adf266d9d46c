// tournament/api/match_handlers.go
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

// CreateMatchRequest mirrors the match insert schema: a bracket slot with
// optional participants and result.
type CreateMatchRequest struct {
	Round      int     `json:"round"`
	Position   int     `json:"position"`
	Team1ID    *string `json:"team1Id"`
	Team2ID    *string `json:"team2Id"`
	Team1Score *int    `json:"team1Score"`
	Team2Score *int    `json:"team2Score"`
	WinnerID   *string `json:"winnerId"`
	Status     string  `json:"status"`
}

// UpdateMatchRequest carries a partial update, typically the result.
type UpdateMatchRequest struct {
	Round      *int    `json:"round"`
	Position   *int    `json:"position"`
	Team1ID    *string `json:"team1Id"`
	Team2ID    *string `json:"team2Id"`
	Team1Score *int    `json:"team1Score"`
	Team2Score *int    `json:"team2Score"`
	WinnerID   *string `json:"winnerId"`
	Status     *string `json:"status"`
}

// ListMatchesHandler handles GET /api/tournaments/{id}/matches. The response
// is the bracket order: round ascending, position ascending.
func (h *Handlers) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	api.WriteJSON(w, http.StatusOK, h.Tournaments.Bracket(ctx, id))
}

// CreateMatchHandler handles POST /api/tournaments/{id}/matches.
func (h *Handlers) CreateMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Round < 1 || req.Position < 1 {
		api.WriteError(w, http.StatusBadRequest, "Invalid match data")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	match := h.Tournaments.CreateMatch(ctx, store.NewMatch{
		TournamentID: id,
		Round:        req.Round,
		Position:     req.Position,
		Team1ID:      req.Team1ID,
		Team2ID:      req.Team2ID,
		Team1Score:   req.Team1Score,
		Team2Score:   req.Team2Score,
		WinnerID:     req.WinnerID,
		Status:       req.Status,
	})
	api.WriteJSON(w, http.StatusCreated, match)
}

// GetMatchHandler handles GET /api/matches/{id}.
func (h *Handlers) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	match, err := h.Tournaments.GetMatch(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			api.WriteError(w, http.StatusNotFound, "Match not found")
		default:
			log.Printf("ERROR: Failed to get match %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to fetch match")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, match)
}

// UpdateMatchHandler handles PUT /api/matches/{id}.
func (h *Handlers) UpdateMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	match, err := h.Tournaments.UpdateMatch(ctx, id, store.MatchUpdate{
		Round:      req.Round,
		Position:   req.Position,
		Team1ID:    req.Team1ID,
		Team2ID:    req.Team2ID,
		Team1Score: req.Team1Score,
		Team2Score: req.Team2Score,
		WinnerID:   req.WinnerID,
		Status:     req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			api.WriteError(w, http.StatusNotFound, "Match not found")
		default:
			log.Printf("ERROR: Failed to update match %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to update match")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, match)
}
