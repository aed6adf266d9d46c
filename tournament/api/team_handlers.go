// tournament/api/team_handlers.go
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

// CreateTeamRequest mirrors the team insert schema.
type CreateTeamRequest struct {
	Name      string `json:"name"`
	Tag       string `json:"tag"`
	CaptainID string `json:"captainId"`
}

// UpdateTeamRequest carries a partial update; absent fields are left
// unchanged.
type UpdateTeamRequest struct {
	Name               *string `json:"name"`
	Tag                *string `json:"tag"`
	CaptainID          *string `json:"captainId"`
	TournamentsEntered *int    `json:"tournamentsEntered"`
	TournamentsWon     *int    `json:"tournamentsWon"`
}

// AddTeamMemberRequest adds a user to the team in the path.
type AddTeamMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// ListTeamsHandler handles GET /api/teams, optionally filtered by the userId
// query parameter to the teams that user belongs to.
func (h *Handlers) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if userID := r.URL.Query().Get("userId"); userID != "" {
		api.WriteJSON(w, http.StatusOK, h.Teams.ListTeamsByUser(ctx, userID))
		return
	}
	api.WriteJSON(w, http.StatusOK, h.Teams.ListTeams(ctx))
}

// GetTeamHandler handles GET /api/teams/{id}.
func (h *Handlers) GetTeamHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	team, err := h.Teams.GetTeam(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			api.WriteError(w, http.StatusNotFound, "Team not found")
		default:
			log.Printf("ERROR: Failed to get team %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to fetch team")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, team)
}

// CreateTeamHandler handles POST /api/teams.
func (h *Handlers) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Tag == "" || req.CaptainID == "" {
		api.WriteError(w, http.StatusBadRequest, "Invalid team data")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	team := h.Teams.CreateTeam(ctx, store.NewTeam{
		Name:      req.Name,
		Tag:       req.Tag,
		CaptainID: req.CaptainID,
	})
	api.WriteJSON(w, http.StatusCreated, team)
}

// UpdateTeamHandler handles PUT /api/teams/{id}.
func (h *Handlers) UpdateTeamHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	team, err := h.Teams.UpdateTeam(ctx, id, store.TeamUpdate{
		Name:               req.Name,
		Tag:                req.Tag,
		CaptainID:          req.CaptainID,
		TournamentsEntered: req.TournamentsEntered,
		TournamentsWon:     req.TournamentsWon,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			api.WriteError(w, http.StatusNotFound, "Team not found")
		default:
			log.Printf("ERROR: Failed to update team %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to update team")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, team)
}

// DeleteTeamHandler handles DELETE /api/teams/{id}.
func (h *Handlers) DeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.Teams.DeleteTeam(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			api.WriteError(w, http.StatusNotFound, "Team not found")
		default:
			log.Printf("ERROR: Failed to delete team %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to delete team")
		}
		return
	}
	api.WriteSuccess(w)
}

// ListTeamMembersHandler handles GET /api/teams/{id}/members. Member rows
// come joined with usernames.
func (h *Handlers) ListTeamMembersHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	api.WriteJSON(w, http.StatusOK, h.Teams.Members(ctx, id))
}

// AddTeamMemberHandler handles POST /api/teams/{id}/members.
func (h *Handlers) AddTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		api.WriteError(w, http.StatusBadRequest, "Invalid team member data")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	member := h.Teams.AddMember(ctx, store.NewTeamMember{
		TeamID: id,
		UserID: req.UserID,
		Role:   req.Role,
	})
	api.WriteJSON(w, http.StatusCreated, member)
}

// RemoveTeamMemberHandler handles DELETE /api/teams/{teamId}/members/{userId}.
func (h *Handlers) RemoveTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.Teams.RemoveMember(ctx, vars["teamId"], vars["userId"]); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			api.WriteError(w, http.StatusNotFound, "Team member not found")
		default:
			log.Printf("ERROR: Failed to remove member %s from team %s: %v", vars["userId"], vars["teamId"], err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to remove team member")
		}
		return
	}
	api.WriteSuccess(w)
}

// TeamStatsHandler handles GET /api/teams/{id}/stats.
func (h *Handlers) TeamStatsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	stats, err := h.Teams.Stats(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			api.WriteError(w, http.StatusNotFound, "Team not found")
		default:
			log.Printf("ERROR: Failed to compute stats for team %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to compute team stats")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, stats)
}
