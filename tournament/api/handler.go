// tournament/api/handler.go
package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/valorhub/tournament-services/tournament/service"
)

// Handlers holds references to the services that handle business logic.
type Handlers struct {
	Tournaments *service.TournamentService
	Teams       *service.TeamService
	Users       *service.UserService

	requestTimeout time.Duration
}

// NewHandlers is the constructor for the API handlers. requestTimeout bounds
// each request's context; zero means the 5s default.
func NewHandlers(ts *service.TournamentService, tms *service.TeamService, us *service.UserService, requestTimeout time.Duration) *Handlers {
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Second
	}
	return &Handlers{
		Tournaments:    ts,
		Teams:          tms,
		Users:          us,
		requestTimeout: requestTimeout,
	}
}

// RegisterRoutes registers all API endpoints for the tournament service.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/tournaments", h.ListTournamentsHandler).Methods("GET")
	router.HandleFunc("/api/tournaments", h.CreateTournamentHandler).Methods("POST")
	router.HandleFunc("/api/tournaments/{id}", h.GetTournamentHandler).Methods("GET")
	router.HandleFunc("/api/tournaments/{id}", h.UpdateTournamentHandler).Methods("PUT")
	router.HandleFunc("/api/tournaments/{id}/registrations", h.ListRegistrationsHandler).Methods("GET")
	router.HandleFunc("/api/tournaments/{id}/register", h.RegisterHandler).Methods("POST")
	router.HandleFunc("/api/tournaments/{tournamentId}/unregister/{userId}", h.UnregisterHandler).Methods("DELETE")
	router.HandleFunc("/api/tournaments/{id}/matches", h.ListMatchesHandler).Methods("GET")
	router.HandleFunc("/api/tournaments/{id}/matches", h.CreateMatchHandler).Methods("POST")
	router.HandleFunc("/api/matches/{id}", h.GetMatchHandler).Methods("GET")
	router.HandleFunc("/api/matches/{id}", h.UpdateMatchHandler).Methods("PUT")

	router.HandleFunc("/api/teams", h.ListTeamsHandler).Methods("GET")
	router.HandleFunc("/api/teams", h.CreateTeamHandler).Methods("POST")
	router.HandleFunc("/api/teams/{id}", h.GetTeamHandler).Methods("GET")
	router.HandleFunc("/api/teams/{id}", h.UpdateTeamHandler).Methods("PUT")
	router.HandleFunc("/api/teams/{id}", h.DeleteTeamHandler).Methods("DELETE")
	router.HandleFunc("/api/teams/{id}/members", h.ListTeamMembersHandler).Methods("GET")
	router.HandleFunc("/api/teams/{id}/members", h.AddTeamMemberHandler).Methods("POST")
	router.HandleFunc("/api/teams/{teamId}/members/{userId}", h.RemoveTeamMemberHandler).Methods("DELETE")
	router.HandleFunc("/api/teams/{id}/stats", h.TeamStatsHandler).Methods("GET")

	router.HandleFunc("/api/users", h.CreateUserHandler).Methods("POST")
	router.HandleFunc("/api/users/{id}", h.GetUserHandler).Methods("GET")
	router.HandleFunc("/api/users/{userId}/registrations", h.UserRegistrationsHandler).Methods("GET")
}
