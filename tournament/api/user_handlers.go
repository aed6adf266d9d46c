// tournament/api/user_handlers.go
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

// CreateUserRequest mirrors the user insert schema.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserHandler handles POST /api/users.
func (h *Handlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	user := h.Users.CreateUser(ctx, store.NewUser{
		Username: req.Username,
		Password: req.Password,
	})
	api.WriteJSON(w, http.StatusCreated, user)
}

// GetUserHandler handles GET /api/users/{id}.
func (h *Handlers) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	user, err := h.Users.GetUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			api.WriteError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR: Failed to get user %s: %v", id, err)
			api.WriteError(w, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}
	api.WriteJSON(w, http.StatusOK, user)
}

// UserRegistrationsHandler handles GET /api/users/{userId}/registrations.
func (h *Handlers) UserRegistrationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	api.WriteJSON(w, http.StatusOK, h.Users.Registrations(ctx, userID))
}
