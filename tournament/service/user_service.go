// tournament/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/valorhub/tournament-services/shared/models"
	"github.com/valorhub/tournament-services/tournament/store"
)

var ErrUserNotFound = fmt.Errorf("user not found")

// UserService encapsulates account lookups and signup.
type UserService struct {
	store *store.Store
}

// NewUserService creates a new UserService instance.
func NewUserService(s *store.Store) *UserService {
	return &UserService{store: s}
}

// GetUser retrieves a user by id.
func (us *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := us.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("service failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (us *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := us.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("service failed to get user by username: %w", err)
	}
	return user, nil
}

// CreateUser creates an account. Username uniqueness is not enforced at this
// layer.
func (us *UserService) CreateUser(ctx context.Context, nu store.NewUser) *models.User {
	return us.store.CreateUser(ctx, nu)
}

// Registrations returns the registrations relevant to a user: their own plus
// those of teams they belong to.
func (us *UserService) Registrations(ctx context.Context, userID string) []models.TournamentRegistration {
	return us.store.GetUserTournamentRegistrations(ctx, userID)
}
