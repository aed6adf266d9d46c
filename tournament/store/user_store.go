// tournament/store/user_store.go
package store

import (
	"context"

	"github.com/valorhub/tournament-services/shared/models"
)

// NewUser carries the fields a caller supplies at signup.
type NewUser struct {
	Username string
	Password string
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByUsername retrieves the first user with the given username, in
// insertion order. Usernames are not guaranteed unique at this layer.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users.values() {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser stores a new user under a fresh id. The password is stored
// exactly as given.
func (s *Store) CreateUser(ctx context.Context, nu NewUser) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.newID(),
		Username: nu.Username,
		Password: nu.Password,
	}
	s.users.put(user.ID, user)
	return &user
}
