// shared/models/user.go
package models

import "time"

// User is an account created at signup. The password is stored as given;
// credential policy lives outside this layer.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// TournamentRegistration records intent to compete in a tournament, by a team
// or by an individual user. Both references are optional.
type TournamentRegistration struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	TeamID       *string   `json:"teamId"`
	UserID       *string   `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}
