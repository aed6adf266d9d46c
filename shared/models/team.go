// shared/models/team.go
package models

// Team member roles.
const (
	RoleCaptain = "captain"
	RoleMember  = "member"
)

// Team is a roster of users led by the captain identified by CaptainID.
// TournamentsEntered and TournamentsWon always start at zero for new teams.
type Team struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Tag                string `json:"tag"`
	CaptainID          string `json:"captainId"`
	TournamentsEntered int    `json:"tournamentsEntered"`
	TournamentsWon     int    `json:"tournamentsWon"`
}

// TeamMember links a user to a team. Exactly one captain row exists per team
// at creation time.
type TeamMember struct {
	ID     string `json:"id"`
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
