// shared/models/match.go
package models

// Match statuses.
const (
	MatchStatusPending   = "pending"
	MatchStatusCompleted = "completed"
)

// Match is one bracket slot: (Round, Position) orders the bracket, with
// Position unique within a round for a tournament. Team references, scores
// and the winner stay null until known.
type Match struct {
	ID           string  `json:"id"`
	TournamentID string  `json:"tournamentId"`
	Round        int     `json:"round"`
	Position     int     `json:"position"`
	Team1ID      *string `json:"team1Id"`
	Team2ID      *string `json:"team2Id"`
	Team1Score   *int    `json:"team1Score"`
	Team2Score   *int    `json:"team2Score"`
	WinnerID     *string `json:"winnerId"`
	Status       string  `json:"status"`
}
