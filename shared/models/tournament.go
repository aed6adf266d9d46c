// shared/models/tournament.go
package models

// Tournament statuses as stored. "registered" is a client-side derived label
// and is never written by the server.
const (
	TournamentStatusUpcoming  = "upcoming"
	TournamentStatusLive      = "live"
	TournamentStatusCompleted = "completed"
)

// Tournament represents a single event teams or players can register for.
// CurrentParticipants is owned by the registration path and starts at zero.
type Tournament struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	PrizePool           string   `json:"prizePool"`
	EntryFee            int      `json:"entryFee"`
	MaxParticipants     int      `json:"maxParticipants"`
	CurrentParticipants int      `json:"currentParticipants"`
	Format              string   `json:"format"`
	Rules               []string `json:"rules"`
	Schedule            string   `json:"schedule"`
	PrizeDistribution   string   `json:"prizeDistribution"`
}
