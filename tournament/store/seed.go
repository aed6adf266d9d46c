// tournament/store/seed.go
package store

import (
	"context"

	"github.com/valorhub/tournament-services/shared/models"
)

// Seed loads the demo dataset: one user, three tournaments, one team with
// its captain membership, one team registration and one completed match.
// Ids are fixed so the demo client can link to them.
func (s *Store) Seed(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       "user-1",
		Username: "Player123",
		Password: "hashed_password",
	}
	s.users.put(user.ID, user)

	tournaments := []models.Tournament{
		{
			ID:                  "tournament-1",
			Name:                "Knockout Cup",
			Description:         "Teams battle it out in single elimination rounds. Only the strongest will survive to claim victory.",
			Status:              models.TournamentStatusLive,
			PrizePool:           "$5,000",
			EntryFee:            0,
			MaxParticipants:     64,
			CurrentParticipants: 32,
			Format:              "Single Elimination",
			Rules: []string{
				"All matches are Best of 3",
				"Standard competitive ruleset",
				"No cheating or exploits allowed",
				"Teams must check-in 15 minutes before match time",
			},
			Schedule:          "Starting January 15 at 6:00 PM",
			PrizeDistribution: `[{"place":"1st Place","prize":"$2,500"},{"place":"2nd Place","prize":"$1,500"},{"place":"3rd Place","prize":"$1,000"}]`,
		},
		{
			ID:                  "tournament-2",
			Name:                "Vanguard Showdown",
			Description:         "Double elimination tournament with the best teams competing for glory.",
			Status:              models.TournamentStatusUpcoming,
			PrizePool:           "$10,000",
			EntryFee:            0,
			MaxParticipants:     128,
			CurrentParticipants: 48,
			Format:              "Double Elimination",
			Rules: []string{
				"Best of 5 for finals",
				"Standard competitive ruleset",
				"No cheating or exploits allowed",
			},
			Schedule:          "Starting January 20 at 7:00 PM",
			PrizeDistribution: `[{"place":"1st Place","prize":"$5,000"},{"place":"2nd Place","prize":"$3,000"},{"place":"3rd Place","prize":"$2,000"}]`,
		},
		{
			ID:                  "tournament-3",
			Name:                "Champions Arena",
			Description:         "The ultimate showdown for champions. Prove your worth!",
			Status:              models.TournamentStatusUpcoming,
			PrizePool:           "$15,000",
			EntryFee:            100,
			MaxParticipants:     128,
			CurrentParticipants: 64,
			Format:              "Single Elimination",
			Rules: []string{
				"Best of 3 matches",
				"Entry fee required",
				"Professional conduct required",
			},
			Schedule:          "Starting January 25 at 8:00 PM",
			PrizeDistribution: `[{"place":"1st Place","prize":"$7,500"},{"place":"2nd Place","prize":"$5,000"},{"place":"3rd Place","prize":"$2,500"}]`,
		},
	}
	for _, t := range tournaments {
		s.tournaments.put(t.ID, t)
	}

	team := models.Team{
		ID:                 "team-1",
		Name:               "Phantom Strikers",
		Tag:                "PHTM",
		CaptainID:          user.ID,
		TournamentsEntered: 12,
		TournamentsWon:     4,
	}
	s.teams.put(team.ID, team)

	captain := models.TeamMember{
		ID:     "tm-1",
		TeamID: team.ID,
		UserID: user.ID,
		Role:   models.RoleCaptain,
	}
	s.teamMembers.put(captain.ID, captain)

	teamID := team.ID
	reg := models.TournamentRegistration{
		ID:           "reg-1",
		TournamentID: "tournament-1",
		TeamID:       &teamID,
		UserID:       nil,
		RegisteredAt: s.now(),
	}
	s.registrations.put(reg.ID, reg)

	team2ID := "team-2"
	score1, score2 := 13, 8
	winnerID := team.ID
	match := models.Match{
		ID:           "match-1",
		TournamentID: "tournament-1",
		Round:        1,
		Position:     1,
		Team1ID:      &teamID,
		Team2ID:      &team2ID,
		Team1Score:   &score1,
		Team2Score:   &score2,
		WinnerID:     &winnerID,
		Status:       models.MatchStatusCompleted,
	}
	s.matches.put(match.ID, match)
}
