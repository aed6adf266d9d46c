package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/valorhub/tournament-services/shared/models"
	"github.com/valorhub/tournament-services/tournament/service"
	"github.com/valorhub/tournament-services/tournament/store"
)

func newTestRouter() (*mux.Router, *store.Store) {
	s := store.New()
	h := NewHandlers(
		service.NewTournamentService(s),
		service.NewTeamService(s),
		service.NewUserService(s),
		0,
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, s
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestListTournamentsEmpty(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/tournaments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[[]models.Tournament](t, rec); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func TestGetTournamentNotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/tournaments/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateTournamentForcesZeroParticipants(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/tournaments", map[string]interface{}{
		"name":                "Knockout Cup",
		"description":         "single elim",
		"prizePool":           "$5,000",
		"maxParticipants":     64,
		"format":              "Single Elimination",
		"schedule":            "soon",
		"prizeDistribution":   "[]",
		"currentParticipants": 99,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[models.Tournament](t, rec)
	if created.CurrentParticipants != 0 {
		t.Fatalf("expected forced 0 participants, got %d", created.CurrentParticipants)
	}
	if created.Status != models.TournamentStatusUpcoming {
		t.Fatalf("expected defaulted status upcoming, got %q", created.Status)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestCreateTournamentValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/tournaments", map[string]interface{}{
		"description": "missing name",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterAndUnregisterFlow(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/tournaments", map[string]interface{}{
		"name": "Cup", "description": "d", "prizePool": "$1", "maxParticipants": 64,
		"format": "SE", "schedule": "soon", "prizeDistribution": "[]",
	})
	tournament := decode[models.Tournament](t, rec)

	for i := 0; i < 3; i++ {
		rec = doJSON(t, router, http.MethodPost, "/api/tournaments/"+tournament.ID+"/register", map[string]interface{}{
			"userId": fmt.Sprintf("u%d", i),
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("register %d: expected 201, got %d", i, rec.Code)
		}
	}

	rec = doJSON(t, router, http.MethodGet, "/api/tournaments/"+tournament.ID, nil)
	if got := decode[models.Tournament](t, rec); got.CurrentParticipants != 3 {
		t.Fatalf("expected 3 participants, got %d", got.CurrentParticipants)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/tournaments/"+tournament.ID+"/unregister/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ack := decode[map[string]bool](t, rec); !ack["success"] {
		t.Fatalf("expected success body, got %v", ack)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/tournaments/"+tournament.ID, nil)
	if got := decode[models.Tournament](t, rec); got.CurrentParticipants != 2 {
		t.Fatalf("expected 2 participants after unregister, got %d", got.CurrentParticipants)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/tournaments/"+tournament.ID+"/unregister/u1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated unregister, got %d", rec.Code)
	}
}

func TestListMatchesBracketOrder(t *testing.T) {
	router, _ := newTestRouter()

	for _, slot := range [][2]int{{2, 1}, {1, 2}, {1, 1}} {
		rec := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/matches", map[string]interface{}{
			"round": slot[0], "position": slot[1],
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create match: expected 201, got %d", rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/api/tournaments/t1/matches", nil)
	matches := decode[[]models.Match](t, rec)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	want := [][2]int{{1, 1}, {1, 2}, {2, 1}}
	for i, m := range matches {
		if m.Round != want[i][0] || m.Position != want[i][1] {
			t.Fatalf("match %d: expected (%d,%d), got (%d,%d)", i, want[i][0], want[i][1], m.Round, m.Position)
		}
	}
}

func TestCreateMatchValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/matches", map[string]interface{}{
		"round": 0, "position": 1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateMatchResult(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/matches", map[string]interface{}{
		"round": 1, "position": 1, "team1Id": "team-1", "team2Id": "team-2",
	})
	match := decode[models.Match](t, rec)

	rec = doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID, map[string]interface{}{
		"team1Score": 13, "team2Score": 8, "winnerId": "team-1", "status": "completed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	updated := decode[models.Match](t, rec)
	if updated.WinnerID == nil || *updated.WinnerID != "team-1" {
		t.Fatalf("expected winner team-1, got %v", updated.WinnerID)
	}
	if updated.Status != models.MatchStatusCompleted {
		t.Fatalf("expected status completed, got %q", updated.Status)
	}
}

func TestTeamLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "Player123", "password": "pw",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d", rec.Code)
	}
	user := decode[models.User](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Foo", "tag": "FOO", "captainId": user.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d", rec.Code)
	}
	team := decode[models.Team](t, rec)
	if team.TournamentsEntered != 0 || team.TournamentsWon != 0 {
		t.Fatalf("expected zeroed record, got %d/%d", team.TournamentsEntered, team.TournamentsWon)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/teams/"+team.ID+"/members", nil)
	members := decode[[]service.MemberDetail](t, rec)
	if len(members) != 1 {
		t.Fatalf("expected captain membership, got %d members", len(members))
	}
	if members[0].Username != "Player123" {
		t.Fatalf("expected joined username Player123, got %q", members[0].Username)
	}
	if members[0].Role != models.RoleCaptain {
		t.Fatalf("expected captain role, got %q", members[0].Role)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/teams?userId="+user.ID, nil)
	if got := decode[[]models.Team](t, rec); len(got) != 1 || got[0].ID != team.ID {
		t.Fatalf("expected the team for its captain, got %v", got)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/teams/"+team.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete team: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/teams/"+team.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestCreateTeamValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Foo",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRemoveTeamMemberNotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/api/teams/team-1/members/u1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserRegistrationsIncludeTeamRegistrations(t *testing.T) {
	router, s := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Foo", "tag": "FOO", "captainId": "u1",
	})
	team := decode[models.Team](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/tournaments/t1/register", map[string]interface{}{
		"teamId": team.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/users/u1/registrations", nil)
	regs := decode[[]models.TournamentRegistration](t, rec)
	if len(regs) != 1 {
		t.Fatalf("expected 1 registration via team membership, got %d", len(regs))
	}
	if regs[0].TeamID == nil || *regs[0].TeamID != team.ID {
		t.Fatalf("expected team registration for %q, got %v", team.ID, regs[0].TeamID)
	}

	// No direct store writes happened behind the API's back.
	if got := len(s.GetTournamentRegistrations(context.Background(), "t1")); got != 1 {
		t.Fatalf("expected 1 stored registration, got %d", got)
	}
}

func TestTeamStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Foo", "tag": "FOO", "captainId": "u1",
	})
	team := decode[models.Team](t, rec)

	rec = doJSON(t, router, http.MethodPut, "/api/teams/"+team.ID, map[string]interface{}{
		"tournamentsEntered": 10, "tournamentsWon": 5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update team: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/teams/"+team.ID+"/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", rec.Code)
	}
	stats := decode[service.TeamStats](t, rec)
	if stats.TournamentWinRate != 0.5 {
		t.Fatalf("expected win rate 0.5, got %v", stats.TournamentWinRate)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/teams/nope/stats", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/users/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "NoPassword",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
