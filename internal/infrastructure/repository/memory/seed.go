package memory

import (
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/league"
	"github.com/riskibarqy/table-tennis-league/internal/domain/match"
	"github.com/riskibarqy/table-tennis-league/internal/domain/tournament"
)

const (
	LeagueIDJakartaClub       = "jkt-club-league-2026"
	LeagueIDBandungOpen       = "bdg-open-league-2026"
	TournamentIDJakartaSpring = "jkt-spring-open-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDJakartaClub, Name: "Jakarta Club League", Season: "2026", IsActive: true},
		{ID: LeagueIDBandungOpen, Name: "Bandung Open League", Season: "2026", IsActive: true},
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:       TournamentIDJakartaSpring,
			LeagueID: LeagueIDJakartaClub,
			Name:     "Jakarta Spring Open",
			StartsAt: time.Date(2026, 4, 4, 9, 0, 0, 0, time.UTC),
			IsActive: true,
		},
	}
}

func SeedMatches() []match.Match {
	at := func(day, hour int) *time.Time {
		v := time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
		return &v
	}

	return []match.Match{
		{ID: "jkt-m-001", LeagueID: LeagueIDJakartaClub, Player1ID: "jkt-andi", Player2ID: "jkt-budi", Player1Score: 3, Player2Score: 1, Status: match.StatusCompleted, CompletedAt: at(2, 19)},
		{ID: "jkt-m-002", LeagueID: LeagueIDJakartaClub, Player1ID: "jkt-citra", Player2ID: "jkt-andi", Player1Score: 3, Player2Score: 2, Status: match.StatusCompleted, CompletedAt: at(2, 20)},
		{ID: "jkt-m-003", LeagueID: LeagueIDJakartaClub, Player1ID: "jkt-budi", Player2ID: "jkt-dewi", Player1Score: 1, Player2Score: 3, Status: match.StatusCompleted, CompletedAt: at(9, 19)},
		{ID: "jkt-m-004", LeagueID: LeagueIDJakartaClub, Player1ID: "jkt-dewi", Player2ID: "jkt-citra", Player1Score: 0, Player2Score: 0, Status: match.StatusScheduled},
		{ID: "jkt-m-005", LeagueID: LeagueIDJakartaClub, Player1ID: "jkt-andi", Player2ID: "jkt-dewi", Player1Score: 3, Player2Score: 0, Status: match.StatusPendingApproval, SubmittedBy: "jkt-andi"},
		{ID: "jkt-t-001", LeagueID: LeagueIDJakartaClub, TournamentID: TournamentIDJakartaSpring, Player1ID: "jkt-andi", Player2ID: "jkt-dewi", Player1Score: 3, Player2Score: 2, Status: match.StatusCompleted, CompletedAt: at(28, 10)},
		{ID: "bdg-m-001", LeagueID: LeagueIDBandungOpen, Player1ID: "bdg-eka", Player2ID: "bdg-fajar", Player1Score: 2, Player2Score: 3, Status: match.StatusCompleted, CompletedAt: at(5, 18)},
	}
}
