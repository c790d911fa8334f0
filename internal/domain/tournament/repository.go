package tournament

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
}
