package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/table-tennis-league/internal/domain/match"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	qb "github.com/riskibarqy/table-tennis-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListCompleted(ctx context.Context, scope rating.Scope, until *time.Time) ([]match.Match, error) {
	conditions := append(scopeConditions(scope),
		qb.Eq("status", match.StatusCompleted),
		qb.IsNotNull("completed_at"),
		qb.IsNull("deleted_at"),
	)
	if until != nil {
		conditions = append(conditions, qb.Lte("completed_at", until.UTC()))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("completed_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select completed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select completed matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, scope rating.Scope, matchID string) (match.Match, bool, error) {
	conditions := append(scopeConditions(scope),
		qb.Eq("public_id", matchID),
		qb.IsNull("deleted_at"),
	)

	query, args, err := qb.Select("*").From("matches").Where(conditions...).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

// scopeConditions keeps tournament matches out of the league pool.
func scopeConditions(scope rating.Scope) []qb.Condition {
	if scope.Kind == rating.ScopeTournament {
		return []qb.Condition{qb.Eq("tournament_public_id", scope.ID)}
	}
	return []qb.Condition{
		qb.Eq("league_public_id", scope.ID),
		qb.IsNull("tournament_public_id"),
	}
}

func matchFromRow(row matchTableModel) match.Match {
	item := match.Match{
		ID:           row.PublicID,
		LeagueID:     row.LeaguePublicID,
		TournamentID: row.TournamentPublicID.String,
		Player1ID:    row.Player1PublicID,
		Player2ID:    row.Player2PublicID,
		Player1Score: row.Player1Score,
		Player2Score: row.Player2Score,
		Status:       match.NormalizeStatus(row.Status),
		SubmittedBy:  row.SubmittedBy.String,
	}
	if row.CompletedAt != nil {
		completedAt := row.CompletedAt.UTC()
		item.CompletedAt = &completedAt
	}
	return item
}
