package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	qb "github.com/riskibarqy/table-tennis-league/internal/platform/querybuilder"
)

const upsertRatingMaxAttempts = 3

const upsertRatingSuffix = `ON CONFLICT (player_public_id, scope_type, scope_public_id)
DO UPDATE SET
    current_rating = EXCLUDED.current_rating,
    matches_played = EXCLUDED.matches_played,
    is_provisional = EXCLUDED.is_provisional,
    last_updated_at = EXCLUDED.last_updated_at,
    updated_at = NOW()`

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ListByScope(ctx context.Context, scope rating.Scope) ([]rating.PlayerRating, error) {
	query, args, err := qb.Select("*").From("player_ratings").
		Where(
			qb.Eq("scope_type", string(scope.Kind)),
			qb.Eq("scope_public_id", scope.ID),
		).
		OrderBy("current_rating DESC", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player ratings query: %w", err)
	}

	var rows []playerRatingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player ratings: %w", err)
	}

	out := make([]rating.PlayerRating, 0, len(rows))
	for _, row := range rows {
		out = append(out, rating.PlayerRating{
			PlayerID:      row.PlayerPublicID,
			CurrentRating: row.CurrentRating,
			MatchesPlayed: row.MatchesPlayed,
			IsProvisional: row.IsProvisional,
			LastUpdatedAt: row.LastUpdatedAt.UTC(),
		})
	}

	return out, nil
}

// UpsertScope writes every snapshot in one transaction, retrying the whole
// transaction on serialization failures.
func (r *RatingRepository) UpsertScope(ctx context.Context, scope rating.Scope, ratings []rating.PlayerRating) error {
	if len(ratings) == 0 {
		return nil
	}

	var err error
	for attempt := 1; attempt <= upsertRatingMaxAttempts; attempt++ {
		err = r.upsertScopeTx(ctx, scope, ratings)
		if err == nil || !isRetryableTxError(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (r *RatingRepository) upsertScopeTx(ctx context.Context, scope rating.Scope, ratings []rating.PlayerRating) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert player ratings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range ratings {
		query, args, err := qb.InsertModel("player_ratings", playerRatingInsertModel{
			PlayerPublicID: item.PlayerID,
			ScopeType:      string(scope.Kind),
			ScopePublicID:  scope.ID,
			CurrentRating:  item.CurrentRating,
			MatchesPlayed:  item.MatchesPlayed,
			IsProvisional:  item.IsProvisional,
			LastUpdatedAt:  item.LastUpdatedAt.UTC(),
		}, upsertRatingSuffix)
		if err != nil {
			return fmt.Errorf("build upsert player rating query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player rating player=%s: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert player ratings tx: %w", err)
	}

	return nil
}
