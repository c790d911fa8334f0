package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/league"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/domain/tournament"
	"github.com/riskibarqy/table-tennis-league/internal/usecase"
)

type leagueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
	IsActive bool   `json:"is_active"`
}

type tournamentDTO struct {
	ID       string    `json:"id"`
	LeagueID string    `json:"league_id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"starts_at"`
	IsActive bool      `json:"is_active"`
}

type playerRatingDTO struct {
	PlayerID      string    `json:"player_id"`
	Rating        int       `json:"rating"`
	MatchesPlayed int       `json:"matches_played"`
	IsProvisional bool      `json:"is_provisional"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

type calculationResultDTO struct {
	PlayerID      string `json:"player_id"`
	OldRating     int    `json:"old_rating"`
	NewRating     int    `json:"new_rating"`
	RatingChange  int    `json:"rating_change"`
	MatchesPlayed int    `json:"matches_played"`
	IsProvisional bool   `json:"is_provisional"`
}

type matchOutcomeDTO struct {
	Player1NewRating int `json:"player1_new_rating"`
	Player2NewRating int `json:"player2_new_rating"`
	PointsExchanged  int `json:"points_exchanged"`
}

type recalculationDTO struct {
	ScopeType      string                 `json:"scope_type"`
	ScopeID        string                 `json:"scope_id"`
	TriggerMatchID string                 `json:"trigger_match_id,omitempty"`
	MatchCount     int                    `json:"match_count"`
	ComputedAt     time.Time              `json:"computed_at"`
	Ratings        []calculationResultDTO `json:"ratings"`
}

type matchResultRequest struct {
	ID           string     `json:"id"`
	Player1ID    string     `json:"player1_id" validate:"required"`
	Player2ID    string     `json:"player2_id" validate:"required,nefield=Player1ID"`
	Player1Score int        `json:"player1_score" validate:"gte=0"`
	Player2Score int        `json:"player2_score" validate:"gte=0"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type playerRatingRequest struct {
	PlayerID      string `json:"player_id" validate:"required"`
	Rating        *int   `json:"rating" validate:"omitempty,gt=0"`
	MatchesPlayed int    `json:"matches_played" validate:"gte=0"`
}

type calculateRatingsRequest struct {
	Matches []matchResultRequest  `json:"matches" validate:"dive"`
	Ratings []playerRatingRequest `json:"ratings" validate:"dive"`
}

type exchangeRequest struct {
	Match         matchResultRequest `json:"match"`
	Player1Rating int                `json:"player1_rating"`
	Player2Rating int                `json:"player2_rating"`
}

type batchRecalculateRequest struct {
	LeagueIDs     []string `json:"league_ids" validate:"omitempty,dive,required"`
	TournamentIDs []string `json:"tournament_ids" validate:"omitempty,dive,required"`
	MaxWorkers    int      `json:"max_workers" validate:"gte=0"`
}

func leagueToDTO(ctx context.Context, item league.League) leagueDTO {
	_, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:       item.ID,
		Name:     item.Name,
		Season:   item.Season,
		IsActive: item.IsActive,
	}
}

func tournamentToDTO(ctx context.Context, item tournament.Tournament) tournamentDTO {
	_, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	return tournamentDTO{
		ID:       item.ID,
		LeagueID: item.LeagueID,
		Name:     item.Name,
		StartsAt: item.StartsAt,
		IsActive: item.IsActive,
	}
}

func playerRatingsToDTO(items []rating.PlayerRating) []playerRatingDTO {
	out := make([]playerRatingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerRatingDTO{
			PlayerID:      item.PlayerID,
			Rating:        item.CurrentRating,
			MatchesPlayed: item.MatchesPlayed,
			IsProvisional: item.IsProvisional,
			LastUpdatedAt: item.LastUpdatedAt,
		})
	}
	return out
}

func calculationResultsToDTO(items []rating.CalculationResult) []calculationResultDTO {
	out := make([]calculationResultDTO, 0, len(items))
	for _, item := range items {
		out = append(out, calculationResultDTO{
			PlayerID:      item.PlayerID,
			OldRating:     item.OldRating,
			NewRating:     item.NewRating,
			RatingChange:  item.RatingChange,
			MatchesPlayed: item.MatchesPlayed,
			IsProvisional: item.IsProvisional,
		})
	}
	return out
}

func recalculationToDTO(result usecase.RecalculationResult) recalculationDTO {
	return recalculationDTO{
		ScopeType:      string(result.Scope.Kind),
		ScopeID:        result.Scope.ID,
		TriggerMatchID: result.TriggerMatchID,
		MatchCount:     result.MatchCount,
		ComputedAt:     result.ComputedAt,
		Ratings:        calculationResultsToDTO(result.Ratings),
	}
}

func (r matchResultRequest) toDomain() rating.MatchResult {
	out := rating.MatchResult{
		ID:           r.ID,
		Player1ID:    r.Player1ID,
		Player2ID:    r.Player2ID,
		Player1Score: r.Player1Score,
		Player2Score: r.Player2Score,
	}
	if r.CompletedAt != nil {
		out.CompletedAt = r.CompletedAt.UTC()
	}
	return out
}

func (r calculateRatingsRequest) toDomain() ([]rating.MatchResult, []rating.PlayerRating) {
	matches := make([]rating.MatchResult, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, m.toDomain())
	}

	ratings := make([]rating.PlayerRating, 0, len(r.Ratings))
	for _, item := range r.Ratings {
		// A missing rating stays 0 and is seeded from the policy default.
		var current int
		if item.Rating != nil {
			current = *item.Rating
		}
		ratings = append(ratings, rating.PlayerRating{
			PlayerID:      item.PlayerID,
			CurrentRating: current,
			MatchesPlayed: item.MatchesPlayed,
		})
	}
	return matches, ratings
}
