package httpapi

import (
	"net/http"

	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/usecase"
)

func (h *Handler) ListLeagueRatings(w http.ResponseWriter, r *http.Request) {
	h.listRatings(w, r, rating.LeagueScope(r.PathValue("leagueID")))
}

func (h *Handler) ListTournamentRatings(w http.ResponseWriter, r *http.Request) {
	h.listRatings(w, r, rating.TournamentScope(r.PathValue("tournamentID")))
}

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request, scope rating.Scope) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRatings")
	defer span.End()

	items, err := h.ratingService.ListRatings(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "list ratings failed", "scope", scope.Key(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRatingsToDTO(items))
}

// CalculateRatings runs the engine over the posted corpus without persisting anything.
func (h *Handler) CalculateRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculateRatings")
	defer span.End()

	var req calculateRatingsRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, ratings := req.toDomain()
	results, err := h.ratingService.Preview(matches, ratings)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, calculationResultsToDTO(results))
}

func (h *Handler) PreviewExchange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewExchange")
	defer span.End()

	var req exchangeRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.ratingService.PreviewMatch(req.Match.toDomain(), req.Player1Rating, req.Player2Rating)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchOutcomeDTO{
		Player1NewRating: outcome.Player1NewRating,
		Player2NewRating: outcome.Player2NewRating,
		PointsExchanged:  outcome.PointsExchanged,
	})
}

func (h *Handler) RecalculateLeague(w http.ResponseWriter, r *http.Request) {
	h.recalculateScope(w, r, rating.LeagueScope(r.PathValue("leagueID")))
}

func (h *Handler) RecalculateTournament(w http.ResponseWriter, r *http.Request) {
	h.recalculateScope(w, r, rating.TournamentScope(r.PathValue("tournamentID")))
}

func (h *Handler) RecalculateLeagueAfterMatch(w http.ResponseWriter, r *http.Request) {
	h.recalculateAfterMatch(w, r, rating.LeagueScope(r.PathValue("leagueID")))
}

func (h *Handler) RecalculateTournamentAfterMatch(w http.ResponseWriter, r *http.Request) {
	h.recalculateAfterMatch(w, r, rating.TournamentScope(r.PathValue("tournamentID")))
}

func (h *Handler) recalculateScope(w http.ResponseWriter, r *http.Request, scope rating.Scope) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateScope")
	defer span.End()

	result, err := h.ratingService.RecalculateScope(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate ratings failed", "scope", scope.Key(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalculationToDTO(result))
}

func (h *Handler) recalculateAfterMatch(w http.ResponseWriter, r *http.Request, scope rating.Scope) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateAfterMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	result, err := h.ratingService.RecalculateAfterMatch(ctx, scope, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate ratings after match failed", "scope", scope.Key(), "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalculationToDTO(result))
}

func (h *Handler) RecalculateBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateBatch")
	defer span.End()

	var req batchRecalculateRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.ratingService.RecalculateMany(ctx, usecase.BatchRecalculateInput{
		LeagueIDs:     req.LeagueIDs,
		TournamentIDs: req.TournamentIDs,
		MaxWorkers:    req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "batch rating recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
