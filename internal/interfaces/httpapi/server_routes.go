package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tournaments", handler.ListTournamentsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/ratings", handler.ListLeagueRatings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/ratings", handler.ListTournamentRatings)

	// Stateless previews, nothing is stored.
	mux.HandleFunc("POST /v1/ratings/calculate", handler.CalculateRatings)
	mux.HandleFunc("POST /v1/ratings/exchange", handler.PreviewExchange)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	guard := func(h http.HandlerFunc) http.Handler {
		return RequireInternalJobToken(internalJobToken, h)
	}

	mux.Handle("POST /v1/internal/leagues/{leagueID}/ratings/recalculate", guard(handler.RecalculateLeague))
	mux.Handle("POST /v1/internal/leagues/{leagueID}/matches/{matchID}/ratings", guard(handler.RecalculateLeagueAfterMatch))
	mux.Handle("POST /v1/internal/tournaments/{tournamentID}/ratings/recalculate", guard(handler.RecalculateTournament))
	mux.Handle("POST /v1/internal/tournaments/{tournamentID}/matches/{matchID}/ratings", guard(handler.RecalculateTournamentAfterMatch))
	mux.Handle("POST /v1/internal/ratings/recalculate", guard(handler.RecalculateBatch))
}
