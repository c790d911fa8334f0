package cache

import (
	"context"

	"github.com/riskibarqy/table-tennis-league/internal/domain/league"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/domain/tournament"
	basecache "github.com/riskibarqy/table-tennis-league/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:id:"+leagueID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedByID[league.League]{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedByID[league.League])
	return cached.value, cached.exists, nil
}

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) ListByLeague(ctx context.Context, leagueID string) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, "tournament:list:"+leagueID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "tournament:id:"+tournamentID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedByID[tournament.Tournament]{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedByID[tournament.Tournament])
	return cached.value, cached.exists, nil
}

// RatingRepository caches leaderboards per scope and drops the entry on every write.
type RatingRepository struct {
	next  rating.Repository
	cache *basecache.Store
}

func NewRatingRepository(next rating.Repository, cache *basecache.Store) *RatingRepository {
	return &RatingRepository{next: next, cache: cache}
}

func (r *RatingRepository) ListByScope(ctx context.Context, scope rating.Scope) ([]rating.PlayerRating, error) {
	v, err := r.cache.GetOrLoad(ctx, ratingScopeKey(scope), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		return append([]rating.PlayerRating(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]rating.PlayerRating)
	return append([]rating.PlayerRating(nil), items...), nil
}

func (r *RatingRepository) UpsertScope(ctx context.Context, scope rating.Scope, ratings []rating.PlayerRating) error {
	err := r.next.UpsertScope(ctx, scope, ratings)
	r.cache.Delete(ctx, ratingScopeKey(scope))
	return err
}

func ratingScopeKey(scope rating.Scope) string {
	return "rating:scope:" + scope.Key()
}

type cachedByID[T any] struct {
	value  T
	exists bool
}
