package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/table-tennis-league/internal/config"
	"github.com/riskibarqy/table-tennis-league/internal/domain/league"
	"github.com/riskibarqy/table-tennis-league/internal/domain/match"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/domain/tournament"
	"github.com/riskibarqy/table-tennis-league/internal/infrastructure/lock/memlock"
	"github.com/riskibarqy/table-tennis-league/internal/infrastructure/lock/redislock"
	cacherepo "github.com/riskibarqy/table-tennis-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/table-tennis-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/table-tennis-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/table-tennis-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/table-tennis-league/internal/platform/cache"
	"github.com/riskibarqy/table-tennis-league/internal/platform/logging"
	"github.com/riskibarqy/table-tennis-league/internal/platform/resilience"
	"github.com/riskibarqy/table-tennis-league/internal/usecase"
)

type repositories struct {
	leagues     league.Repository
	tournaments tournament.Repository
	matches     match.Repository
	ratings     rating.Repository
}

// NewHTTPServer wires stores, lock, services and router. The returned cleanup
// closes the database and redis connections it opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	policy := ratingPolicy(cfg)
	if err := policy.Validate(); err != nil {
		return nil, nil, err
	}

	var closers []func() error
	cleanup := func() error {
		var errs error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = errors.CombineErrors(errs, closers[i]())
		}
		return errs
	}

	repos, closeRepos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	locker, closeLocker, err := buildLocker(ctx, cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	closers = append(closers, closeLocker)

	// Recalculations read priors under the scope lock and must bypass the cache.
	priorRatings := repos.ratings
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.tournaments = cacherepo.NewTournamentRepository(repos.tournaments, store)
		repos.ratings = cacherepo.NewRatingRepository(repos.ratings, store)
	}

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.tournaments)
	ratingSvc := usecase.NewRatingService(
		repos.leagues,
		repos.tournaments,
		repos.matches,
		repos.ratings,
		locker,
		rating.NewEngine(policy),
		usecase.RatingServiceConfig{
			LockKeyPrefix:   cfg.RatingLockPrefix,
			BatchMaxWorkers: cfg.RatingBatchMaxWorkers,
		},
		logger.Named("rating"),
	).WithPriorRatings(priorRatings)

	handler := httpapi.NewHandler(leagueSvc, ratingSvc, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func ratingPolicy(cfg config.Config) rating.Policy {
	policy := rating.DefaultPolicy()
	if cfg.RatingDefault > 0 {
		policy.DefaultRating = cfg.RatingDefault
	}
	policy.ProvisionalThreshold = cfg.RatingProvisionalThreshold
	policy.Floor = cfg.RatingFloor
	policy.Ceiling = cfg.RatingCeiling
	return policy
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, ratings are lost on restart")
		return repositories{
			leagues:     memory.NewLeagueRepository(memory.SeedLeagues()),
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			ratings:     memory.NewRatingRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("postgres connected", "db", dbNameFromURL(cfg.DBURL))

	return repositories{
		leagues:     postgres.NewLeagueRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		matches:     postgres.NewMatchRepository(db),
		ratings:     postgres.NewRatingRepository(db),
	}, db.Close, nil
}

func buildLocker(ctx context.Context, cfg config.Config, logger *logging.Logger) (rating.Locker, func() error, error) {
	if !cfg.RedisEnabled {
		logger.Info("redis disabled, scope locks are process local")
		return memlock.New(cfg.RatingLockWait), func() error { return nil }, nil
	}

	client, err := openRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("redis connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)

	locker := redislock.New(client, redislock.Config{
		TTL:  cfg.RatingLockTTL,
		Wait: cfg.RatingLockWait,
		Breaker: resilience.BreakerConfig{
			FailureThreshold: 5,
			OpenTimeout:      cfg.RatingLockTTL / 2,
		},
	})
	return locker, client.Close, nil
}
