package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/league"
	"github.com/riskibarqy/table-tennis-league/internal/domain/match"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
	"github.com/riskibarqy/table-tennis-league/internal/domain/tournament"
	"github.com/riskibarqy/table-tennis-league/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type RatingServiceConfig struct {
	LockKeyPrefix   string
	BatchMaxWorkers int
	Now             func() time.Time
}

// RecalculationResult summarizes one recalculation run for a scope.
type RecalculationResult struct {
	Scope          rating.Scope
	TriggerMatchID string
	MatchCount     int
	Ratings        []rating.CalculationResult
	ComputedAt     time.Time
}

type RatingService struct {
	leagueRepo     league.Repository
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	ratingRepo     rating.Repository
	priorRepo      rating.Repository
	locker         rating.Locker
	engine         *rating.Engine
	cfg            RatingServiceConfig
	logger         *logging.Logger
}

func NewRatingService(
	leagueRepo league.Repository,
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	ratingRepo rating.Repository,
	locker rating.Locker,
	engine *rating.Engine,
	cfg RatingServiceConfig,
	logger *logging.Logger,
) *RatingService {
	if engine == nil {
		engine = rating.NewEngine(rating.DefaultPolicy())
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if strings.TrimSpace(cfg.LockKeyPrefix) == "" {
		cfg.LockKeyPrefix = "ratings:lock:"
	}
	if cfg.BatchMaxWorkers <= 0 {
		cfg.BatchMaxWorkers = 2
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RatingService{
		leagueRepo:     leagueRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		ratingRepo:     ratingRepo,
		priorRepo:      ratingRepo,
		locker:         locker,
		engine:         engine,
		cfg:            cfg,
		logger:         logger,
	}
}

// WithPriorRatings sets the store recalculations read prior ratings from while
// holding the scope lock. It must not be served from a cache.
func (s *RatingService) WithPriorRatings(repo rating.Repository) *RatingService {
	if repo != nil {
		s.priorRepo = repo
	}
	return s
}

// RecalculateAfterMatch rebuilds the scope ratings from every completed match
// up to and including the given one.
func (s *RatingService) RecalculateAfterMatch(ctx context.Context, scope rating.Scope, matchID string) (RecalculationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.RecalculateAfterMatch",
		attribute.String("rating.scope", scope.Key()),
		attribute.String("match.id", matchID),
	)
	defer span.End()

	if err := s.ensureScope(ctx, scope); err != nil {
		return RecalculationResult{}, err
	}

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return RecalculationResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, scope, matchID)
	if err != nil {
		return RecalculationResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return RecalculationResult{}, fmt.Errorf("%w: match=%s scope=%s", ErrNotFound, matchID, scope.Key())
	}
	if !match.IsCompletedStatus(item.Status) || item.CompletedAt == nil {
		return RecalculationResult{}, fmt.Errorf("%w: match=%s is %s, ratings only move on completed matches", ErrConflict, matchID, match.NormalizeStatus(item.Status))
	}

	until := item.CompletedAt.UTC()
	return s.recalculate(ctx, scope, &until, matchID)
}

// RecalculateScope rebuilds the scope ratings from all completed matches.
func (s *RatingService) RecalculateScope(ctx context.Context, scope rating.Scope) (RecalculationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.RecalculateScope",
		attribute.String("rating.scope", scope.Key()),
	)
	defer span.End()

	if err := s.ensureScope(ctx, scope); err != nil {
		return RecalculationResult{}, err
	}

	return s.recalculate(ctx, scope, nil, "")
}

func (s *RatingService) ListRatings(ctx context.Context, scope rating.Scope) ([]rating.PlayerRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.ListRatings")
	defer span.End()

	if err := s.ensureScope(ctx, scope); err != nil {
		return nil, err
	}

	items, err := s.ratingRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list ratings scope=%s: %w", scope.Key(), err)
	}

	return items, nil
}

// Preview runs the engine over caller-supplied data without touching any store.
// A zero rating is replaced by the policy default.
func (s *RatingService) Preview(matches []rating.MatchResult, ratings []rating.PlayerRating) ([]rating.CalculationResult, error) {
	normalized := make([]rating.MatchResult, 0, len(matches))
	for _, m := range matches {
		m.Player1ID = strings.TrimSpace(m.Player1ID)
		m.Player2ID = strings.TrimSpace(m.Player2ID)
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		normalized = append(normalized, m)
	}

	prior := make(map[string]rating.PlayerRating, len(ratings))
	for _, r := range ratings {
		id := strings.TrimSpace(r.PlayerID)
		if id == "" {
			return nil, fmt.Errorf("%w: rating player id is required", ErrInvalidInput)
		}
		if _, dup := prior[id]; dup {
			return nil, fmt.Errorf("%w: duplicate rating for player=%s", ErrInvalidInput, id)
		}
		if r.MatchesPlayed < 0 {
			return nil, fmt.Errorf("%w: matches played must be >= 0 for player=%s", ErrInvalidInput, id)
		}
		if r.CurrentRating < 0 {
			return nil, fmt.Errorf("%w: rating must be >= 0 for player=%s", ErrInvalidInput, id)
		}
		if r.CurrentRating == 0 {
			r.CurrentRating = s.engine.Policy().DefaultRating
		}
		r.PlayerID = id
		prior[id] = r
	}

	return s.engine.CalculateLeagueRatings(normalized, prior), nil
}

// PreviewMatch applies one point exchange between two ratings.
func (s *RatingService) PreviewMatch(m rating.MatchResult, player1Rating, player2Rating int) (rating.MatchOutcome, error) {
	m.Player1ID = strings.TrimSpace(m.Player1ID)
	m.Player2ID = strings.TrimSpace(m.Player2ID)
	if err := m.Validate(); err != nil {
		return rating.MatchOutcome{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return rating.CalculateMatchRatings(m, player1Rating, player2Rating), nil
}

func (s *RatingService) recalculate(ctx context.Context, scope rating.Scope, until *time.Time, triggerMatchID string) (RecalculationResult, error) {
	release, err := s.locker.Acquire(ctx, s.cfg.LockKeyPrefix+scope.Key())
	if err != nil {
		if errors.Is(err, rating.ErrLockNotAcquired) {
			return RecalculationResult{}, fmt.Errorf("%w: recalculation already running for scope=%s", ErrConflict, scope.Key())
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return RecalculationResult{}, fmt.Errorf("acquire rating lock scope=%s: %w", scope.Key(), err)
		}
		return RecalculationResult{}, fmt.Errorf("%w: acquire rating lock: %v", ErrDependencyUnavailable, err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "release rating lock failed", "scope", scope.Key(), "error", err)
		}
	}()

	matches, prior, err := s.loadCorpus(ctx, scope, until, triggerMatchID)
	if err != nil {
		return RecalculationResult{}, err
	}

	computedAt := s.cfg.Now()
	results := s.engine.CalculateLeagueRatings(matches, prior)
	out := RecalculationResult{
		Scope:          scope,
		TriggerMatchID: triggerMatchID,
		MatchCount:     len(matches),
		Ratings:        results,
		ComputedAt:     computedAt,
	}
	if len(results) == 0 {
		s.logger.InfoContext(ctx, "no completed matches to rate", "scope", scope.Key())
		return out, nil
	}

	snapshots := make([]rating.PlayerRating, 0, len(results))
	for _, r := range results {
		snapshots = append(snapshots, rating.PlayerRating{
			PlayerID:      r.PlayerID,
			CurrentRating: r.NewRating,
			MatchesPlayed: r.MatchesPlayed,
			IsProvisional: r.IsProvisional,
			LastUpdatedAt: computedAt,
		})
	}
	if err := s.ratingRepo.UpsertScope(ctx, scope, snapshots); err != nil {
		return RecalculationResult{}, fmt.Errorf("upsert ratings scope=%s: %w", scope.Key(), err)
	}

	s.logger.InfoContext(ctx, "ratings recalculated",
		"scope", scope.Key(),
		"trigger_match_id", triggerMatchID,
		"matches", len(matches),
		"players", len(results),
	)
	return out, nil
}

// loadCorpus fetches matches and prior snapshots concurrently. With a trigger,
// matches sharing its completion time are kept only up to its id.
func (s *RatingService) loadCorpus(ctx context.Context, scope rating.Scope, until *time.Time, triggerMatchID string) ([]rating.MatchResult, map[string]rating.PlayerRating, error) {
	var (
		items []match.Match
		prior []rating.PlayerRating
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		items, err = s.matchRepo.ListCompleted(ctx, scope, until)
		if err != nil {
			return fmt.Errorf("list completed matches scope=%s: %w", scope.Key(), err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		prior, err = s.priorRepo.ListByScope(ctx, scope)
		if err != nil {
			return fmt.Errorf("list ratings scope=%s: %w", scope.Key(), err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	matches := make([]rating.MatchResult, 0, len(items))
	for _, item := range items {
		result, ok := item.Result()
		if !ok {
			continue
		}
		if until != nil && triggerMatchID != "" && result.CompletedAt.Equal(*until) && result.ID > triggerMatchID {
			continue
		}
		matches = append(matches, result)
	}

	byPlayer := make(map[string]rating.PlayerRating, len(prior))
	for _, r := range prior {
		byPlayer[r.PlayerID] = r
	}

	return matches, byPlayer, nil
}

func (s *RatingService) ensureScope(ctx context.Context, scope rating.Scope) error {
	if err := scope.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		exists bool
		err    error
	)
	switch scope.Kind {
	case rating.ScopeLeague:
		_, exists, err = s.leagueRepo.GetByID(ctx, scope.ID)
	case rating.ScopeTournament:
		_, exists, err = s.tournamentRepo.GetByID(ctx, scope.ID)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", scope.Kind, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s=%s", ErrNotFound, scope.Kind, scope.ID)
	}

	return nil
}
