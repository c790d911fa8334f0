package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

type BatchRecalculateInput struct {
	LeagueIDs     []string
	TournamentIDs []string
	MaxWorkers    int
}

type BatchRecalculateResult struct {
	ScopeCount   int                     `json:"scope_count"`
	SuccessCount int                     `json:"success_count"`
	FailedCount  int                     `json:"failed_count"`
	SkippedCount int                     `json:"skipped_count"`
	WorkerCount  int                     `json:"worker_count"`
	Scopes       []BatchRecalculateScope `json:"scopes"`
}

type BatchRecalculateScope struct {
	ScopeType  string `json:"scope_type"`
	ScopeID    string `json:"scope_id"`
	Status     string `json:"status"`
	Matches    int    `json:"matches"`
	Players    int    `json:"players"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	batchStatusSuccess = "success"
	batchStatusFailed  = "failed"
	batchStatusSkipped = "skipped"
)

// RecalculateMany runs full recalculations for several scopes on a bounded
// worker pool. A failing scope is reported in its row and does not stop the rest.
func (s *RatingService) RecalculateMany(ctx context.Context, input BatchRecalculateInput) (BatchRecalculateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.RecalculateMany")
	defer span.End()

	scopes := collectBatchScopes(input)
	if len(scopes) == 0 {
		return BatchRecalculateResult{}, fmt.Errorf("%w: at least one league or tournament id is required", ErrInvalidInput)
	}

	workerCount := normalizeBatchWorkerCount(input.MaxWorkers, s.cfg.BatchMaxWorkers, len(scopes))
	result := BatchRecalculateResult{
		ScopeCount:  len(scopes),
		WorkerCount: workerCount,
		Scopes:      make([]BatchRecalculateScope, 0, len(scopes)),
	}

	p, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchRecalculateResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	rows := make(chan BatchRecalculateScope, len(scopes))
	var successCount, failedCount, skippedCount atomic.Int32

	var workers sync.WaitGroup
	for _, scope := range scopes {
		workers.Add(1)
		if err := p.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BatchRecalculateScope{ScopeType: string(scope.Kind), ScopeID: scope.ID}

			out, err := s.RecalculateScope(ctx, scope)
			switch {
			case err != nil:
				row.Status = batchStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "batch rating recalculation failed", "scope", scope.Key(), "error", err)
			case out.MatchCount == 0:
				row.Status = batchStatusSkipped
				row.Message = "no completed matches"
				skippedCount.Add(1)
			default:
				row.Status = batchStatusSuccess
				row.Matches = out.MatchCount
				row.Players = len(out.Ratings)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			rows <- row
		}); err != nil {
			workers.Done()
			return BatchRecalculateResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Scopes = append(result.Scopes, row)
	}
	sort.SliceStable(result.Scopes, func(i, j int) bool {
		if result.Scopes[i].ScopeType != result.Scopes[j].ScopeType {
			return result.Scopes[i].ScopeType < result.Scopes[j].ScopeType
		}
		return result.Scopes[i].ScopeID < result.Scopes[j].ScopeID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func collectBatchScopes(input BatchRecalculateInput) []rating.Scope {
	seen := make(map[string]struct{}, len(input.LeagueIDs)+len(input.TournamentIDs))
	out := make([]rating.Scope, 0, len(input.LeagueIDs)+len(input.TournamentIDs))

	add := func(scope rating.Scope) {
		if strings.TrimSpace(scope.ID) == "" {
			return
		}
		if _, ok := seen[scope.Key()]; ok {
			return
		}
		seen[scope.Key()] = struct{}{}
		out = append(out, scope)
	}
	for _, id := range input.LeagueIDs {
		add(rating.LeagueScope(id))
	}
	for _, id := range input.TournamentIDs {
		add(rating.TournamentScope(id))
	}

	return out
}

func normalizeBatchWorkerCount(requested, limit, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if requested <= 0 {
		requested = 1
	}
	if limit > 0 && requested > limit {
		requested = limit
	}
	if requested > taskCount {
		requested = taskCount
	}
	return requested
}
