package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/match"
	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	r := &MatchRepository{items: make(map[string]match.Match, len(items))}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *MatchRepository) ListCompleted(_ context.Context, scope rating.Scope, until *time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if !item.InScope(scope) || !match.IsCompletedStatus(item.Status) || item.CompletedAt == nil {
			continue
		}
		if until != nil && item.CompletedAt.After(*until) {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CompletedAt.Equal(*out[j].CompletedAt) {
			return out[i].CompletedAt.Before(*out[j].CompletedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, scope rating.Scope, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok || !item.InScope(scope) {
		return match.Match{}, false, nil
	}
	return item, true, nil
}
