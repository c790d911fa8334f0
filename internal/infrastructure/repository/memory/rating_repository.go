package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

type RatingRepository struct {
	mu      sync.RWMutex
	byScope map[string]map[string]rating.PlayerRating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{byScope: make(map[string]map[string]rating.PlayerRating)}
}

func (r *RatingRepository) ListByScope(_ context.Context, scope rating.Scope) ([]rating.PlayerRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byScope[scope.Key()]
	out := make([]rating.PlayerRating, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sortRatings(out)

	return out, nil
}

// UpsertScope replaces the given players under one write lock, so readers
// never see a half-applied run.
func (r *RatingRepository) UpsertScope(_ context.Context, scope rating.Scope, ratings []rating.PlayerRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.byScope[scope.Key()]
	if !ok {
		items = make(map[string]rating.PlayerRating, len(ratings))
		r.byScope[scope.Key()] = items
	}
	for _, item := range ratings {
		items[item.PlayerID] = item
	}

	return nil
}

func sortRatings(items []rating.PlayerRating) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CurrentRating != items[j].CurrentRating {
			return items[i].CurrentRating > items[j].CurrentRating
		}
		return items[i].PlayerID < items[j].PlayerID
	})
}
