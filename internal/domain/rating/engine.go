package rating

import (
	"sort"
)

// Engine runs the four-pass league calculation under a Policy.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// CalculateLeagueRatings runs the calculation with DefaultPolicy.
func CalculateLeagueRatings(matches []MatchResult, ratings map[string]PlayerRating) []CalculationResult {
	return NewEngine(DefaultPolicy()).CalculateLeagueRatings(matches, ratings)
}

// CalculateLeagueRatings recomputes every player appearing in matches from the
// prior snapshots in ratings. Inputs are not mutated.
func (e *Engine) CalculateLeagueRatings(matches []MatchResult, ratings map[string]PlayerRating) []CalculationResult {
	ordered := sortMatches(matches)
	if len(ordered) == 0 {
		return []CalculationResult{}
	}

	original := e.originalRatings(ordered, ratings)
	pass1 := passEstablished(ordered, original)
	pass2 := e.passBootstrap(ordered, original, pass1)
	pass3 := e.passRefine(ordered, original, pass2)
	pass4 := e.passFinal(ordered, pass3)

	return e.assembleResults(ordered, original, pass4)
}

func sortMatches(matches []MatchResult) []MatchResult {
	out := append([]MatchResult(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out
}

// originalRatings is the prior map plus an unrated snapshot for every
// player that only shows up in matches.
func (e *Engine) originalRatings(matches []MatchResult, ratings map[string]PlayerRating) map[string]PlayerRating {
	out := make(map[string]PlayerRating, len(ratings))
	for id, r := range ratings {
		out[id] = r
	}
	for _, m := range matches {
		for _, id := range [2]string{m.Player1ID, m.Player2ID} {
			if _, ok := out[id]; !ok {
				out[id] = e.policy.NewSnapshot(id)
			}
		}
	}
	return out
}

// passEstablished exchanges points only between players that both had prior matches.
func passEstablished(matches []MatchResult, original map[string]PlayerRating) map[string]int {
	out := make(map[string]int)
	for id, r := range original {
		if r.IsEstablished() {
			out[id] = r.CurrentRating
		}
	}

	for _, m := range matches {
		r1, ok1 := out[m.Player1ID]
		r2, ok2 := out[m.Player2ID]
		if !ok1 || !ok2 {
			continue
		}
		outcome := CalculateMatchRatings(m, r1, r2)
		out[m.Player1ID] = outcome.Player1NewRating
		out[m.Player2ID] = outcome.Player2NewRating
	}

	return out
}

// passBootstrap keeps established players at their first-pass rating and
// seeds unrated players from the opponents they beat and lost to.
func (e *Engine) passBootstrap(matches []MatchResult, original map[string]PlayerRating, pass1 map[string]int) map[string]int {
	adjustments := make(map[string]int, len(pass1))
	for id, rating := range pass1 {
		before := original[id].CurrentRating
		gain := rating - before
		switch {
		case gain < 50:
			adjustments[id] = before
		case gain < 75:
			adjustments[id] = rating
		default:
			adjustments[id] = rating
		}
	}

	out := make(map[string]int, len(original))
	for id, rating := range pass1 {
		out[id] = rating
	}
	for id, r := range original {
		if r.IsEstablished() {
			continue
		}
		out[id] = e.bootstrapRating(id, matches, adjustments)
	}

	return out
}

func (e *Engine) bootstrapRating(playerID string, matches []MatchResult, adjustments map[string]int) int {
	var (
		bestWin   int
		worstLoss int
		wins      int
		losses    int
	)

	for _, m := range matches {
		var opponentID string
		var won bool
		switch playerID {
		case m.Player1ID:
			opponentID, won = m.Player2ID, m.Player1Won()
		case m.Player2ID:
			opponentID, won = m.Player1ID, !m.Player1Won()
		default:
			continue
		}

		opponent, ok := adjustments[opponentID]
		if !ok {
			continue
		}
		if won {
			if wins == 0 || opponent > bestWin {
				bestWin = opponent
			}
			wins++
			continue
		}
		if losses == 0 || opponent < worstLoss {
			worstLoss = opponent
		}
		losses++
	}

	switch {
	case wins == 0 && losses == 0:
		return e.policy.DefaultRating
	case wins > 0 && losses > 0:
		return floorDiv(bestWin+worstLoss, 2)
	case wins > 0:
		return bestWin + e.policy.UnratedWinBonus
	default:
		return max(worstLoss-e.policy.UnratedLossPenalty, e.policy.MinimumBootstrapRating)
	}
}

// passRefine replays every match from the bootstrap ratings and then stops
// established players from ending below where they started.
func (e *Engine) passRefine(matches []MatchResult, original map[string]PlayerRating, pass2 map[string]int) map[string]int {
	out := e.replay(matches, pass2)
	for id, r := range original {
		if !r.IsEstablished() {
			continue
		}
		if rating, ok := out[id]; ok && rating < r.CurrentRating {
			out[id] = r.CurrentRating
		}
	}
	return out
}

func (e *Engine) passFinal(matches []MatchResult, pass3 map[string]int) map[string]int {
	return e.replay(matches, pass3)
}

func (e *Engine) replay(matches []MatchResult, start map[string]int) map[string]int {
	out := make(map[string]int, len(start))
	for id, rating := range start {
		out[id] = rating
	}

	for _, m := range matches {
		r1, ok := out[m.Player1ID]
		if !ok {
			r1 = e.policy.DefaultRating
		}
		r2, ok := out[m.Player2ID]
		if !ok {
			r2 = e.policy.DefaultRating
		}
		outcome := CalculateMatchRatings(m, r1, r2)
		out[m.Player1ID] = outcome.Player1NewRating
		out[m.Player2ID] = outcome.Player2NewRating
	}

	return out
}

func (e *Engine) assembleResults(matches []MatchResult, original map[string]PlayerRating, final map[string]int) []CalculationResult {
	played := make(map[string]int)
	for _, m := range matches {
		played[m.Player1ID]++
		played[m.Player2ID]++
	}

	out := make([]CalculationResult, 0, len(played))
	for id, count := range played {
		oldRating := original[id].CurrentRating
		newRating := e.policy.clamp(final[id])
		out = append(out, CalculationResult{
			PlayerID:      id,
			OldRating:     oldRating,
			NewRating:     newRating,
			RatingChange:  newRating - oldRating,
			MatchesPlayed: count,
			IsProvisional: e.policy.IsProvisional(count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
