package rating

import (
	"reflect"
	"testing"
	"time"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func completedMatch(id, p1, p2 string, s1, s2 int, minute int) MatchResult {
	return MatchResult{
		ID:           id,
		Player1ID:    p1,
		Player2ID:    p2,
		Player1Score: s1,
		Player2Score: s2,
		CompletedAt:  baseTime.Add(time.Duration(minute) * time.Minute),
	}
}

func established(id string, rating int) PlayerRating {
	return PlayerRating{PlayerID: id, CurrentRating: rating, MatchesPlayed: 2}
}

func unrated(id string) PlayerRating {
	return PlayerRating{PlayerID: id, CurrentRating: 1200, IsProvisional: true}
}

func TestCalculateLeagueRatings_EmptyCorpus(t *testing.T) {
	t.Parallel()

	got := CalculateLeagueRatings(nil, map[string]PlayerRating{"a": established("a", 1500)})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestCalculateLeagueRatings_SingleEstablishedMatch(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{completedMatch("m1", "p1", "p2", 11, 9, 0)}
	ratings := map[string]PlayerRating{
		"p1": established("p1", 1500),
		"p2": established("p2", 1400),
	}

	got := CalculateLeagueRatings(matches, ratings)
	want := []CalculationResult{
		{PlayerID: "p1", OldRating: 1500, NewRating: 1512, RatingChange: 12, MatchesPlayed: 1, IsProvisional: true},
		{PlayerID: "p2", OldRating: 1400, NewRating: 1396, RatingChange: -4, MatchesPlayed: 1, IsProvisional: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected results:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestPassBootstrap_AllWins(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{completedMatch("m1", "u", "e", 3, 0, 0)}
	original := engine.originalRatings(matches, map[string]PlayerRating{"e": established("e", 1600)})

	pass1 := passEstablished(matches, original)
	pass2 := engine.passBootstrap(matches, original, pass1)
	if pass2["u"] != 1610 {
		t.Fatalf("expected bootstrap 1610, got %d", pass2["u"])
	}
	if pass2["e"] != 1600 {
		t.Fatalf("expected established player to keep 1600, got %d", pass2["e"])
	}
}

func TestPassBootstrap_MixedRecord(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{
		completedMatch("m1", "u", "e1", 3, 1, 0),
		completedMatch("m2", "e2", "u", 3, 2, 1),
	}
	original := engine.originalRatings(matches, map[string]PlayerRating{
		"e1": established("e1", 1700),
		"e2": established("e2", 1300),
	})

	pass2 := engine.passBootstrap(matches, original, passEstablished(matches, original))
	if pass2["u"] != 1500 {
		t.Fatalf("expected bootstrap 1500, got %d", pass2["u"])
	}
}

func TestPassBootstrap_MixedRecordRoundsDown(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{
		completedMatch("m1", "u", "e1", 3, 1, 0),
		completedMatch("m2", "u", "e2", 0, 3, 1),
	}
	original := engine.originalRatings(matches, map[string]PlayerRating{
		"e1": established("e1", 1701),
		"e2": established("e2", 1300),
	})

	pass2 := engine.passBootstrap(matches, original, passEstablished(matches, original))
	if pass2["u"] != 1500 {
		t.Fatalf("expected floor((1701+1300)/2)=1500, got %d", pass2["u"])
	}
}

func TestPassBootstrap_AllLosses(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{
		completedMatch("m1", "u", "e1", 0, 3, 0),
		completedMatch("m2", "u", "e2", 1, 3, 1),
		completedMatch("m3", "v", "low", 1, 3, 2),
	}
	original := engine.originalRatings(matches, map[string]PlayerRating{
		"e1":  established("e1", 1500),
		"e2":  established("e2", 1300),
		"low": established("low", 105),
	})

	pass2 := engine.passBootstrap(matches, original, passEstablished(matches, original))
	if pass2["u"] != 1290 {
		t.Fatalf("expected worst loss 1300 - 10 = 1290, got %d", pass2["u"])
	}
	if pass2["v"] != 100 {
		t.Fatalf("expected bootstrap floor of 100, got %d", pass2["v"])
	}
}

func TestPassBootstrap_NoRatedOpponents(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{completedMatch("m1", "u", "v", 3, 0, 0)}
	original := engine.originalRatings(matches, map[string]PlayerRating{"u": unrated("u")})

	pass2 := engine.passBootstrap(matches, original, passEstablished(matches, original))
	if pass2["u"] != 1200 || pass2["v"] != 1200 {
		t.Fatalf("expected both unrated players at 1200, got u=%d v=%d", pass2["u"], pass2["v"])
	}
}

func TestPassBootstrap_LargeGainUsesFirstPassRating(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	// Three upsets of 50 points each lift "a" from 1200 to 1350 in the first pass.
	matches := []MatchResult{
		completedMatch("m1", "a", "b", 3, 0, 0),
		completedMatch("m2", "a", "b", 3, 0, 1),
		completedMatch("m3", "a", "b", 3, 0, 2),
		completedMatch("m4", "u", "a", 3, 0, 3),
	}
	original := engine.originalRatings(matches, map[string]PlayerRating{
		"a": established("a", 1200),
		"b": established("b", 2000),
	})

	pass1 := passEstablished(matches, original)
	if pass1["a"] != 1350 {
		t.Fatalf("expected first pass rating 1350, got %d", pass1["a"])
	}

	pass2 := engine.passBootstrap(matches, original, pass1)
	if pass2["u"] != 1360 {
		t.Fatalf("expected bootstrap off first pass rating 1350 + 10, got %d", pass2["u"])
	}
}

func TestPassRefine_ClampsEstablishedPlayers(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultPolicy())
	matches := []MatchResult{completedMatch("m1", "u", "a", 3, 1, 0)}
	original := engine.originalRatings(matches, map[string]PlayerRating{"a": established("a", 1500)})

	pass2 := engine.passBootstrap(matches, original, passEstablished(matches, original))
	pass3 := engine.passRefine(matches, original, pass2)
	if pass3["a"] != 1500 {
		t.Fatalf("expected pass three to hold a at its original 1500, got %d", pass3["a"])
	}
	if pass3["u"] != 1518 {
		t.Fatalf("expected u at 1518 after pass three, got %d", pass3["u"])
	}

	results := engine.CalculateLeagueRatings(matches, map[string]PlayerRating{"a": established("a", 1500)})
	if results[0].PlayerID != "a" || results[0].NewRating != 1493 {
		t.Fatalf("expected final pass to drop a to 1493, got %+v", results[0])
	}
}

func TestCalculateLeagueRatings_Deterministic(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		completedMatch("m1", "a", "b", 3, 1, 0),
		completedMatch("m2", "c", "a", 3, 2, 1),
		completedMatch("m3", "b", "c", 0, 3, 2),
		completedMatch("m4", "d", "a", 3, 0, 3),
		completedMatch("m5", "e", "d", 1, 1, 4),
	}
	ratings := map[string]PlayerRating{
		"a": established("a", 1650),
		"b": established("b", 1420),
		"c": unrated("c"),
	}

	first := CalculateLeagueRatings(matches, ratings)
	second := CalculateLeagueRatings(matches, ratings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs:\n%+v\n%+v", first, second)
	}
}

func TestCalculateLeagueRatings_SortsByCompletion(t *testing.T) {
	t.Parallel()

	ordered := []MatchResult{
		completedMatch("m1", "a", "b", 3, 1, 0),
		completedMatch("m2", "b", "c", 3, 1, 1),
		completedMatch("m3", "c", "a", 3, 1, 2),
	}
	shuffled := []MatchResult{ordered[2], ordered[0], ordered[1]}
	ratings := map[string]PlayerRating{
		"a": established("a", 1500),
		"b": established("b", 1450),
		"c": established("c", 1380),
	}

	want := CalculateLeagueRatings(ordered, ratings)
	got := CalculateLeagueRatings(shuffled, ratings)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("input order should not matter:\n got=%+v\nwant=%+v", got, want)
	}
	if shuffled[0].ID != "m3" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestCalculateLeagueRatings_MatchesPlayedAndProvisional(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		completedMatch("m1", "a", "b", 3, 1, 0),
		completedMatch("m2", "a", "c", 3, 1, 1),
		completedMatch("m3", "b", "a", 3, 1, 2),
	}
	ratings := map[string]PlayerRating{
		"a": established("a", 1500),
		"z": established("z", 1800),
	}

	got := CalculateLeagueRatings(matches, ratings)
	counts := map[string]int{"a": 3, "b": 2, "c": 1}
	if len(got) != len(counts) {
		t.Fatalf("expected %d results, got %+v", len(counts), got)
	}
	for _, result := range got {
		want, ok := counts[result.PlayerID]
		if !ok {
			t.Fatalf("unexpected player in results: %s", result.PlayerID)
		}
		if result.MatchesPlayed != want {
			t.Fatalf("player %s: matches played=%d want %d", result.PlayerID, result.MatchesPlayed, want)
		}
		if result.IsProvisional != (result.MatchesPlayed < 2) {
			t.Fatalf("player %s: provisional=%v with %d matches", result.PlayerID, result.IsProvisional, result.MatchesPlayed)
		}
		if result.RatingChange != result.NewRating-result.OldRating {
			t.Fatalf("player %s: inconsistent change %+v", result.PlayerID, result)
		}
	}
}

func TestCalculateLeagueRatings_DoesNotMutateRatings(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{completedMatch("m1", "a", "b", 3, 1, 0)}
	ratings := map[string]PlayerRating{"a": established("a", 1500)}

	CalculateLeagueRatings(matches, ratings)
	if len(ratings) != 1 || ratings["a"].CurrentRating != 1500 {
		t.Fatalf("ratings map mutated: %+v", ratings)
	}
}

func TestEngine_PolicyBoundsClampEmittedRating(t *testing.T) {
	t.Parallel()

	ceiling := 1505
	policy := DefaultPolicy()
	policy.Ceiling = &ceiling

	matches := []MatchResult{completedMatch("m1", "p1", "p2", 11, 9, 0)}
	ratings := map[string]PlayerRating{
		"p1": established("p1", 1500),
		"p2": established("p2", 1400),
	}

	got := NewEngine(policy).CalculateLeagueRatings(matches, ratings)
	if got[0].NewRating != 1505 || got[0].RatingChange != 5 {
		t.Fatalf("expected ceiling to clamp p1 to 1505, got %+v", got[0])
	}
	if got[1].NewRating != 1396 {
		t.Fatalf("expected p2 untouched by ceiling, got %+v", got[1])
	}
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy should be valid: %v", err)
	}

	floor, ceiling := 1600, 1500
	policy := DefaultPolicy()
	policy.Floor, policy.Ceiling = &floor, &ceiling
	if err := policy.Validate(); err == nil {
		t.Fatalf("expected floor above ceiling to fail")
	}

	policy = DefaultPolicy()
	policy.DefaultRating = 0
	if err := policy.Validate(); err == nil {
		t.Fatalf("expected zero default rating to fail")
	}
}

func TestScope_ValidateAndKey(t *testing.T) {
	t.Parallel()

	scope := LeagueScope("  lg-1 ")
	if err := scope.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.Key() != "league:lg-1" {
		t.Fatalf("unexpected key: %s", scope.Key())
	}
	if err := TournamentScope("").Validate(); err == nil {
		t.Fatalf("expected empty tournament id to fail")
	}
	if err := (Scope{Kind: "season", ID: "x"}).Validate(); err == nil {
		t.Fatalf("expected unknown kind to fail")
	}
}
