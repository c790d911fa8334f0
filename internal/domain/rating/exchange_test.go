package rating

import "testing"

func TestCalculateMatchRatings_ExpectedResult(t *testing.T) {
	t.Parallel()

	match := MatchResult{ID: "m1", Player1ID: "p1", Player2ID: "p2", Player1Score: 11, Player2Score: 9}
	got := CalculateMatchRatings(match, 1500, 1400)

	want := MatchOutcome{Player1NewRating: 1504, Player2NewRating: 1396, PointsExchanged: 4}
	if got != want {
		t.Fatalf("unexpected outcome: got=%+v want=%+v", got, want)
	}
}

func TestCalculateMatchRatings_Upset(t *testing.T) {
	t.Parallel()

	match := MatchResult{ID: "m1", Player1ID: "p1", Player2ID: "p2", Player1Score: 3, Player2Score: 1}
	got := CalculateMatchRatings(match, 1400, 1500)

	want := MatchOutcome{Player1NewRating: 1420, Player2NewRating: 1480, PointsExchanged: 20}
	if got != want {
		t.Fatalf("unexpected outcome: got=%+v want=%+v", got, want)
	}
}

func TestCalculateMatchRatings_EqualScoresGoToPlayer2(t *testing.T) {
	t.Parallel()

	match := MatchResult{ID: "m1", Player1ID: "p1", Player2ID: "p2", Player1Score: 2, Player2Score: 2}
	if match.Player1Won() {
		t.Fatalf("equal scores must not count as a player1 win")
	}

	got := CalculateMatchRatings(match, 1500, 1400)
	want := MatchOutcome{Player1NewRating: 1480, Player2NewRating: 1420, PointsExchanged: 20}
	if got != want {
		t.Fatalf("unexpected outcome: got=%+v want=%+v", got, want)
	}
}

func TestCalculateMatchRatings_ZeroSum(t *testing.T) {
	t.Parallel()

	for r1 := 800; r1 <= 2200; r1 += 37 {
		for r2 := 800; r2 <= 2200; r2 += 53 {
			for _, scores := range [][2]int{{3, 1}, {1, 3}, {2, 2}} {
				match := MatchResult{Player1ID: "a", Player2ID: "b", Player1Score: scores[0], Player2Score: scores[1]}
				out := CalculateMatchRatings(match, r1, r2)
				if out.Player1NewRating-r1 != -(out.Player2NewRating - r2) {
					t.Fatalf("exchange is not zero-sum for r1=%d r2=%d scores=%v: %+v", r1, r2, scores, out)
				}
				if out.PointsExchanged < 0 {
					t.Fatalf("negative exchange for r1=%d r2=%d: %d", r1, r2, out.PointsExchanged)
				}
			}
		}
	}
}

func TestLookupExchange_Monotonic(t *testing.T) {
	t.Parallel()

	prevExpected := LookupExchange(0, false)
	prevUpset := LookupExchange(0, true)
	for diff := 1; diff <= 400; diff++ {
		expected := LookupExchange(diff, false)
		upset := LookupExchange(diff, true)
		if expected < 0 || upset < 0 {
			t.Fatalf("negative exchange at diff=%d", diff)
		}
		if expected > prevExpected {
			t.Fatalf("expected exchange increased at diff=%d: %d > %d", diff, expected, prevExpected)
		}
		if upset < prevUpset {
			t.Fatalf("upset exchange decreased at diff=%d: %d < %d", diff, upset, prevUpset)
		}
		prevExpected, prevUpset = expected, upset
	}
}

func TestLookupExchange_BinEdges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		diff     int
		upset    bool
		expected int
	}{
		{diff: 0, expected: 8},
		{diff: 12, expected: 8},
		{diff: 13, expected: 7},
		{diff: 13, upset: true, expected: 10},
		{diff: 112, expected: 4},
		{diff: 113, upset: true, expected: 25},
		{diff: 237, upset: true, expected: 45},
		{diff: 238, expected: 0},
		{diff: 238, upset: true, expected: 50},
		{diff: -100, expected: 4},
		{diff: 5000, upset: true, expected: 50},
	}

	for _, tc := range cases {
		if got := LookupExchange(tc.diff, tc.upset); got != tc.expected {
			t.Fatalf("LookupExchange(%d, %v)=%d want %d", tc.diff, tc.upset, got, tc.expected)
		}
	}
}

func TestExchangeTable_BinsAreContiguous(t *testing.T) {
	t.Parallel()

	if exchangeTable[0].MinDiff != 0 {
		t.Fatalf("first bin must start at 0, got %d", exchangeTable[0].MinDiff)
	}
	for i := 1; i < len(exchangeTable); i++ {
		if exchangeTable[i].MinDiff != exchangeTable[i-1].MaxDiff+1 {
			t.Fatalf("gap between bins %d and %d: %+v %+v", i-1, i, exchangeTable[i-1], exchangeTable[i])
		}
	}
}
