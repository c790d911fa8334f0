package rating

import "math"

// Exchange is one row of the point exchange table. Bounds are inclusive.
type Exchange struct {
	MinDiff  int
	MaxDiff  int
	Expected int
	Upset    int
}

var exchangeTable = []Exchange{
	{MinDiff: 0, MaxDiff: 12, Expected: 8, Upset: 8},
	{MinDiff: 13, MaxDiff: 37, Expected: 7, Upset: 10},
	{MinDiff: 38, MaxDiff: 62, Expected: 6, Upset: 13},
	{MinDiff: 63, MaxDiff: 87, Expected: 5, Upset: 16},
	{MinDiff: 88, MaxDiff: 112, Expected: 4, Upset: 20},
	{MinDiff: 113, MaxDiff: 137, Expected: 3, Upset: 25},
	{MinDiff: 138, MaxDiff: 162, Expected: 2, Upset: 30},
	{MinDiff: 163, MaxDiff: 187, Expected: 2, Upset: 35},
	{MinDiff: 188, MaxDiff: 212, Expected: 1, Upset: 40},
	{MinDiff: 213, MaxDiff: 237, Expected: 1, Upset: 45},
	{MinDiff: 238, MaxDiff: math.MaxInt, Expected: 0, Upset: 50},
}

var fallbackExchange = Exchange{Expected: 0, Upset: 50}

// LookupExchange returns the points moved for a rating gap.
func LookupExchange(diff int, upset bool) int {
	if diff < 0 {
		diff = -diff
	}

	row := fallbackExchange
	for _, candidate := range exchangeTable {
		if diff >= candidate.MinDiff && diff <= candidate.MaxDiff {
			row = candidate
			break
		}
	}

	if upset {
		return row.Upset
	}
	return row.Expected
}

// CalculateMatchRatings applies one point exchange between two known ratings.
// No bounds are applied here.
func CalculateMatchRatings(match MatchResult, player1Rating, player2Rating int) MatchOutcome {
	player1Won := match.Player1Won()

	upset := player2Rating < player1Rating
	if player1Won {
		upset = player1Rating < player2Rating
	}

	points := LookupExchange(player1Rating-player2Rating, upset)
	if player1Won {
		return MatchOutcome{
			Player1NewRating: player1Rating + points,
			Player2NewRating: player2Rating - points,
			PointsExchanged:  points,
		}
	}

	return MatchOutcome{
		Player1NewRating: player1Rating - points,
		Player2NewRating: player2Rating + points,
		PointsExchanged:  points,
	}
}
