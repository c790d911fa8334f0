package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPolicy = errors.New("invalid rating policy")

// MatchResult is one completed match as the engine sees it.
type MatchResult struct {
	ID           string
	Player1ID    string
	Player2ID    string
	Player1Score int
	Player2Score int
	CompletedAt  time.Time
}

// Player1Won reports whether player1 took the match. Equal scores count as a player2 win.
func (m MatchResult) Player1Won() bool {
	return m.Player1Score > m.Player2Score
}

func (m MatchResult) Validate() error {
	if strings.TrimSpace(m.Player1ID) == "" || strings.TrimSpace(m.Player2ID) == "" {
		return fmt.Errorf("match %q: both player ids are required", m.ID)
	}
	if m.Player1ID == m.Player2ID {
		return fmt.Errorf("match %q: player cannot play against itself", m.ID)
	}
	if m.Player1Score < 0 || m.Player2Score < 0 {
		return fmt.Errorf("match %q: scores must be >= 0", m.ID)
	}

	return nil
}

// PlayerRating is a stored rating snapshot for one player within a scope.
type PlayerRating struct {
	PlayerID      string
	CurrentRating int
	MatchesPlayed int
	IsProvisional bool
	LastUpdatedAt time.Time
}

// IsEstablished reports whether the player had matches before the current run.
func (r PlayerRating) IsEstablished() bool {
	return r.MatchesPlayed > 0
}

// CalculationResult is the engine output for one player.
type CalculationResult struct {
	PlayerID      string
	OldRating     int
	NewRating     int
	RatingChange  int
	MatchesPlayed int
	IsProvisional bool
}

// MatchOutcome is the result of a single point exchange.
type MatchOutcome struct {
	Player1NewRating int
	Player2NewRating int
	PointsExchanged  int
}

// Policy holds the tunable constants of the calculation.
type Policy struct {
	DefaultRating          int
	ProvisionalThreshold   int
	UnratedWinBonus        int
	UnratedLossPenalty     int
	MinimumBootstrapRating int
	// Floor and Ceiling clamp emitted ratings when set.
	Floor   *int
	Ceiling *int
}

func DefaultPolicy() Policy {
	return Policy{
		DefaultRating:          1200,
		ProvisionalThreshold:   2,
		UnratedWinBonus:        10,
		UnratedLossPenalty:     10,
		MinimumBootstrapRating: 100,
	}
}

func (p Policy) Validate() error {
	if p.DefaultRating <= 0 {
		return fmt.Errorf("%w: default rating must be > 0", ErrInvalidPolicy)
	}
	if p.ProvisionalThreshold < 0 {
		return fmt.Errorf("%w: provisional threshold must be >= 0", ErrInvalidPolicy)
	}
	if p.UnratedWinBonus < 0 || p.UnratedLossPenalty < 0 {
		return fmt.Errorf("%w: bootstrap adjustments must be >= 0", ErrInvalidPolicy)
	}
	if p.Floor != nil && p.Ceiling != nil && *p.Floor > *p.Ceiling {
		return fmt.Errorf("%w: floor %d is above ceiling %d", ErrInvalidPolicy, *p.Floor, *p.Ceiling)
	}

	return nil
}

// IsProvisional applies the provisional threshold to a match count.
func (p Policy) IsProvisional(matchesPlayed int) bool {
	return matchesPlayed < p.ProvisionalThreshold
}

func (p Policy) clamp(value int) int {
	if p.Floor != nil && value < *p.Floor {
		value = *p.Floor
	}
	if p.Ceiling != nil && value > *p.Ceiling {
		value = *p.Ceiling
	}
	return value
}

// NewSnapshot builds the default snapshot for a player seen for the first time.
func (p Policy) NewSnapshot(playerID string) PlayerRating {
	return PlayerRating{
		PlayerID:      playerID,
		CurrentRating: p.DefaultRating,
		IsProvisional: true,
	}
}
