package match

import (
	"strings"
	"time"

	"github.com/riskibarqy/table-tennis-league/internal/domain/rating"
)

const (
	StatusScheduled       = "SCHEDULED"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusCompleted       = "COMPLETED"
	StatusCancelled       = "CANCELLED"
)

// Match is one singles match between two players. TournamentID is empty for
// regular league play.
type Match struct {
	ID           string
	LeagueID     string
	TournamentID string
	Player1ID    string
	Player2ID    string
	Player1Score int
	Player2Score int
	Status       string
	SubmittedBy  string
	CompletedAt  *time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

// InScope reports whether the match counts toward the given rating pool.
func (m Match) InScope(scope rating.Scope) bool {
	switch scope.Kind {
	case rating.ScopeLeague:
		return m.LeagueID == scope.ID && m.TournamentID == ""
	case rating.ScopeTournament:
		return m.TournamentID == scope.ID
	default:
		return false
	}
}

// Result converts a completed match into engine input.
func (m Match) Result() (rating.MatchResult, bool) {
	if !IsCompletedStatus(m.Status) || m.CompletedAt == nil {
		return rating.MatchResult{}, false
	}

	return rating.MatchResult{
		ID:           m.ID,
		Player1ID:    m.Player1ID,
		Player2ID:    m.Player2ID,
		Player1Score: m.Player1Score,
		Player2Score: m.Player2Score,
		CompletedAt:  *m.CompletedAt,
	}, true
}
