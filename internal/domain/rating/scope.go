package rating

import (
	"fmt"
	"strings"
)

type ScopeKind string

const (
	ScopeLeague     ScopeKind = "league"
	ScopeTournament ScopeKind = "tournament"
)

// Scope identifies the competition a set of ratings belongs to.
type Scope struct {
	Kind ScopeKind
	ID   string
}

func LeagueScope(leagueID string) Scope {
	return Scope{Kind: ScopeLeague, ID: strings.TrimSpace(leagueID)}
}

func TournamentScope(tournamentID string) Scope {
	return Scope{Kind: ScopeTournament, ID: strings.TrimSpace(tournamentID)}
}

func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeLeague, ScopeTournament:
	default:
		return fmt.Errorf("unknown scope kind %q", s.Kind)
	}
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%s id is required", s.Kind)
	}

	return nil
}

func (s Scope) Key() string {
	return string(s.Kind) + ":" + s.ID
}

func (s Scope) String() string {
	return s.Key()
}
