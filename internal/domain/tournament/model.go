package tournament

import (
	"fmt"
	"time"
)

// Tournament is a one-off event inside a league with its own rating pool.
type Tournament struct {
	ID       string
	LeagueID string
	Name     string
	StartsAt time.Time
	IsActive bool
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("tournament league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}

	return nil
}
