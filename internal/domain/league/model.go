package league

import "fmt"

// League is a club or regional table-tennis league that owns matches and ratings.
type League struct {
	ID       string
	Name     string
	Season   string
	IsActive bool
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}
