package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	Season    string     `db:"season"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type tournamentTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	LeaguePublicID string     `db:"league_public_id"`
	Name           string     `db:"name"`
	StartsAt       time.Time  `db:"starts_at"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type matchTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	LeaguePublicID     string         `db:"league_public_id"`
	TournamentPublicID sql.NullString `db:"tournament_public_id"`
	Player1PublicID    string         `db:"player1_public_id"`
	Player2PublicID    string         `db:"player2_public_id"`
	Player1Score       int            `db:"player1_score"`
	Player2Score       int            `db:"player2_score"`
	Status             string         `db:"status"`
	SubmittedBy        sql.NullString `db:"submitted_by"`
	CompletedAt        *time.Time     `db:"completed_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}

type playerRatingTableModel struct {
	ID             int64     `db:"id"`
	PlayerPublicID string    `db:"player_public_id"`
	ScopeType      string    `db:"scope_type"`
	ScopePublicID  string    `db:"scope_public_id"`
	CurrentRating  int       `db:"current_rating"`
	MatchesPlayed  int       `db:"matches_played"`
	IsProvisional  bool      `db:"is_provisional"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type playerRatingInsertModel struct {
	PlayerPublicID string    `db:"player_public_id"`
	ScopeType      string    `db:"scope_type"`
	ScopePublicID  string    `db:"scope_public_id"`
	CurrentRating  int       `db:"current_rating"`
	MatchesPlayed  int       `db:"matches_played"`
	IsProvisional  bool      `db:"is_provisional"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
