package querybuilder

import (
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestSelectBuilder(t *testing.T) {
	until := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	query, args, err := Select("public_id", "player1_public_id").
		From("matches").
		Where(Eq("league_public_id", "lg-1"), IsNull("tournament_public_id"), IsNotNull("completed_at"), Lte("completed_at", until)).
		OrderBy("completed_at", "public_id").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, player1_public_id FROM matches WHERE league_public_id = $1 AND tournament_public_id IS NULL AND completed_at IS NOT NULL AND completed_at <= $2 ORDER BY completed_at, public_id LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg-1" || args[1] != until {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Any(t *testing.T) {
	query, args, err := Select("*").
		From("leagues").
		Where(Any("public_id", []string{"a", "b"}), Gte("season", "2025")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM leagues WHERE public_id = ANY($1) AND season >= $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	ids, ok := args[0].(pq.StringArray)
	if !ok || len(ids) != 2 {
		t.Fatalf("expected pq.StringArray arg, got %#v", args[0])
	}

	query, args, err = Select("*").From("leagues").Where(Any("public_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM leagues WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected empty-any query: %s %+v", query, args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected missing table error")
	}
}

type ratingRow struct {
	ID       int64  `db:"id" qb:"omitzero"`
	PlayerID string `db:"player_public_id"`
	Rating   int    `db:"current_rating"`
	internal string
	Ignored  string `db:"-"`
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("player_ratings", ratingRow{PlayerID: "p-1", Rating: 1512, internal: "x"}, "ON CONFLICT (player_public_id) DO UPDATE SET current_rating = EXCLUDED.current_rating")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO player_ratings (player_public_id, current_rating) VALUES ($1, $2) ON CONFLICT (player_public_id) DO UPDATE SET current_rating = EXCLUDED.current_rating"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p-1" || args[1] != 1512 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var row *ratingRow
	if _, _, err := InsertModel("t", row, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
