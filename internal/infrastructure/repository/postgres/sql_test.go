package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("pq: relation leagues does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestIsRetryableTxError(t *testing.T) {
	t.Run("matches serialization failure", func(t *testing.T) {
		err := fmt.Errorf("upsert player rating: %w", &pq.Error{Code: "40001"})
		if !isRetryableTxError(err) {
			t.Fatalf("expected serialization failure to be retryable")
		}
	})

	t.Run("matches deadlock", func(t *testing.T) {
		if !isRetryableTxError(&pq.Error{Code: "40P01"}) {
			t.Fatalf("expected deadlock to be retryable")
		}
	})

	t.Run("ignores unique violation", func(t *testing.T) {
		if isRetryableTxError(&pq.Error{Code: "23505"}) {
			t.Fatalf("expected unique violation to be final")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isRetryableTxError(errors.New("connection reset")) {
			t.Fatalf("expected plain error to be final")
		}
	})
}
