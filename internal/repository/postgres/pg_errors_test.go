package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ostrenko/cinebook/internal/repository"
)

func TestIsRetryable(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	deadlock := &pgconn.PgError{Code: "40P01"}
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsRetryable(serialization))
	assert.True(t, IsRetryable(deadlock))
	assert.False(t, IsRetryable(unique))
	assert.False(t, IsRetryable(errors.New("boom")))
	assert.False(t, IsRetryable(nil))

	// Wrapped the way RunTx and repos wrap.
	assert.True(t, IsRetryable(fmt.Errorf("commit: %w", serialization)))
}

func TestTranslateDBErr(t *testing.T) {
	assert.NoError(t, translateDBErr(nil))
	assert.ErrorIs(t, translateDBErr(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, translateDBErr(&pgconn.PgError{Code: "23505"}), repository.ErrConflict)
	assert.ErrorIs(t, translateDBErr(&pgconn.PgError{Code: "23503"}), repository.ErrConflict)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateDBErr(other))
}
