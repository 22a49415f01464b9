package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/approval/internal/entity"
)

func TestMapErr(t *testing.T) {
	t.Parallel()

	require.NoError(t, mapErr(nil))

	require.ErrorIs(t, mapErr(pgx.ErrNoRows), entity.ErrNotFound)

	require.ErrorIs(t, mapErr(context.DeadlineExceeded), entity.ErrUnavailable)
	require.ErrorIs(t, mapErr(fmt.Errorf("query: %w", context.DeadlineExceeded)), entity.ErrUnavailable)

	// Operator intervention (class 57: shutdown, crash, cannot connect now)
	// and connection exceptions (class 08) are retryable.
	require.ErrorIs(t, mapErr(&pgconn.PgError{Code: "57P01"}), entity.ErrUnavailable)
	require.ErrorIs(t, mapErr(&pgconn.PgError{Code: "08006"}), entity.ErrUnavailable)

	// Integrity violations are the caller's problem, not a retry case.
	unique := &pgconn.PgError{Code: "23505"}
	err := mapErr(unique)
	require.False(t, errors.Is(err, entity.ErrUnavailable))
	require.ErrorIs(t, err, unique)
}
