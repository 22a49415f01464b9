package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/approval/internal/entity"
)

// queryTimeout bounds every store round trip so a stuck connection surfaces
// as a retryable error instead of hanging the request.
const queryTimeout = 3 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// mapErr converts driver-level failures to domain sentinels: missing rows
// to ErrNotFound, timeouts and connectivity failures to ErrUnavailable so
// the API can tell callers the request is retryable.
func mapErr(err error) error {
	var pgErr *pgconn.PgError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return entity.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", entity.ErrUnavailable, err)
	// SQLSTATE class 08 is connection exceptions, class 57 is operator
	// intervention (shutdown, crash, cannot-connect-now).
	case errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57")):
		return fmt.Errorf("%w: %s", entity.ErrUnavailable, err)
	case pgconn.SafeToRetry(err):
		return fmt.Errorf("%w: %s", entity.ErrUnavailable, err)
	default:
		return err
	}
}
