package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common transaction functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
	// AcquireTimeout bounds how long Begin may wait for a pooled connection.
	AcquireTimeout time.Duration
}

// Begin starts a new database transaction. Connection acquisition is bounded
// by AcquireTimeout; hitting the bound surfaces apperrors.ErrPoolTimeout so
// callers can log pool exhaustion distinctly from other write failures.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	acquireCtx := ctx
	if r.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, r.AcquireTimeout)
		defer cancel()
	}
	tx, err := r.Pool.Begin(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, apperrors.NewAppError(500, "failed to acquire connection within bound", apperrors.ErrPoolTimeout)
		}
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. A no-op when the transaction already
// committed, so it is safe to defer on every path.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}
