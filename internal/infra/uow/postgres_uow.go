package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parcel-registry/internal/infra/repository"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
	retry       shared.RetryPolicy
	metrics     *metrics.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, lockTimeout time.Duration, retry shared.RetryPolicy, m *metrics.Metrics) *PostgresUoW {
	return &PostgresUoW{
		pool:        pool,
		lockTimeout: lockTimeout,
		retry:       retry,
		metrics:     m,
	}
}

// Within runs fn in a ReadCommitted transaction. Row locks are bounded by
// lock_timeout; serialization failures, deadlocks and lost version
// compare-and-swaps are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	start := time.Now()
	err := u.retry.Run(ctx, isRetryableError, func() error {
		return u.runOnce(ctx, fn)
	})
	u.metrics.ObserveTx(shared.Outcome(err), time.Since(start))
	return err
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	err = u.setLockTimeout(ctx, pgxTx)
	if err == nil {
		err = fn(ctx, &pgTx{tx: pgxTx})
	}
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, shared.ErrTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", errs.Mark(rollbackErr, shared.ErrTransactionRollback).Error())
		}
	}
	return err
}

func (u *PostgresUoW) setLockTimeout(ctx context.Context, tx pgx.Tx) error {
	if u.lockTimeout <= 0 {
		return nil
	}
	_, err := tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", fmt.Sprintf("%dms", u.lockTimeout.Milliseconds()))
	if err != nil {
		return errs.Wrap(err, "failed to set lock_timeout")
	}
	return nil
}

func isRetryableError(err error) bool {
	if errs.Is(err, shared.ErrVersionConflict) {
		return true
	}
	switch pgconv.Code(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	tx pgx.Tx

	// Lazy-initialized repositories
	parcelRepo       shared.ParcelRepository
	reservationRepo  shared.ReservationRepository
	verificationRepo shared.VerificationLogRepository
	alertRepo        shared.AlertRepository
	mutationRepo     shared.MutationRepository
	historyRepo      shared.HistoryRepository
}

func (t *pgTx) Parcels() shared.ParcelRepository {
	if t.parcelRepo == nil {
		t.parcelRepo = repository.NewParcelRepository(t.tx)
	}
	return t.parcelRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.tx)
	}
	return t.reservationRepo
}

func (t *pgTx) Verifications() shared.VerificationLogRepository {
	if t.verificationRepo == nil {
		t.verificationRepo = repository.NewVerificationLogRepository(t.tx)
	}
	return t.verificationRepo
}

func (t *pgTx) Alerts() shared.AlertRepository {
	if t.alertRepo == nil {
		t.alertRepo = repository.NewAlertRepository(t.tx)
	}
	return t.alertRepo
}

func (t *pgTx) Mutations() shared.MutationRepository {
	if t.mutationRepo == nil {
		t.mutationRepo = repository.NewMutationRepository(t.tx)
	}
	return t.mutationRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.tx)
	}
	return t.historyRepo
}

// Savepoint uses pgx's nested transaction, which issues SAVEPOINT and
// ROLLBACK TO SAVEPOINT, so a failed statement inside fn leaves the outer
// transaction usable.
func (t *pgTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}
	if err = fn(ctx, &pgTx{tx: sp}); err != nil {
		if rollbackErr := sp.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("savepoint rollback failed", "error", rollbackErr.Error())
		}
		return err
	}
	if err = sp.Commit(ctx); err != nil {
		return errs.Mark(err, shared.ErrTransactionCommit)
	}
	return nil
}
