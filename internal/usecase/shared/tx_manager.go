package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"parcel-registry/internal/pkg/errs"
)

var (
	ErrTransactionBegin    = errs.New("failed to begin transaction")
	ErrTransactionCommit   = errs.New("failed to commit transaction")
	ErrTransactionRollback = errs.New("failed to rollback transaction")
	ErrMaxRetriesExceeded  = errs.New("transaction failed after max retries")

	// ErrVersionConflict is returned by owner writes whose compare-and-swap
	// lost; units of work retry on it.
	ErrVersionConflict = errs.New("parcel version changed")

	ErrConcurrentUpdate = errs.WithKind(errs.ErrConflict, "Modification concurrente, veuillez réessayer")
	ErrLockTimeout      = errs.WithKind(errs.ErrBusy, "Ressource occupée, veuillez réessayer")
)

type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}
}

// Run calls attempt until it succeeds, fails with a non-retryable error, or
// the retry budget is spent. Exhaustion surfaces as ErrConcurrentUpdate.
func (p RetryPolicy) Run(ctx context.Context, retryable func(error) bool, attempt func() error) error {
	for n := 0; ; n++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if n >= p.MaxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", n+1,
				"error", err.Error())
			return errs.Mark(ErrConcurrentUpdate, ErrMaxRetriesExceeded)
		}

		waitTime := p.backoff(n)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", n+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	waitTime := time.Duration(1<<attempt) * p.Base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the sign bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked above
	return int64(uval) % n
}

// Outcome labels a finished unit of work for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errs.Is(err, errs.ErrBusy):
		return "busy"
	case errs.Is(err, ErrMaxRetriesExceeded):
		return "retries_exhausted"
	default:
		return "rolled_back"
	}
}
