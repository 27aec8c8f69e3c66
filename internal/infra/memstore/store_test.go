//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/memstore"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/usecase/queries"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) (*memstore.Store, uuid.UUID) {
	t.Helper()
	store := memstore.New(
		memstore.WithLockTimeout(50*time.Millisecond),
		memstore.WithRetryPolicy(shared.RetryPolicy{MaxRetries: 2, Base: time.Microsecond}),
	)
	parcelID := uuid.New()
	store.SeedParcel(parcelID, "ABJ-COC-0001", nil)
	return store, parcelID
}

func TestWithin_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store, parcelID := newStore(t)
	holder := uuid.New()

	t.Run("failed work leaves no trace", func(t *testing.T) {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res := availability.NewReservation(parcelID, holder, now, 30*time.Minute, nil)
			require.NoError(t, tx.Reservations().Create(ctx, res))
			return errs.WithKind(errs.ErrInvalidInput, "boom")
		})
		require.Error(t, err)

		hold, err := store.FindActiveReservation(ctx, parcelID, now)
		require.NoError(t, err)
		assert.Nil(t, hold)
	})

	t.Run("committed work is visible to readers", func(t *testing.T) {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res := availability.NewReservation(parcelID, holder, now, 30*time.Minute, nil)
			return tx.Reservations().Create(ctx, res)
		})
		require.NoError(t, err)

		hold, err := store.FindActiveReservation(ctx, parcelID, now)
		require.NoError(t, err)
		require.NotNil(t, hold)
		assert.Equal(t, holder, hold.ReservedBy)
	})

	t.Run("a second active row is a duplicate key", func(t *testing.T) {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res := availability.NewReservation(parcelID, uuid.New(), now, 30*time.Minute, nil)
			return tx.Reservations().Create(ctx, res)
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestWithin_ReadYourWrites(t *testing.T) {
	ctx := context.Background()
	store, parcelID := newStore(t)
	owner := uuid.New()

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Parcels().GetForUpdate(ctx, parcelID)
		require.NoError(t, err)
		require.NoError(t, tx.Parcels().UpdateOwner(ctx, parcelID, &owner, p.Version()))

		again, err := tx.Parcels().Get(ctx, parcelID)
		require.NoError(t, err)
		assert.True(t, again.OwnedBy(owner))
		assert.Equal(t, p.Version()+1, again.Version())

		// still the old version outside the transaction
		view, err := store.FindParcel(ctx, parcelID)
		require.NoError(t, err)
		assert.Nil(t, view.OwnerID)
		return nil
	})
	require.NoError(t, err)

	view, err := store.FindParcel(ctx, parcelID)
	require.NoError(t, err)
	require.NotNil(t, view.OwnerID)
	assert.Equal(t, owner, *view.OwnerID)
}

func TestSavepoint(t *testing.T) {
	ctx := context.Background()
	store, parcelID := newStore(t)
	actor := uuid.New()

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		kept, _ := alert.NewAlert(alert.TypeConflictDetected, alert.SeverityLow, &parcelID, &actor, "kept", now)
		dropped, _ := alert.NewAlert(alert.TypeConflictDetected, alert.SeverityLow, &parcelID, &actor, "dropped", now)

		require.NoError(t, tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
			return sp.Alerts().Create(ctx, kept)
		}))
		spErr := tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
			require.NoError(t, sp.Alerts().Create(ctx, dropped))
			return errs.New("insert failed")
		})
		require.Error(t, spErr)
		return nil
	})
	require.NoError(t, err)

	alerts, err := store.ListAlerts(ctx, queries.AlertFilter{}, nil, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "kept", alerts[0].Message)
}

func TestLocking(t *testing.T) {
	ctx := context.Background()
	store, parcelID := newStore(t)

	t.Run("re-locking inside the same transaction does not block", func(t *testing.T) {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Parcels().GetForUpdate(ctx, parcelID); err != nil {
				return err
			}
			_, err := tx.Parcels().GetForUpdate(ctx, parcelID)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("waiting past the lock timeout is busy", func(t *testing.T) {
		locked := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			done <- store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if _, err := tx.Parcels().GetForUpdate(ctx, parcelID); err != nil {
					return err
				}
				close(locked)
				<-release
				return nil
			})
		}()
		<-locked

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Parcels().GetForUpdate(ctx, parcelID)
			return err
		})
		close(release)

		assert.True(t, errs.Is(err, errs.ErrBusy))
		require.NoError(t, <-done)
	})
}

func TestWithin_VersionConflictRetries(t *testing.T) {
	ctx := context.Background()
	store, parcelID := newStore(t)

	attempts := 0
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attempts++
		owner := uuid.New()
		return tx.Parcels().UpdateOwner(ctx, parcelID, &owner, 999)
	})

	assert.Equal(t, 3, attempts)
	assert.True(t, errs.Is(err, errs.ErrConflict))
}

func TestRole(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	active, inactive := uuid.New(), uuid.New()
	store.SeedUser(active, user.RoleManager, true)
	store.SeedUser(inactive, user.RoleAdministrator, false)

	role, err := store.Role(ctx, active)
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, role)

	_, err = store.Role(ctx, inactive)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.Role(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
