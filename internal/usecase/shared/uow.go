package shared

import (
	"context"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/domain/parcel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once; it must not leak state between attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Parcels() ParcelRepository
	Reservations() ReservationRepository
	Verifications() VerificationLogRepository
	Alerts() AlertRepository
	Mutations() MutationRepository
	History() HistoryRepository
	// Savepoint runs fn so that its failure discards only its own writes.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// ParcelRepository is the parcel port: a transactional {owner_id, version}
// slot keyed by parcel id.
type ParcelRepository interface {
	// Get reads without locking. Returns a KindNotFound repository error for
	// unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*parcel.Parcel, error)
	// GetForUpdate locks the parcel until the unit of work ends. A lock wait
	// past the configured timeout returns ErrLockTimeout.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*parcel.Parcel, error)
	// UpdateOwner writes owner_id when version still equals expectedVersion
	// and bumps it; a mismatch returns ErrVersionConflict.
	UpdateOwner(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, expectedVersion int64) error
}

type ReservationRepository interface {
	// Active returns the parcel's active, non-expired hold or nil.
	Active(ctx context.Context, parcelID uuid.UUID, now time.Time) (*availability.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*availability.Reservation, error)
	Create(ctx context.Context, r *availability.Reservation) error
	UpdateStatus(ctx context.Context, r *availability.Reservation) error
	// ExpireStale flips the parcel's active rows whose deadline passed and
	// returns them.
	ExpireStale(ctx context.Context, parcelID uuid.UUID, now time.Time) ([]*availability.Reservation, error)
	// StaleParcelIDs lists parcels holding an active row past its deadline.
	StaleParcelIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type VerificationLogRepository interface {
	Append(ctx context.Context, e *availability.VerificationLogEntry) error
}

type AlertRepository interface {
	Create(ctx context.Context, a *alert.Alert) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*alert.Alert, error)
	Acknowledge(ctx context.Context, a *alert.Alert) error
}

type MutationRepository interface {
	Create(ctx context.Context, m *mutation.Mutation) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*mutation.Mutation, error)
	Update(ctx context.Context, m *mutation.Mutation) error
	CountOpenByParcel(ctx context.Context, parcelID uuid.UUID) (int, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, e *history.Entry) error
}
