package availability

import (
	"time"

	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotActive = errs.WithKind(errs.ErrInvalidTransition, "Réservation non active")

type ReservationStatus string

const (
	ReservationActive   ReservationStatus = "active"
	ReservationReleased ReservationStatus = "released"
	ReservationExpired  ReservationStatus = "expired"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationActive, ReservationReleased, ReservationExpired:
		return true
	default:
		return false
	}
}

// Reservation is a time-bounded exclusive hold on a parcel.
type Reservation struct {
	id         uuid.UUID
	parcelID   uuid.UUID
	reservedBy uuid.UUID
	reservedAt time.Time
	expiresAt  time.Time
	status     ReservationStatus
	purpose    *string
	updatedAt  time.Time
}

func NewReservation(parcelID, reservedBy uuid.UUID, now time.Time, ttl time.Duration, purpose *string) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		parcelID:   parcelID,
		reservedBy: reservedBy,
		reservedAt: now,
		expiresAt:  now.Add(ttl),
		status:     ReservationActive,
		purpose:    purpose,
		updatedAt:  now,
	}
}

func ReconstructReservation(id, parcelID, reservedBy uuid.UUID, reservedAt, expiresAt time.Time, status ReservationStatus, purpose *string, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		parcelID:   parcelID,
		reservedBy: reservedBy,
		reservedAt: reservedAt,
		expiresAt:  expiresAt,
		status:     status,
		purpose:    purpose,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) ParcelID() uuid.UUID       { return r.parcelID }
func (r *Reservation) ReservedBy() uuid.UUID     { return r.reservedBy }
func (r *Reservation) ReservedAt() time.Time     { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time      { return r.expiresAt }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) Purpose() *string          { return r.purpose }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }

// IsActiveAt is false once expires_at has been reached, even before the row
// has been flipped to expired.
func (r *Reservation) IsActiveAt(now time.Time) bool {
	return r.status == ReservationActive && now.Before(r.expiresAt)
}

// IsStaleAt reports an active row whose deadline has passed.
func (r *Reservation) IsStaleAt(now time.Time) bool {
	return r.status == ReservationActive && !now.Before(r.expiresAt)
}

func (r *Reservation) Release(now time.Time) error {
	if r.status != ReservationActive {
		return ErrReservationNotActive
	}
	r.status = ReservationReleased
	r.updatedAt = now
	return nil
}

func (r *Reservation) Expire(now time.Time) error {
	if r.status != ReservationActive {
		return ErrReservationNotActive
	}
	r.status = ReservationExpired
	r.updatedAt = now
	return nil
}
