package queries

import (
	"context"
	"time"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/parcel"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrParcelNotFound = errs.WithKind(errs.ErrNotFound, availability.ReasonNotFound.Message())

type AvailabilityQueries interface {
	GetVerificationHistory(ctx context.Context, parcelID *uuid.UUID, limit int) ([]*VerificationLogView, error)
	GetParcelStatus(ctx context.Context, parcelID uuid.UUID) (*ParcelStatusView, error)
}

type ParcelReadStore interface {
	FindParcel(ctx context.Context, id uuid.UUID) (*ParcelView, error)
	// FindActiveReservation ignores holds whose deadline passed even when the
	// row is still marked active.
	FindActiveReservation(ctx context.Context, parcelID uuid.UUID, now time.Time) (*ReservationView, error)
}

type VerificationReadStore interface {
	ListVerifications(ctx context.Context, parcelID *uuid.UUID, limit int) ([]*VerificationLogView, error)
}

// HistoryLimits bounds GetVerificationHistory.
type HistoryLimits struct {
	Default int
	Max     int
}

type availabilityQueriesImpl struct {
	parcels       ParcelReadStore
	verifications VerificationReadStore
	limits        HistoryLimits
	clock         clock.Clock
}

func NewAvailabilityQueries(parcels ParcelReadStore, verifications VerificationReadStore, limits HistoryLimits, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		parcels:       parcels,
		verifications: verifications,
		limits:        limits,
		clock:         clk,
	}
}

// GetVerificationHistory is newest first across all parcels when parcelID is
// nil.
func (q *availabilityQueriesImpl) GetVerificationHistory(ctx context.Context, parcelID *uuid.UUID, limit int) ([]*VerificationLogView, error) {
	return q.verifications.ListVerifications(ctx, parcelID, q.clampLimit(limit))
}

func (q *availabilityQueriesImpl) GetParcelStatus(ctx context.Context, parcelID uuid.UUID) (*ParcelStatusView, error) {
	p, err := q.parcels.FindParcel(ctx, parcelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	view := &ParcelStatusView{
		ParcelID:  p.ID,
		Reference: p.Reference,
		OwnerID:   p.OwnerID,
		Status:    string(parcel.StatusAvailable),
	}

	hold, err := q.parcels.FindActiveReservation(ctx, parcelID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	view.ActiveReservation = hold

	switch {
	case p.OwnerID != nil:
		view.Status = string(parcel.StatusAssigned)
	case hold != nil:
		view.Status = string(parcel.StatusReserved)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) clampLimit(limit int) int {
	if limit <= 0 {
		return q.limits.Default
	}
	if limit > q.limits.Max {
		return q.limits.Max
	}
	return limit
}
