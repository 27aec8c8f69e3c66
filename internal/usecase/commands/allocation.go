package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/parcel"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrParcelNotFound = errs.WithKind(errs.ErrNotFound, availability.ReasonNotFound.Message())

// Allocator holds the in-transaction steps every parcel write path shares:
// the availability check, alert raising, stale hold expiry and the owner
// write. It never opens a transaction itself.
type Allocator struct {
	clock         clock.Clock
	metrics       *metrics.Metrics
	alertAttempts int
}

func NewAllocator(clk clock.Clock, m *metrics.Metrics, alertAttempts int) *Allocator {
	if alertAttempts < 1 {
		alertAttempts = 1
	}
	return &Allocator{clock: clk, metrics: m, alertAttempts: alertAttempts}
}

// check evaluates the parcel and appends exactly one verification log entry.
// With lock set the parcel row stays locked until the transaction ends. The
// returned parcel is nil for a not_found verdict.
func (a *Allocator) check(ctx context.Context, tx shared.Tx, parcelID, actorID uuid.UUID, lock bool) (availability.Verdict, *parcel.Parcel, error) {
	now := a.clock.Now()

	p, err := loadParcel(ctx, tx, parcelID, lock)
	if err != nil && !errs.Is(err, ErrParcelNotFound) {
		return availability.Verdict{}, nil, err
	}

	var verdict availability.Verdict
	switch {
	case p == nil:
		verdict = availability.NotFound()
	case p.IsAssigned():
		verdict = availability.Assigned(*p.OwnerID())
		a.raise(ctx, tx, alertRequest{
			alertType:   alert.TypeDoubleAttributionAttempt,
			severity:    alert.SeverityHigh,
			parcelID:    &parcelID,
			triggeredBy: &actorID,
			message: fmt.Sprintf("Tentative d'attribution de la parcelle %s déjà attribuée (propriétaire: %s)",
				p.Reference(), availability.Redact(*p.OwnerID())),
		})
	default:
		hold, herr := tx.Reservations().Active(ctx, parcelID, now)
		if herr != nil {
			return availability.Verdict{}, nil, errs.Mark(herr, ErrDatabaseOperationFailed)
		}
		if hold != nil {
			verdict = availability.Reserved(hold.ReservedBy())
		} else {
			verdict = availability.Available()
		}
	}

	entry := availability.NewVerificationLogEntry(parcelID, actorID, verdict, now)
	if err := tx.Verifications().Append(ctx, entry); err != nil {
		return availability.Verdict{}, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	a.metrics.IncVerdict(string(verdict.Reason()))

	return verdict, p, nil
}

type assignment struct {
	parcel     *parcel.Parcel
	newOwnerID *uuid.UUID
	actorID    uuid.UUID
	mutationID *uuid.UUID
	details    string
}

// assign writes the owner with a version compare-and-swap, records the change
// and releases the parcel's hold. The parcel must be locked by the caller.
func (a *Allocator) assign(ctx context.Context, tx shared.Tx, in assignment) (*AssignResult, error) {
	now := a.clock.Now()
	p := in.parcel

	if err := tx.Parcels().UpdateOwner(ctx, p.ID(), in.newOwnerID, p.Version()); err != nil {
		if errs.Is(err, shared.ErrVersionConflict) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entry := history.NewOwnerChange(p.ID(), p.OwnerID(), in.newOwnerID, in.actorID, in.mutationID, in.details, now)
	if err := tx.History().Append(ctx, entry); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &AssignResult{
		ParcelID:        p.ID(),
		PreviousOwnerID: p.OwnerID(),
		NewOwnerID:      in.newOwnerID,
		HistoryID:       entry.ID(),
	}

	if _, err := a.expireStale(ctx, tx, p.ID()); err != nil {
		return nil, err
	}
	hold, err := tx.Reservations().Active(ctx, p.ID(), now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hold != nil {
		if err := hold.Release(now); err != nil {
			return nil, err
		}
		if err := tx.Reservations().UpdateStatus(ctx, hold); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id := hold.ID()
		result.ReleasedReservationID = &id
		a.metrics.IncReservation(string(availability.ReservationReleased))
	}

	return result, nil
}

// expireStale flips the parcel's overdue holds and raises one low alert per
// hold. The parcel must be locked by the caller.
func (a *Allocator) expireStale(ctx context.Context, tx shared.Tx, parcelID uuid.UUID) (int, error) {
	expired, err := tx.Reservations().ExpireStale(ctx, parcelID, a.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, r := range expired {
		a.metrics.IncReservation(string(availability.ReservationExpired))
		holder := r.ReservedBy()
		a.raise(ctx, tx, alertRequest{
			alertType:   alert.TypeReservationExpired,
			severity:    alert.SeverityLow,
			parcelID:    &parcelID,
			triggeredBy: &holder,
			message: fmt.Sprintf("Réservation %s expirée le %s (détenteur: %s)",
				r.ID(), r.ExpiresAt().Format(time.RFC3339), availability.Redact(holder)),
		})
	}
	return len(expired), nil
}

type alertRequest struct {
	alertType   alert.Type
	severity    alert.Severity
	parcelID    *uuid.UUID
	triggeredBy *uuid.UUID
	message     string
}

// raise writes the alert inside a savepoint so a failed insert never takes the
// surrounding check down with it. After the last attempt the alert is dropped
// and logged.
func (a *Allocator) raise(ctx context.Context, tx shared.Tx, req alertRequest) {
	al, err := alert.NewAlert(req.alertType, req.severity, req.parcelID, req.triggeredBy, req.message, a.clock.Now())
	if err != nil {
		slog.Error("alert dropped: invalid alert",
			"type", string(req.alertType),
			"severity", string(req.severity),
			"error", err.Error())
		a.metrics.IncAlertDropped()
		return
	}

	for attempt := 1; attempt <= a.alertAttempts; attempt++ {
		err = tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
			return sp.Alerts().Create(ctx, al)
		})
		if err == nil {
			a.metrics.IncAlert(string(al.Type()), string(al.Severity()))
			return
		}
		if attempt < a.alertAttempts {
			slog.Warn("alert write failed, retrying",
				"attempt", attempt,
				"alert_id", al.ID().String(),
				"error", err.Error())
		}
	}

	slog.Error("alert dropped after retries",
		"attempts", a.alertAttempts,
		"alert_id", al.ID().String(),
		"type", string(al.Type()),
		"severity", string(al.Severity()),
		"error", err.Error())
	a.metrics.IncAlertDropped()
}

func loadParcel(ctx context.Context, tx shared.Tx, parcelID uuid.UUID, lock bool) (*parcel.Parcel, error) {
	var (
		p   *parcel.Parcel
		err error
	)
	if lock {
		p, err = tx.Parcels().GetForUpdate(ctx, parcelID)
	} else {
		p, err = tx.Parcels().Get(ctx, parcelID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrParcelNotFound
		}
		if errs.Is(err, errs.ErrBusy) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return p, nil
}
