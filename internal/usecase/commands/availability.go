package commands

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxPurposeLength = 500
	sweepBatchSize   = 500
)

var (
	ErrReservationNotFound = errs.WithKind(errs.ErrNotFound, "Réservation non trouvée")
	ErrReleaseNotAllowed   = errs.WithKind(errs.ErrPermissionDenied, "Seul le détenteur ou un responsable peut libérer la réservation")
	ErrPurposeTooLong      = errs.WithKind(errs.ErrInvalidInput, "Motif de réservation trop long (500 caractères maximum)")
)

type AvailabilityCommands interface {
	CheckAvailability(ctx context.Context, parcelID, actorID uuid.UUID) (availability.Verdict, error)
	Reserve(ctx context.Context, in ReserveInput, actorID uuid.UUID) (*ReserveResult, error)
	ReleaseReservation(ctx context.Context, reservationID, actorID uuid.UUID) error
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type availabilityUseCaseImpl struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	allocator *Allocator
	ttl       availability.TTLPolicy
	clock     clock.Clock
	metrics   *metrics.Metrics
}

func NewAvailabilityUseCase(
	uow shared.UnitOfWork,
	directory shared.ActorDirectory,
	allocator *Allocator,
	ttl availability.TTLPolicy,
	clk clock.Clock,
	m *metrics.Metrics,
) AvailabilityCommands {
	return &availabilityUseCaseImpl{
		uow:       uow,
		directory: directory,
		allocator: allocator,
		ttl:       ttl,
		clock:     clk,
		metrics:   m,
	}
}

// CheckAvailability never takes the parcel lock: its only writes are the log
// entry and, for an assigned parcel, one alert.
func (uc *availabilityUseCaseImpl) CheckAvailability(ctx context.Context, parcelID, actorID uuid.UUID) (availability.Verdict, error) {
	var verdict availability.Verdict
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, _, cerr := uc.allocator.check(ctx, tx, parcelID, actorID, false)
		if cerr != nil {
			return cerr
		}
		verdict = v
		return nil
	})
	if err != nil {
		return availability.Verdict{}, err
	}
	return verdict, nil
}

func (uc *availabilityUseCaseImpl) Reserve(ctx context.Context, in ReserveInput, actorID uuid.UUID) (*ReserveResult, error) {
	if _, err := requireElevated(ctx, uc.directory, actorID); err != nil {
		return nil, err
	}
	ttl, err := uc.ttl.Resolve(in.TTL)
	if err != nil {
		return nil, err
	}
	purpose, err := normalizePurpose(in.Purpose)
	if err != nil {
		return nil, err
	}

	var (
		result     *ReserveResult
		verdictErr error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, verdictErr = nil, nil

		verdict, _, cerr := uc.allocator.check(ctx, tx, in.ParcelID, actorID, true)
		if cerr != nil {
			return cerr
		}
		if !verdict.IsAvailable() {
			// the log entry and any alert still commit
			verdictErr = verdict.Err()
			return nil
		}

		if _, cerr = uc.allocator.expireStale(ctx, tx, in.ParcelID); cerr != nil {
			return cerr
		}

		hold := availability.NewReservation(in.ParcelID, actorID, uc.clock.Now(), ttl, purpose)
		if cerr = tx.Reservations().Create(ctx, hold); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return availability.ErrReserved
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}

		result = &ReserveResult{
			ReservationID: hold.ID(),
			ParcelID:      hold.ParcelID(),
			ExpiresAt:     hold.ExpiresAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if verdictErr != nil {
		uc.metrics.IncReservation("rejected")
		return nil, verdictErr
	}

	uc.metrics.IncReservation("created")
	return result, nil
}

func (uc *availabilityUseCaseImpl) ReleaseReservation(ctx context.Context, reservationID, actorID uuid.UUID) error {
	actor, err := resolveActor(ctx, uc.directory, actorID)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hold, rerr := getReservation(ctx, tx, reservationID)
		if rerr != nil {
			return rerr
		}
		if hold.ReservedBy() != actor.ID() && !actor.IsElevated() {
			return ErrReleaseNotAllowed
		}

		// all reservation writes happen under the parcel lock; re-read after
		// taking it
		if _, rerr = loadParcel(ctx, tx, hold.ParcelID(), true); rerr != nil {
			return rerr
		}
		if hold, rerr = getReservation(ctx, tx, reservationID); rerr != nil {
			return rerr
		}

		now := uc.clock.Now()
		if hold.IsStaleAt(now) {
			return availability.ErrReservationNotActive
		}
		if rerr = hold.Release(now); rerr != nil {
			return rerr
		}
		if rerr = tx.Reservations().UpdateStatus(ctx, hold); rerr != nil {
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.metrics.IncReservation(string(availability.ReservationReleased))
	return nil
}

// SweepExpired expires overdue holds one parcel per transaction so a busy
// parcel never stalls the whole sweep.
func (uc *availabilityUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	var parcelIDs []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, lerr := tx.Reservations().StaleParcelIDs(ctx, uc.clock.Now(), sweepBatchSize)
		if lerr != nil {
			return errs.Mark(lerr, ErrDatabaseOperationFailed)
		}
		parcelIDs = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SweepResult{}
	for _, parcelID := range parcelIDs {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		var expired int
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, lerr := loadParcel(ctx, tx, parcelID, true); lerr != nil {
				return lerr
			}
			n, lerr := uc.allocator.expireStale(ctx, tx, parcelID)
			expired = n
			return lerr
		})
		if err != nil {
			slog.Warn("sweep skipped parcel",
				"parcel_id", parcelID.String(),
				"error", err.Error())
			continue
		}
		if expired > 0 {
			result.Parcels++
			result.Expired += expired
		}
	}

	return result, nil
}

func getReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*availability.Reservation, error) {
	hold, err := tx.Reservations().GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return hold, nil
}

func normalizePurpose(purpose *string) (*string, error) {
	if purpose == nil {
		return nil, nil
	}
	p := strings.TrimSpace(*purpose)
	if p == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(p) > maxPurposeLength {
		return nil, ErrPurposeTooLong
	}
	return &p, nil
}
