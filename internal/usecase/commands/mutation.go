package commands

import (
	"context"
	"fmt"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/domain/parcel"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOwnerChanged = errs.WithKind(errs.ErrConflict, "Le propriétaire de la parcelle a changé depuis l'approbation")

type MutationCommands interface {
	Create(ctx context.Context, in CreateMutationInput, initiatorID uuid.UUID) (*mutation.Snapshot, error)
	Approve(ctx context.Context, mutationID, approverID uuid.UUID) (*mutation.Snapshot, error)
	Reject(ctx context.Context, mutationID, approverID uuid.UUID, reason string) (*mutation.Snapshot, error)
	Complete(ctx context.Context, mutationID, actorID uuid.UUID) (*mutation.Snapshot, error)
	Cancel(ctx context.Context, mutationID, actorID uuid.UUID, reason *string) (*mutation.Snapshot, error)
}

type mutationUseCaseImpl struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	allocator *Allocator
	clock     clock.Clock
	metrics   *metrics.Metrics
}

func NewMutationUseCase(
	uow shared.UnitOfWork,
	directory shared.ActorDirectory,
	allocator *Allocator,
	clk clock.Clock,
	m *metrics.Metrics,
) MutationCommands {
	return &mutationUseCaseImpl{
		uow:       uow,
		directory: directory,
		allocator: allocator,
		clock:     clk,
		metrics:   m,
	}
}

// Create opens a proposal; it does not check availability. The parcel lock
// serializes the one-open-mutation rule.
func (uc *mutationUseCaseImpl) Create(ctx context.Context, in CreateMutationInput, initiatorID uuid.UUID) (*mutation.Snapshot, error) {
	if _, err := resolveActor(ctx, uc.directory, initiatorID); err != nil {
		return nil, err
	}

	var snap mutation.Snapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadParcel(ctx, tx, in.ParcelID, true); err != nil {
			return err
		}

		m, err := mutation.New(mutation.NewParams{
			ParcelID:    in.ParcelID,
			Type:        mutation.Type(in.Type),
			InitiatedBy: initiatorID,
			FromOwnerID: in.FromOwnerID,
			ToOwnerID:   in.ToOwnerID,
			Price:       in.Price,
			Notes:       in.Notes,
		}, uc.clock.Now())
		if err != nil {
			return err
		}

		open, err := tx.Mutations().CountOpenByParcel(ctx, in.ParcelID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if open > 0 {
			return mutation.ErrOpenMutationExists
		}

		if err = tx.Mutations().Create(ctx, m); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return mutation.ErrOpenMutationExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncMutationTransition(string(mutation.StatusPending))
	return &snap, nil
}

func (uc *mutationUseCaseImpl) Approve(ctx context.Context, mutationID, approverID uuid.UUID) (*mutation.Snapshot, error) {
	if _, err := requireElevated(ctx, uc.directory, approverID); err != nil {
		return nil, err
	}
	return uc.transition(ctx, mutationID, func(m *mutation.Mutation) error {
		return m.Approve(approverID, uc.clock.Now())
	})
}

func (uc *mutationUseCaseImpl) Reject(ctx context.Context, mutationID, approverID uuid.UUID, reason string) (*mutation.Snapshot, error) {
	if _, err := requireElevated(ctx, uc.directory, approverID); err != nil {
		return nil, err
	}
	return uc.transition(ctx, mutationID, func(m *mutation.Mutation) error {
		return m.Reject(approverID, reason, uc.clock.Now())
	})
}

func (uc *mutationUseCaseImpl) Cancel(ctx context.Context, mutationID, actorID uuid.UUID, reason *string) (*mutation.Snapshot, error) {
	actor, err := resolveActor(ctx, uc.directory, actorID)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, mutationID, func(m *mutation.Mutation) error {
		return m.Cancel(actor, reason, uc.clock.Now())
	})
}

// Complete locks the mutation, then the parcel. The full availability check is
// replaced by a stale-state guard: the owner must still be the one the
// mutation transfers from, and only a party to the mutation may hold the
// parcel. A failed guard commits its alert and leaves the mutation approved.
func (uc *mutationUseCaseImpl) Complete(ctx context.Context, mutationID, actorID uuid.UUID) (*mutation.Snapshot, error) {
	if _, err := requireElevated(ctx, uc.directory, actorID); err != nil {
		return nil, err
	}

	var (
		snap     mutation.Snapshot
		guardErr error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guardErr = nil

		m, err := getMutationForUpdate(ctx, tx, mutationID)
		if err != nil {
			return err
		}
		if err = m.CheckCompletable(); err != nil {
			return err
		}

		p, err := loadParcel(ctx, tx, m.ParcelID(), true)
		if err != nil {
			return err
		}
		if gerr := uc.guard(ctx, tx, m, p); gerr != nil {
			parcelID := p.ID()
			uc.allocator.raise(ctx, tx, alertRequest{
				alertType:   alert.TypeConflictDetected,
				severity:    alert.SeverityMedium,
				parcelID:    &parcelID,
				triggeredBy: &actorID,
				message: fmt.Sprintf("Finalisation de la mutation %s bloquée sur la parcelle %s: %s",
					m.ID(), p.Reference(), gerr.Error()),
			})
			guardErr = gerr
			return nil
		}

		mutationRef := m.ID()
		if _, err = uc.allocator.assign(ctx, tx, assignment{
			parcel:     p,
			newOwnerID: m.ToOwnerID(),
			actorID:    actorID,
			mutationID: &mutationRef,
			details:    fmt.Sprintf("Mutation %s (%s)", m.ID(), m.Type()),
		}); err != nil {
			return err
		}

		if err = m.Complete(uc.clock.Now()); err != nil {
			return err
		}
		if err = tx.Mutations().Update(ctx, m); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if guardErr != nil {
		return nil, guardErr
	}

	uc.metrics.IncMutationTransition(string(mutation.StatusCompleted))
	return &snap, nil
}

func (uc *mutationUseCaseImpl) guard(ctx context.Context, tx shared.Tx, m *mutation.Mutation, p *parcel.Parcel) error {
	if !p.SameOwner(m.FromOwnerID()) {
		if p.IsAssigned() {
			return availability.Assigned(*p.OwnerID()).Err()
		}
		return ErrOwnerChanged
	}

	hold, err := tx.Reservations().Active(ctx, p.ID(), uc.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hold != nil && !m.IsParty(hold.ReservedBy()) {
		return availability.Reserved(hold.ReservedBy()).Err()
	}
	return nil
}

func (uc *mutationUseCaseImpl) transition(ctx context.Context, mutationID uuid.UUID, apply func(m *mutation.Mutation) error) (*mutation.Snapshot, error) {
	var snap mutation.Snapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := getMutationForUpdate(ctx, tx, mutationID)
		if err != nil {
			return err
		}
		if err = apply(m); err != nil {
			return err
		}
		if err = tx.Mutations().Update(ctx, m); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncMutationTransition(string(snap.Status))
	return &snap, nil
}

func getMutationForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*mutation.Mutation, error) {
	m, err := tx.Mutations().GetForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, mutation.ErrNotFound
		}
		if errs.Is(err, errs.ErrBusy) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return m, nil
}
