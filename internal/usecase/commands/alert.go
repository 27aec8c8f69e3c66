package commands

import (
	"context"

	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errs.WithKind(errs.ErrNotFound, "Alerte non trouvée")

type AlertCommands interface {
	Acknowledge(ctx context.Context, alertID, actorID uuid.UUID) error
}

type alertUseCaseImpl struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	clock     clock.Clock
}

func NewAlertUseCase(uow shared.UnitOfWork, directory shared.ActorDirectory, clk clock.Clock) AlertCommands {
	return &alertUseCaseImpl{uow: uow, directory: directory, clock: clk}
}

func (uc *alertUseCaseImpl) Acknowledge(ctx context.Context, alertID, actorID uuid.UUID) error {
	if _, err := requireElevated(ctx, uc.directory, actorID); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Alerts().GetForUpdate(ctx, alertID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAlertNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err = a.Acknowledge(actorID, uc.clock.Now()); err != nil {
			return err
		}
		if err = tx.Alerts().Acknowledge(ctx, a); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
