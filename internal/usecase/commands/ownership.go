package commands

import (
	"context"

	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type OwnershipCommands interface {
	AssignOwner(ctx context.Context, in AssignOwnerInput, actorID uuid.UUID) (*AssignResult, error)
}

type ownershipUseCaseImpl struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	allocator *Allocator
	metrics   *metrics.Metrics
}

func NewOwnershipUseCase(uow shared.UnitOfWork, directory shared.ActorDirectory, allocator *Allocator, m *metrics.Metrics) OwnershipCommands {
	return &ownershipUseCaseImpl{
		uow:       uow,
		directory: directory,
		allocator: allocator,
		metrics:   m,
	}
}

// AssignOwner is the direct assignment path: a fresh availability check under
// the parcel lock, then the owner write. Mutation completion goes through
// MutationCommands.Complete instead.
func (uc *ownershipUseCaseImpl) AssignOwner(ctx context.Context, in AssignOwnerInput, actorID uuid.UUID) (*AssignResult, error) {
	if _, err := requireElevated(ctx, uc.directory, actorID); err != nil {
		return nil, err
	}

	var (
		result     *AssignResult
		verdictErr error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, verdictErr = nil, nil

		verdict, p, cerr := uc.allocator.check(ctx, tx, in.ParcelID, actorID, true)
		if cerr != nil {
			return cerr
		}
		if !verdict.IsAvailable() {
			verdictErr = verdict.Err()
			return nil
		}

		newOwner := in.NewOwnerID
		res, aerr := uc.allocator.assign(ctx, tx, assignment{
			parcel:     p,
			newOwnerID: &newOwner,
			actorID:    actorID,
			details:    "Attribution directe",
		})
		if aerr != nil {
			return aerr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	if verdictErr != nil {
		return nil, verdictErr
	}
	return result, nil
}
