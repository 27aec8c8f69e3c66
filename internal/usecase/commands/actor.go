package commands

import (
	"context"

	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrActorUnknown            = errs.WithKind(errs.ErrPermissionDenied, "Utilisateur inconnu ou inactif")
	ErrElevatedRoleRequired    = errs.WithKind(errs.ErrPermissionDenied, "Rôle administrateur ou gestionnaire requis")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

func resolveActor(ctx context.Context, dir shared.ActorDirectory, actorID uuid.UUID) (user.Actor, error) {
	role, err := dir.Role(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.Actor{}, ErrActorUnknown
		}
		return user.Actor{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return user.NewActor(actorID, role), nil
}

func requireElevated(ctx context.Context, dir shared.ActorDirectory, actorID uuid.UUID) (user.Actor, error) {
	actor, err := resolveActor(ctx, dir, actorID)
	if err != nil {
		return user.Actor{}, err
	}
	if !actor.IsElevated() {
		return user.Actor{}, ErrElevatedRoleRequired
	}
	return actor, nil
}
