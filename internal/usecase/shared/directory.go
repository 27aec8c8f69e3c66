package shared

import (
	"context"

	"parcel-registry/internal/domain/user"

	"github.com/google/uuid"
)

// ActorDirectory resolves an actor id to its role. Unknown actors return a
// KindNotFound repository error.
type ActorDirectory interface {
	Role(ctx context.Context, actorID uuid.UUID) (user.Role, error)
}
