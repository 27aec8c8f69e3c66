package directory

import (
	"context"

	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/repository"

	"github.com/google/uuid"
)

const selectActiveUserRole = `SELECT role FROM users WHERE id = $1 AND is_active = TRUE`

// PostgresDirectory resolves roles from the users table. Inactive users are
// reported as not found.
type PostgresDirectory struct {
	db repository.DBTX
}

func NewPostgresDirectory(db repository.DBTX) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) Role(ctx context.Context, actorID uuid.UUID) (user.Role, error) {
	var role string
	if err := d.db.QueryRow(ctx, selectActiveUserRole, actorID).Scan(&role); err != nil {
		return "", infra.ClassifyPgErr("failed to resolve actor role", err)
	}
	return user.Role(role), nil
}
