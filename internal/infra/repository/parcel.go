package repository

import (
	"context"

	"parcel-registry/internal/domain/parcel"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectParcel          = `SELECT id, reference, owner_id, version FROM parcels WHERE id = $1`
	selectParcelForUpdate = selectParcel + ` FOR UPDATE`
	updateParcelOwner     = `
		UPDATE parcels
		SET owner_id = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $3`
)

type ParcelRepository struct {
	db DBTX
}

func NewParcelRepository(db DBTX) *ParcelRepository {
	return &ParcelRepository{db: db}
}

func (r *ParcelRepository) Get(ctx context.Context, id uuid.UUID) (*parcel.Parcel, error) {
	p, err := scanParcel(r.db.QueryRow(ctx, selectParcel, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to get parcel", err)
	}
	return p, nil
}

// GetForUpdate relies on the transaction's lock_timeout to bound the wait.
func (r *ParcelRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*parcel.Parcel, error) {
	p, err := scanParcel(r.db.QueryRow(ctx, selectParcelForUpdate, id))
	if err != nil {
		if pgconv.Code(err) == pgconv.CodeLockNotAvailable {
			return nil, shared.ErrLockTimeout
		}
		return nil, infra.ClassifyPgErr("failed to lock parcel", err)
	}
	return p, nil
}

func (r *ParcelRepository) UpdateOwner(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, updateParcelOwner, id, pgconv.UUIDPtrToPgtype(ownerID), expectedVersion)
	if err != nil {
		return infra.ClassifyPgErr("failed to update parcel owner", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrVersionConflict
	}
	return nil
}

func scanParcel(row pgx.Row) (*parcel.Parcel, error) {
	var (
		id        uuid.UUID
		reference string
		owner     pgtype.UUID
		version   int64
	)
	if err := row.Scan(&id, &reference, &owner, &version); err != nil {
		return nil, err
	}
	return parcel.Reconstruct(id, reference, pgconv.UUIDPtrFromPgtype(owner), version), nil
}
