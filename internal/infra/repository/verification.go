package repository

import (
	"context"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"
)

const insertVerification = `
	INSERT INTO verification_logs (id, parcel_id, checked_by, check_timestamp, result, reason, conflict_details)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// VerificationLogRepository is insert-only.
type VerificationLogRepository struct {
	db DBTX
}

func NewVerificationLogRepository(db DBTX) *VerificationLogRepository {
	return &VerificationLogRepository{db: db}
}

func (r *VerificationLogRepository) Append(ctx context.Context, e *availability.VerificationLogEntry) error {
	_, err := r.db.Exec(ctx, insertVerification,
		e.ID(), e.ParcelID(), e.CheckedBy(), e.CheckedAt(),
		string(e.Result()), string(e.Reason()), pgconv.StringPtrToPgtype(e.ConflictDetails()))
	if err != nil {
		return infra.ClassifyPgErr("failed to append verification log", err)
	}
	return nil
}
