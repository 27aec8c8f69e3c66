package repository

import (
	"context"

	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"
)

const insertHistory = `
	INSERT INTO parcel_history (id, parcel_id, action, field, old_value, new_value, details, changed_by, changed_at, mutation_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type HistoryRepository struct {
	db DBTX
}

func NewHistoryRepository(db DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, e *history.Entry) error {
	_, err := r.db.Exec(ctx, insertHistory,
		e.ID(), e.ParcelID(), e.Action(), e.Field(),
		pgconv.StringPtrToPgtype(e.OldValue()), pgconv.StringPtrToPgtype(e.NewValue()),
		e.Details(), e.ChangedBy(), e.ChangedAt(), pgconv.UUIDPtrToPgtype(e.MutationID()))
	if err != nil {
		return infra.ClassifyPgErr("failed to append ownership history", err)
	}
	return nil
}
