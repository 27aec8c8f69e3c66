package readstore

import (
	"context"

	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/repository"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listOwnershipHistory = `
	SELECT id, parcel_id, action, field, old_value, new_value, details, changed_by, changed_at, mutation_id
	FROM parcel_history
	WHERE parcel_id = $1
	ORDER BY changed_at DESC, id DESC`

type HistoryReadStore struct {
	db repository.DBTX
}

func NewHistoryReadStore(db repository.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: db}
}

func (r *HistoryReadStore) ListOwnershipHistory(ctx context.Context, parcelID uuid.UUID) ([]*queries.OwnershipHistoryView, error) {
	rows, err := r.db.Query(ctx, listOwnershipHistory, parcelID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list ownership history", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.OwnershipHistoryView, error) {
		var (
			v                  queries.OwnershipHistoryView
			oldValue, newValue pgtype.Text
			mutationID         pgtype.UUID
		)
		err := row.Scan(&v.ID, &v.ParcelID, &v.Action, &v.Field, &oldValue, &newValue, &v.Details, &v.ChangedBy, &v.ChangedAt, &mutationID)
		if err != nil {
			return nil, err
		}
		v.OldValue = pgconv.StringPtrFromPgtype(oldValue)
		v.NewValue = pgconv.StringPtrFromPgtype(newValue)
		v.ChangedAt = v.ChangedAt.UTC()
		v.MutationID = pgconv.UUIDPtrFromPgtype(mutationID)
		return &v, nil
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read ownership history", err)
	}
	return views, nil
}
