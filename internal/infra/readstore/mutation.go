package readstore

import (
	"context"

	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/repository"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	selectMutationView = `SELECT ` + repository.MutationColumns + ` FROM parcel_mutations WHERE id = $1`

	listMutationsByParcel = `
		SELECT ` + repository.MutationColumns + `
		FROM parcel_mutations
		WHERE parcel_id = $1
		ORDER BY created_at DESC, id DESC`
	// status is optional: NULL lists every status
	listMutations = `
		SELECT ` + repository.MutationColumns + `
		FROM parcel_mutations
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	countMutations = `SELECT COUNT(*) FROM parcel_mutations WHERE ($1::text IS NULL OR status = $1)`
)

type MutationReadStore struct {
	db repository.DBTX
}

func NewMutationReadStore(db repository.DBTX) *MutationReadStore {
	return &MutationReadStore{db: db}
}

func (r *MutationReadStore) FindMutation(ctx context.Context, id uuid.UUID) (*queries.MutationView, error) {
	s, err := repository.ScanMutation(r.db.QueryRow(ctx, selectMutationView, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find mutation", err)
	}
	return queries.NewMutationView(*s), nil
}

func (r *MutationReadStore) ListMutationsByParcel(ctx context.Context, parcelID uuid.UUID) ([]*queries.MutationView, error) {
	rows, err := r.db.Query(ctx, listMutationsByParcel, parcelID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list mutations by parcel", err)
	}
	return collectMutations(rows)
}

func (r *MutationReadStore) ListMutations(ctx context.Context, status *string, limit, offset int) ([]*queries.MutationView, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, countMutations, status).Scan(&total); err != nil {
		return nil, 0, infra.ClassifyPgErr("failed to count mutations", err)
	}

	rows, err := r.db.Query(ctx, listMutations, status, limit, offset)
	if err != nil {
		return nil, 0, infra.ClassifyPgErr("failed to list mutations", err)
	}
	views, err := collectMutations(rows)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func collectMutations(rows pgx.Rows) ([]*queries.MutationView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.MutationView, error) {
		s, err := repository.ScanMutation(row)
		if err != nil {
			return nil, err
		}
		return queries.NewMutationView(*s), nil
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read mutations", err)
	}
	return views, nil
}
