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

const (
	verificationColumns = `id, parcel_id, checked_by, check_timestamp, result, reason, conflict_details`

	listVerifications = `
		SELECT ` + verificationColumns + `
		FROM verification_logs
		ORDER BY check_timestamp DESC, id DESC
		LIMIT $1`
	listVerificationsByParcel = `
		SELECT ` + verificationColumns + `
		FROM verification_logs
		WHERE parcel_id = $2
		ORDER BY check_timestamp DESC, id DESC
		LIMIT $1`
)

type VerificationReadStore struct {
	db repository.DBTX
}

func NewVerificationReadStore(db repository.DBTX) *VerificationReadStore {
	return &VerificationReadStore{db: db}
}

func (r *VerificationReadStore) ListVerifications(ctx context.Context, parcelID *uuid.UUID, limit int) ([]*queries.VerificationLogView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if parcelID == nil {
		rows, err = r.db.Query(ctx, listVerifications, limit)
	} else {
		rows, err = r.db.Query(ctx, listVerificationsByParcel, limit, *parcelID)
	}
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list verifications", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.VerificationLogView, error) {
		var (
			v       queries.VerificationLogView
			details pgtype.Text
		)
		if err := row.Scan(&v.ID, &v.ParcelID, &v.CheckedBy, &v.CheckTimestamp, &v.Result, &v.Reason, &details); err != nil {
			return nil, err
		}
		v.CheckTimestamp = v.CheckTimestamp.UTC()
		v.ConflictDetails = pgconv.StringPtrFromPgtype(details)
		return &v, nil
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read verifications", err)
	}
	return views, nil
}
