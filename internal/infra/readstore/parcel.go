package readstore

import (
	"context"
	"time"

	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/repository"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectParcelView = `SELECT id, reference, owner_id, version FROM parcels WHERE id = $1`

	selectActiveReservationView = `
		SELECT ` + repository.ReservationColumns + `
		FROM parcel_reservations
		WHERE parcel_id = $1 AND status = 'active' AND expires_at > $2`
)

type ParcelReadStore struct {
	db repository.DBTX
}

func NewParcelReadStore(db repository.DBTX) *ParcelReadStore {
	return &ParcelReadStore{db: db}
}

func (r *ParcelReadStore) FindParcel(ctx context.Context, id uuid.UUID) (*queries.ParcelView, error) {
	var (
		view  queries.ParcelView
		owner pgtype.UUID
	)
	err := r.db.QueryRow(ctx, selectParcelView, id).Scan(&view.ID, &view.Reference, &owner, &view.Version)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find parcel", err)
	}
	view.OwnerID = pgconv.UUIDPtrFromPgtype(owner)
	return &view, nil
}

func (r *ParcelReadStore) FindActiveReservation(ctx context.Context, parcelID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	res, err := repository.ScanReservation(r.db.QueryRow(ctx, selectActiveReservationView, parcelID, now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.ClassifyPgErr("failed to find active reservation", err)
	}
	return queries.NewReservationView(res), nil
}
