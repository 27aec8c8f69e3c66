package repository

import (
	"context"
	"time"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	ReservationColumns = `id, parcel_id, reserved_by, reserved_at, expires_at, status, purpose, updated_at`

	selectActiveReservation = `
		SELECT ` + ReservationColumns + `
		FROM parcel_reservations
		WHERE parcel_id = $1 AND status = 'active' AND expires_at > $2`
	selectReservationByID = `SELECT ` + ReservationColumns + ` FROM parcel_reservations WHERE id = $1`
	insertReservation     = `
		INSERT INTO parcel_reservations (` + ReservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	updateReservationStatus = `UPDATE parcel_reservations SET status = $2, updated_at = $3 WHERE id = $1`
	expireStaleReservations = `
		UPDATE parcel_reservations
		SET status = 'expired', updated_at = $2
		WHERE parcel_id = $1 AND status = 'active' AND expires_at <= $2
		RETURNING ` + ReservationColumns
	selectStaleParcelIDs = `
		SELECT DISTINCT parcel_id
		FROM parcel_reservations
		WHERE status = 'active' AND expires_at <= $1
		LIMIT $2`
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Active(ctx context.Context, parcelID uuid.UUID, now time.Time) (*availability.Reservation, error) {
	res, err := ScanReservation(r.db.QueryRow(ctx, selectActiveReservation, parcelID, now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.ClassifyPgErr("failed to get active reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*availability.Reservation, error) {
	res, err := ScanReservation(r.db.QueryRow(ctx, selectReservationByID, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to get reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *availability.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservation,
		res.ID(), res.ParcelID(), res.ReservedBy(), res.ReservedAt(), res.ExpiresAt(),
		string(res.Status()), pgconv.StringPtrToPgtype(res.Purpose()), res.UpdatedAt())
	if err != nil {
		return infra.ClassifyPgErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *availability.Reservation) error {
	tag, err := r.db.Exec(ctx, updateReservationStatus, res.ID(), string(res.Status()), res.UpdatedAt())
	if err != nil {
		return infra.ClassifyPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func (r *ReservationRepository) ExpireStale(ctx context.Context, parcelID uuid.UUID, now time.Time) ([]*availability.Reservation, error) {
	rows, err := r.db.Query(ctx, expireStaleReservations, parcelID, now)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to expire stale reservations", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*availability.Reservation, error) {
		return ScanReservation(row)
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read expired reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) StaleParcelIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectStaleParcelIDs, now, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list stale reservations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read stale parcel ids", err)
	}
	return ids, nil
}

// ScanReservation reads one row selected with the reservation column list.
func ScanReservation(row pgx.Row) (*availability.Reservation, error) {
	var (
		id, parcelID, reservedBy       uuid.UUID
		reservedAt, expiresAt, updated time.Time
		status                         string
		purpose                        pgtype.Text
	)
	if err := row.Scan(&id, &parcelID, &reservedBy, &reservedAt, &expiresAt, &status, &purpose, &updated); err != nil {
		return nil, err
	}
	return availability.ReconstructReservation(
		id, parcelID, reservedBy, reservedAt.UTC(), expiresAt.UTC(),
		availability.ReservationStatus(status), pgconv.StringPtrFromPgtype(purpose), updated.UTC(),
	), nil
}
