package repository

import (
	"context"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/pkg/pgconv"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	AlertColumns = `id, alert_type, severity, parcel_id, triggered_by, message, created_at, acknowledged, acknowledged_by, acknowledged_at`

	insertAlert = `
		INSERT INTO alerts (` + AlertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	selectAlertForUpdate = `SELECT ` + AlertColumns + ` FROM alerts WHERE id = $1 FOR UPDATE`
	acknowledgeAlert     = `
		UPDATE alerts
		SET acknowledged = TRUE, acknowledged_by = $2, acknowledged_at = $3
		WHERE id = $1 AND acknowledged = FALSE`
)

type AlertRepository struct {
	db DBTX
}

func NewAlertRepository(db DBTX) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	_, err := r.db.Exec(ctx, insertAlert,
		a.ID(), string(a.Type()), string(a.Severity()),
		pgconv.UUIDPtrToPgtype(a.ParcelID()), pgconv.UUIDPtrToPgtype(a.TriggeredBy()),
		a.Message(), a.CreatedAt(), a.Acknowledged(),
		pgconv.UUIDPtrToPgtype(a.AcknowledgedBy()), pgconv.TimePtrToPgtype(a.AcknowledgedAt()))
	if err != nil {
		return infra.ClassifyPgErr("failed to create alert", err)
	}
	return nil
}

func (r *AlertRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*alert.Alert, error) {
	a, err := ScanAlert(r.db.QueryRow(ctx, selectAlertForUpdate, id))
	if err != nil {
		if pgconv.Code(err) == pgconv.CodeLockNotAvailable {
			return nil, shared.ErrLockTimeout
		}
		return nil, infra.ClassifyPgErr("failed to lock alert", err)
	}
	return a, nil
}

func (r *AlertRepository) Acknowledge(ctx context.Context, a *alert.Alert) error {
	tag, err := r.db.Exec(ctx, acknowledgeAlert, a.ID(), pgconv.UUIDPtrToPgtype(a.AcknowledgedBy()), pgconv.TimePtrToPgtype(a.AcknowledgedAt()))
	if err != nil {
		return infra.ClassifyPgErr("failed to acknowledge alert", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "unacknowledged alert not found", nil)
	}
	return nil
}

// ScanAlert reads one row selected with the alerts column list.
func ScanAlert(row pgx.Row) (*alert.Alert, error) {
	var (
		id                    uuid.UUID
		alertType, severity   string
		parcelID, triggeredBy pgtype.UUID
		message               string
		createdAt             time.Time
		acknowledged          bool
		acknowledgedBy        pgtype.UUID
		acknowledgedAt        pgtype.Timestamptz
	)
	if err := row.Scan(&id, &alertType, &severity, &parcelID, &triggeredBy, &message, &createdAt, &acknowledged, &acknowledgedBy, &acknowledgedAt); err != nil {
		return nil, err
	}
	return alert.Reconstruct(
		id, alert.Type(alertType), alert.Severity(severity),
		pgconv.UUIDPtrFromPgtype(parcelID), pgconv.UUIDPtrFromPgtype(triggeredBy),
		message, createdAt.UTC(), acknowledged,
		pgconv.UUIDPtrFromPgtype(acknowledgedBy), pgconv.TimePtrFromPgtype(acknowledgedAt),
	), nil
}
