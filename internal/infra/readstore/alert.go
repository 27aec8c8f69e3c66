package readstore

import (
	"context"
	"fmt"
	"strings"

	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/repository"
	"parcel-registry/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type AlertReadStore struct {
	db repository.DBTX
}

func NewAlertReadStore(db repository.DBTX) *AlertReadStore {
	return &AlertReadStore{db: db}
}

// ListAlerts pages newest first on (created_at, id).
func (r *AlertReadStore) ListAlerts(ctx context.Context, filter queries.AlertFilter, after *queries.Position, limit int) ([]*queries.AlertView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Acknowledged != nil {
		conds = append(conds, "acknowledged = "+arg(*filter.Acknowledged))
	}
	if filter.AlertType != nil {
		conds = append(conds, "alert_type = "+arg(*filter.AlertType))
	}
	if filter.Severity != nil {
		conds = append(conds, "severity = "+arg(*filter.Severity))
	}
	if filter.ParcelID != nil {
		conds = append(conds, "parcel_id = "+arg(*filter.ParcelID))
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(created_at, id) < (%s, %s)", arg(after.CreatedAt), arg(after.ID)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + repository.AlertColumns + " FROM alerts")
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT " + arg(limit))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list alerts", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AlertView, error) {
		a, err := repository.ScanAlert(row)
		if err != nil {
			return nil, err
		}
		return queries.NewAlertView(a), nil
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to read alerts", err)
	}
	return views, nil
}
