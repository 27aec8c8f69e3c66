package queries

import (
	"context"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/pkg/errs"
)

var ErrInvalidAlertFilter = errs.WithKind(errs.ErrInvalidInput, "Filtre d'alerte invalide")

type AlertQueries interface {
	List(ctx context.Context, filter AlertFilter, after *Cursor, limit int) ([]*AlertView, *Cursor, error)
}

type AlertReadStore interface {
	// ListAlerts is newest first, strictly older than after when set.
	ListAlerts(ctx context.Context, filter AlertFilter, after *Position, limit int) ([]*AlertView, error)
}

type alertQueriesImpl struct {
	store AlertReadStore
}

func NewAlertQueries(store AlertReadStore) AlertQueries {
	return &alertQueriesImpl{store: store}
}

func (q *alertQueriesImpl) List(ctx context.Context, filter AlertFilter, after *Cursor, limit int) ([]*AlertView, *Cursor, error) {
	if filter.AlertType != nil && !alert.Type(*filter.AlertType).IsValid() {
		return nil, nil, ErrInvalidAlertFilter
	}
	if filter.Severity != nil && !alert.Severity(*filter.Severity).IsValid() {
		return nil, nil, ErrInvalidAlertFilter
	}

	var pos *Position
	if after != nil && after.After != "" {
		p, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		pos = p
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	rows, err := q.store.ListAlerts(ctx, filter, pos, limit+1)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}

	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
