package request

import (
	"parcel-registry/internal/usecase/queries"
)

type ListAlertsQuery struct {
	Acknowledged *bool   `form:"acknowledged"`
	AlertType    *string `form:"alert_type"`
	Severity     *string `form:"severity"`
	ParcelID     *string `form:"parcel_id"`
	After        string  `form:"after"`
	Limit        int     `form:"limit" binding:"omitempty,min=1"`
}

func (q ListAlertsQuery) ToFilter() (queries.AlertFilter, error) {
	parcelID, err := optionalUUID(q.ParcelID)
	if err != nil {
		return queries.AlertFilter{}, err
	}
	return queries.AlertFilter{
		Acknowledged: q.Acknowledged,
		AlertType:    q.AlertType,
		Severity:     q.Severity,
		ParcelID:     parcelID,
	}, nil
}

// Cursor is nil on the first page.
func (q ListAlertsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
