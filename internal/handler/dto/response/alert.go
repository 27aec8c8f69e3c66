package response

import (
	"parcel-registry/internal/usecase/queries"
)

type AlertResponse struct {
	ID             string  `json:"id"`
	AlertType      string  `json:"alert_type"`
	Severity       string  `json:"severity"`
	ParcelID       *string `json:"parcel_id,omitempty"`
	TriggeredBy    *string `json:"triggered_by,omitempty"`
	Message        string  `json:"message"`
	CreatedAt      int64   `json:"created_at"`
	Acknowledged   bool    `json:"acknowledged"`
	AcknowledgedBy *string `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *int64  `json:"acknowledged_at,omitempty"`
}

type AlertListResponse struct {
	Items      []*AlertResponse `json:"items"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

func FromAlertViews(items []*queries.AlertView, next *queries.Cursor) *AlertListResponse {
	res := &AlertListResponse{Items: make([]*AlertResponse, 0, len(items))}
	if len(items) > 0 {
		copyInto(&res.Items, items)
	}
	if next != nil {
		after := next.After
		res.NextCursor = &after
	}
	return res
}
