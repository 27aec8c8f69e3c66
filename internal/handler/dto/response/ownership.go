package response

import (
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"
)

type AssignOwnerResponse struct {
	ParcelID              string  `json:"parcel_id"`
	PreviousOwnerID       *string `json:"previous_owner_id,omitempty"`
	NewOwnerID            *string `json:"new_owner_id,omitempty"`
	HistoryID             string  `json:"history_id"`
	ReleasedReservationID *string `json:"released_reservation_id,omitempty"`
}

func FromAssignResult(r *commands.AssignResult) *AssignOwnerResponse {
	res := &AssignOwnerResponse{}
	copyInto(res, r)
	return res
}

type OwnershipHistoryResponse struct {
	ID         string  `json:"id"`
	ParcelID   string  `json:"parcel_id"`
	Action     string  `json:"action"`
	Field      string  `json:"field"`
	OldValue   *string `json:"old_value,omitempty"`
	NewValue   *string `json:"new_value,omitempty"`
	Details    string  `json:"details"`
	ChangedBy  string  `json:"changed_by"`
	ChangedAt  int64   `json:"changed_at"`
	MutationID *string `json:"mutation_id,omitempty"`
}

func FromOwnershipHistoryViews(items []*queries.OwnershipHistoryView) []*OwnershipHistoryResponse {
	res := make([]*OwnershipHistoryResponse, 0, len(items))
	if len(items) > 0 {
		copyInto(&res, items)
	}
	return res
}
