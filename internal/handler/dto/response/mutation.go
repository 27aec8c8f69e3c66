package response

import (
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/usecase/queries"
)

type MutationResponse struct {
	ID                 string   `json:"id"`
	ParcelID           string   `json:"parcel_id"`
	MutationType       string   `json:"mutation_type"`
	FromOwnerID        *string  `json:"from_owner_id,omitempty"`
	ToOwnerID          *string  `json:"to_owner_id,omitempty"`
	InitiatedBy        string   `json:"initiated_by"`
	Price              *float64 `json:"price,omitempty"`
	Notes              string   `json:"notes"`
	Status             string   `json:"status"`
	CreatedAt          int64    `json:"created_at"`
	UpdatedAt          int64    `json:"updated_at"`
	ApprovedAt         *int64   `json:"approved_at,omitempty"`
	ApprovedBy         *string  `json:"approved_by,omitempty"`
	CompletedAt        *int64   `json:"completed_at,omitempty"`
	RejectionReason    *string  `json:"rejection_reason,omitempty"`
	CancelledBy        *string  `json:"cancelled_by,omitempty"`
	CancellationReason *string  `json:"cancellation_reason,omitempty"`
}

func FromMutationView(v *queries.MutationView) *MutationResponse {
	res := &MutationResponse{}
	copyInto(res, v)
	return res
}

// FromMutationSnapshot answers commands, which return the post-transition
// snapshot rather than a read model.
func FromMutationSnapshot(s *mutation.Snapshot) *MutationResponse {
	view := queries.NewMutationView(*s)
	return FromMutationView(view)
}

func FromMutationViews(items []*queries.MutationView) []*MutationResponse {
	res := make([]*MutationResponse, 0, len(items))
	if len(items) > 0 {
		copyInto(&res, items)
	}
	return res
}

type MutationPageResponse struct {
	Items    []*MutationResponse `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int                 `json:"total"`
}

func FromMutationPage(p *queries.MutationPage) *MutationPageResponse {
	return &MutationPageResponse{
		Items:    FromMutationViews(p.Items),
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
	}
}
