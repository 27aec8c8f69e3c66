package request

import (
	"strings"

	"parcel-registry/internal/pkg/patch"
	"parcel-registry/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateMutationRequest leaves value checks on mutation_type and price to the
// use-case so the HTTP and programmatic paths reject the same inputs.
type CreateMutationRequest struct {
	ParcelID     uuid.UUID  `json:"parcel_id" binding:"required"`
	MutationType string     `json:"mutation_type" binding:"required"`
	FromOwnerID  *uuid.UUID `json:"from_owner_id,omitempty"`
	ToOwnerID    *uuid.UUID `json:"to_owner_id,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	Notes        *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateMutationRequest) ToInput() commands.CreateMutationInput {
	return commands.CreateMutationInput{
		ParcelID:    r.ParcelID,
		Type:        strings.TrimSpace(r.MutationType),
		FromOwnerID: r.FromOwnerID,
		ToOwnerID:   r.ToOwnerID,
		Price:       r.Price,
		Notes:       strings.TrimSpace(patch.Coalesce(r.Notes, "")),
	}
}

type RejectMutationRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type CancelMutationRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=1000"`
}

func (r CancelMutationRequest) TrimmedReason() *string {
	return patch.Trimmed(r.Reason)
}

type ListMutationsQuery struct {
	Status   *string `form:"status"`
	Page     int     `form:"page" binding:"omitempty,min=1"`
	PageSize int     `form:"page_size" binding:"omitempty,min=1"`
}
