package request

import (
	"parcel-registry/internal/usecase/commands"

	"github.com/google/uuid"
)

type AssignOwnerRequest struct {
	OwnerID uuid.UUID `json:"owner_id" binding:"required"`
}

func (r AssignOwnerRequest) ToInput(parcelID uuid.UUID) commands.AssignOwnerInput {
	return commands.AssignOwnerInput{
		ParcelID:   parcelID,
		NewOwnerID: r.OwnerID,
	}
}
