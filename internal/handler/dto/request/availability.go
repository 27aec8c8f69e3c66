package request

import (
	"time"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/pkg/patch"
	"parcel-registry/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	TTLSeconds *int    `json:"ttl_seconds,omitempty" binding:"omitempty,min=1,max=28800"`
	Purpose    *string `json:"purpose,omitempty" binding:"omitempty,max=500"`
}

func (r ReserveRequest) ToInput(parcelID uuid.UUID) commands.ReserveInput {
	in := commands.ReserveInput{ParcelID: parcelID}
	if r.TTLSeconds != nil {
		ttl := ttlFromSeconds(*r.TTLSeconds)
		in.TTL = &ttl
	}
	in.Purpose = patch.Trimmed(r.Purpose)
	return in
}

// ttlFromSeconds never wraps: anything past the cap becomes cap+1s so the
// policy still rejects it as InvalidInput.
func ttlFromSeconds(s int) time.Duration {
	if s <= 0 {
		return 0
	}
	if int64(s) > int64(availability.MaxReservationTTL/time.Second) {
		return availability.MaxReservationTTL + time.Second
	}
	return time.Duration(s) * time.Second
}

type VerificationHistoryQuery struct {
	ParcelID *string `form:"parcel_id"`
	Limit    int     `form:"limit" binding:"omitempty,min=1"`
}

// ParcelUUID returns nil when no parcel filter was given.
func (q VerificationHistoryQuery) ParcelUUID() (*uuid.UUID, error) {
	return optionalUUID(q.ParcelID)
}

func optionalUUID(s *string) (*uuid.UUID, error) {
	trimmed := patch.Trimmed(s)
	if trimmed == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
