package response

import (
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type VerdictResponse struct {
	ParcelID        string  `json:"parcel_id"`
	Available       bool    `json:"available"`
	Result          string  `json:"result"`
	Reason          string  `json:"reason"`
	Message         string  `json:"message"`
	ConflictDetails *string `json:"conflict_details,omitempty"`
}

func FromVerdict(parcelID uuid.UUID, v availability.Verdict) *VerdictResponse {
	return &VerdictResponse{
		ParcelID:        parcelID.String(),
		Available:       v.IsAvailable(),
		Result:          string(v.Result()),
		Reason:          string(v.Reason()),
		Message:         v.Message(),
		ConflictDetails: v.ConflictDetails(),
	}
}

type ReserveResponse struct {
	ReservationID string `json:"reservation_id"`
	ParcelID      string `json:"parcel_id"`
	ExpiresAt     int64  `json:"expires_at"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	res := &ReserveResponse{}
	copyInto(res, r)
	return res
}

type ReservationResponse struct {
	ID         string  `json:"id"`
	ParcelID   string  `json:"parcel_id"`
	ReservedBy string  `json:"reserved_by"`
	ReservedAt int64   `json:"reserved_at"`
	ExpiresAt  int64   `json:"expires_at"`
	Status     string  `json:"status"`
	Purpose    *string `json:"purpose,omitempty"`
}

type ParcelStatusResponse struct {
	ParcelID          string               `json:"parcel_id"`
	Reference         string               `json:"reference"`
	OwnerID           *string              `json:"owner_id,omitempty"`
	Status            string               `json:"status"`
	ActiveReservation *ReservationResponse `json:"active_reservation,omitempty"`
}

func FromParcelStatusView(v *queries.ParcelStatusView) *ParcelStatusResponse {
	res := &ParcelStatusResponse{
		ParcelID:  v.ParcelID.String(),
		Reference: v.Reference,
		Status:    v.Status,
	}
	if v.OwnerID != nil {
		owner := v.OwnerID.String()
		res.OwnerID = &owner
	}
	if v.ActiveReservation != nil {
		res.ActiveReservation = &ReservationResponse{}
		copyInto(res.ActiveReservation, v.ActiveReservation)
	}
	return res
}

type VerificationLogResponse struct {
	ID              string  `json:"id"`
	ParcelID        string  `json:"parcel_id"`
	CheckedBy       string  `json:"checked_by"`
	CheckTimestamp  int64   `json:"check_timestamp"`
	Result          string  `json:"result"`
	Reason          string  `json:"reason"`
	ConflictDetails *string `json:"conflict_details,omitempty"`
}

func FromVerificationLogViews(items []*queries.VerificationLogView) []*VerificationLogResponse {
	res := make([]*VerificationLogResponse, 0, len(items))
	if len(items) > 0 {
		copyInto(&res, items)
	}
	return res
}
