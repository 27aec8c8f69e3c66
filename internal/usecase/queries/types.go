package queries

//go:generate mockgen -destination=../../testutil/mock/queries/queries_mock.go -package=queriesmock parcel-registry/internal/usecase/queries AlertQueries,AvailabilityQueries,MutationQueries,OwnershipQueries

import (
	"time"

	"github.com/google/uuid"
)

// ParcelView is the read side of the parcel slot.
type ParcelView struct {
	ID        uuid.UUID  `json:"id"`
	Reference string     `json:"reference"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	Version   int64      `json:"version"`
}

type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	ParcelID   uuid.UUID `json:"parcel_id"`
	ReservedBy uuid.UUID `json:"reserved_by"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Status     string    `json:"status"`
	Purpose    *string   `json:"purpose,omitempty"`
}

type ParcelStatusView struct {
	ParcelID          uuid.UUID        `json:"parcel_id"`
	Reference         string           `json:"reference"`
	OwnerID           *uuid.UUID       `json:"owner_id,omitempty"`
	Status            string           `json:"status"`
	ActiveReservation *ReservationView `json:"active_reservation,omitempty"`
}

type VerificationLogView struct {
	ID              uuid.UUID `json:"id"`
	ParcelID        uuid.UUID `json:"parcel_id"`
	CheckedBy       uuid.UUID `json:"checked_by"`
	CheckTimestamp  time.Time `json:"check_timestamp"`
	Result          string    `json:"result"`
	Reason          string    `json:"reason"`
	ConflictDetails *string   `json:"conflict_details,omitempty"`
}

type MutationView struct {
	ID                 uuid.UUID  `json:"id"`
	ParcelID           uuid.UUID  `json:"parcel_id"`
	MutationType       string     `json:"mutation_type"`
	FromOwnerID        *uuid.UUID `json:"from_owner_id,omitempty"`
	ToOwnerID          *uuid.UUID `json:"to_owner_id,omitempty"`
	InitiatedBy        uuid.UUID  `json:"initiated_by"`
	Price              *float64   `json:"price,omitempty"`
	Notes              string     `json:"notes"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	ApprovedBy         *uuid.UUID `json:"approved_by,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	RejectionReason    *string    `json:"rejection_reason,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

type MutationPage struct {
	Items    []*MutationView `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
}

type OwnershipHistoryView struct {
	ID         uuid.UUID  `json:"id"`
	ParcelID   uuid.UUID  `json:"parcel_id"`
	Action     string     `json:"action"`
	Field      string     `json:"field"`
	OldValue   *string    `json:"old_value,omitempty"`
	NewValue   *string    `json:"new_value,omitempty"`
	Details    string     `json:"details"`
	ChangedBy  uuid.UUID  `json:"changed_by"`
	ChangedAt  time.Time  `json:"changed_at"`
	MutationID *uuid.UUID `json:"mutation_id,omitempty"`
}

type AlertView struct {
	ID             uuid.UUID  `json:"id"`
	AlertType      string     `json:"alert_type"`
	Severity       string     `json:"severity"`
	ParcelID       *uuid.UUID `json:"parcel_id,omitempty"`
	TriggeredBy    *uuid.UUID `json:"triggered_by,omitempty"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy *uuid.UUID `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

type AlertFilter struct {
	Acknowledged *bool
	AlertType    *string
	Severity     *string
	ParcelID     *uuid.UUID
}
