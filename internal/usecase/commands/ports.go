package commands

//go:generate mockgen -destination=../../testutil/mock/commands/commands_mock.go -package=commandsmock parcel-registry/internal/usecase/commands AlertCommands,AvailabilityCommands,MutationCommands,OwnershipCommands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side inputs and results; handlers map these to and from DTOs so the
// command side never depends on transport types.

type ReserveInput struct {
	ParcelID uuid.UUID
	TTL      *time.Duration
	Purpose  *string
}

type ReserveResult struct {
	ReservationID uuid.UUID
	ParcelID      uuid.UUID
	ExpiresAt     time.Time
}

type CreateMutationInput struct {
	ParcelID    uuid.UUID
	Type        string
	FromOwnerID *uuid.UUID
	ToOwnerID   *uuid.UUID
	Price       *float64
	Notes       string
}

type AssignOwnerInput struct {
	ParcelID   uuid.UUID
	NewOwnerID uuid.UUID
}

type AssignResult struct {
	ParcelID              uuid.UUID
	PreviousOwnerID       *uuid.UUID
	NewOwnerID            *uuid.UUID
	HistoryID             uuid.UUID
	ReleasedReservationID *uuid.UUID
}

type SweepResult struct {
	Parcels int
	Expired int
}
