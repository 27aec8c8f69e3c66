package availability

import (
	"time"

	"github.com/google/uuid"
)

// VerificationLogEntry records one availability check. It has no setters.
type VerificationLogEntry struct {
	id              uuid.UUID
	parcelID        uuid.UUID
	checkedBy       uuid.UUID
	checkedAt       time.Time
	result          Result
	reason          Reason
	conflictDetails *string
}

func NewVerificationLogEntry(parcelID, checkedBy uuid.UUID, v Verdict, now time.Time) *VerificationLogEntry {
	return &VerificationLogEntry{
		id:              uuid.New(),
		parcelID:        parcelID,
		checkedBy:       checkedBy,
		checkedAt:       now,
		result:          v.Result(),
		reason:          v.Reason(),
		conflictDetails: v.ConflictDetails(),
	}
}

func ReconstructVerificationLogEntry(id, parcelID, checkedBy uuid.UUID, checkedAt time.Time, result Result, reason Reason, conflictDetails *string) *VerificationLogEntry {
	return &VerificationLogEntry{
		id:              id,
		parcelID:        parcelID,
		checkedBy:       checkedBy,
		checkedAt:       checkedAt,
		result:          result,
		reason:          reason,
		conflictDetails: conflictDetails,
	}
}

func (e *VerificationLogEntry) ID() uuid.UUID            { return e.id }
func (e *VerificationLogEntry) ParcelID() uuid.UUID      { return e.parcelID }
func (e *VerificationLogEntry) CheckedBy() uuid.UUID     { return e.checkedBy }
func (e *VerificationLogEntry) CheckedAt() time.Time     { return e.checkedAt }
func (e *VerificationLogEntry) Result() Result           { return e.result }
func (e *VerificationLogEntry) Reason() Reason           { return e.reason }
func (e *VerificationLogEntry) ConflictDetails() *string { return e.conflictDetails }
