package history

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionOwnerAssigned = "owner_assigned"
	FieldOwnerID        = "owner_id"
)

// Entry is one append-only line of a parcel's ownership history.
type Entry struct {
	id         uuid.UUID
	parcelID   uuid.UUID
	action     string
	field      string
	oldValue   *string
	newValue   *string
	details    string
	changedBy  uuid.UUID
	changedAt  time.Time
	mutationID *uuid.UUID
}

// NewOwnerChange records old -> new owner; nil owners are stored as nil values.
func NewOwnerChange(parcelID uuid.UUID, oldOwner, newOwner *uuid.UUID, changedBy uuid.UUID, mutationID *uuid.UUID, details string, now time.Time) *Entry {
	return &Entry{
		id:         uuid.New(),
		parcelID:   parcelID,
		action:     ActionOwnerAssigned,
		field:      FieldOwnerID,
		oldValue:   idString(oldOwner),
		newValue:   idString(newOwner),
		details:    details,
		changedBy:  changedBy,
		changedAt:  now,
		mutationID: mutationID,
	}
}

func Reconstruct(id, parcelID uuid.UUID, action, field string, oldValue, newValue *string, details string, changedBy uuid.UUID, changedAt time.Time, mutationID *uuid.UUID) *Entry {
	return &Entry{
		id:         id,
		parcelID:   parcelID,
		action:     action,
		field:      field,
		oldValue:   oldValue,
		newValue:   newValue,
		details:    details,
		changedBy:  changedBy,
		changedAt:  changedAt,
		mutationID: mutationID,
	}
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) ParcelID() uuid.UUID    { return e.parcelID }
func (e *Entry) Action() string         { return e.action }
func (e *Entry) Field() string          { return e.field }
func (e *Entry) OldValue() *string      { return e.oldValue }
func (e *Entry) NewValue() *string      { return e.newValue }
func (e *Entry) Details() string        { return e.details }
func (e *Entry) ChangedBy() uuid.UUID   { return e.changedBy }
func (e *Entry) ChangedAt() time.Time   { return e.changedAt }
func (e *Entry) MutationID() *uuid.UUID { return e.mutationID }

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
