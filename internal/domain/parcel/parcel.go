package parcel

import (
	"github.com/google/uuid"
)

// Parcel is the slot the allocation core guards: who owns it and the version
// used for compare-and-swap owner writes.
type Parcel struct {
	id        uuid.UUID
	reference string
	ownerID   *uuid.UUID
	version   int64
}

func Reconstruct(id uuid.UUID, reference string, ownerID *uuid.UUID, version int64) *Parcel {
	return &Parcel{
		id:        id,
		reference: reference,
		ownerID:   ownerID,
		version:   version,
	}
}

func (p *Parcel) ID() uuid.UUID       { return p.id }
func (p *Parcel) Reference() string   { return p.reference }
func (p *Parcel) OwnerID() *uuid.UUID { return p.ownerID }
func (p *Parcel) Version() int64      { return p.version }
func (p *Parcel) IsAssigned() bool    { return p.ownerID != nil }
func (p *Parcel) OwnedBy(id uuid.UUID) bool {
	return p.ownerID != nil && *p.ownerID == id
}

// SameOwner compares the current owner with an expected one; nil means
// unowned.
func (p *Parcel) SameOwner(expected *uuid.UUID) bool {
	if p.ownerID == nil || expected == nil {
		return p.ownerID == nil && expected == nil
	}
	return *p.ownerID == *expected
}
