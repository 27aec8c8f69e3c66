package user

import "github.com/google/uuid"

// Actor is the caller of an allocation operation as resolved by the
// user directory.
type Actor struct {
	id   uuid.UUID
	role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{id: id, role: role}
}

func (a Actor) ID() uuid.UUID    { return a.id }
func (a Actor) Role() Role       { return a.role }
func (a Actor) IsElevated() bool { return a.role.IsElevated() }
