package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleOfficer       Role = "officer"
	RoleCitizen       Role = "citizen"
	RoleConsultant    Role = "consultant"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleOfficer, RoleCitizen, RoleConsultant:
		return true
	default:
		return false
	}
}

// IsElevated reports whether the role may reserve parcels, decide on
// mutations and assign owners.
func (r Role) IsElevated() bool {
	return r == RoleAdministrator || r == RoleManager
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
