package domain

import "github.com/google/uuid"

const (
	RoleUser    = "user"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

// Actor is the identity the auth collaborator attached to the request.
// The core trusts it and only checks role membership.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

func (a Actor) CanManageIncidents() bool {
	return a.Role == RoleOfficer || a.Role == RoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
