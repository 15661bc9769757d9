package user

import "github.com/google/uuid"

// Actor is the caller of a lifecycle operation as recorded in storage.
// Tokens only carry a hint of the role; the actor is always reloaded.
type Actor struct {
	ID   uuid.UUID
	Role Role
	// OwnerProfileID is set for owners.
	OwnerProfileID *uuid.UUID
	// EmployerOwnerID is the owner profile a watchman works for.
	EmployerOwnerID *uuid.UUID
}

// CanProcess reports whether the actor may approve, reject or delete
// requests for a location owned by locationOwnerID.
func (a Actor) CanProcess(locationOwnerID uuid.UUID) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleOwner:
		return a.OwnerProfileID != nil && *a.OwnerProfileID == locationOwnerID
	default:
		return false
	}
}

// CanSubmit reports whether the actor may file a request for the location.
func (a Actor) CanSubmit(locationOwnerID uuid.UUID) bool {
	if a.CanProcess(locationOwnerID) {
		return true
	}
	return a.Role == RoleWatchman && a.EmployerOwnerID != nil && *a.EmployerOwnerID == locationOwnerID
}
