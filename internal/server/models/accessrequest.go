package models

import "time"

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDenied   = "denied"
)

// AccessRequest asks the owner to add Email to a grant's allow-list.
type AccessRequest struct {
	ID        string
	GrantID   string
	Email     string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Filled by owner listings.
	GrantName string
}
