package models

import "time"

const (
	ActionAttempt  = "attempt"
	ActionView     = "view"
	ActionDownload = "download"
)

// GrantSnapshot is the denormalized identity of a grant kept by audit
// entries after the grant is gone.
type GrantSnapshot struct {
	GrantToken string
	GrantName  string
	AssetID    string
	AssetName  string
	OwnerID    string
}

// AuditEntry records one access attempt, view or download.
type AuditEntry struct {
	ID string
	// GrantID is empty once the grant has been deleted.
	GrantID string

	Email   string
	IP      string
	Country string
	Region  string
	City    string

	Action    string
	Success   bool
	CreatedAt time.Time

	GrantSnapshot
}
