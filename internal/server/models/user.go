package models

import "time"

// User is an owner account. Viewers never have accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NotificationSettings are the owner's mail preferences.
type NotificationSettings struct {
	UserID         string
	AccessRequests bool
	Downloads      bool
}

// DefaultNotificationSettings is what an owner gets before saving any.
func DefaultNotificationSettings(userID string) *NotificationSettings {
	return &NotificationSettings{UserID: userID, AccessRequests: true, Downloads: true}
}
