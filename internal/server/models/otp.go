package models

import "time"

// OTPValidity is how long a one-time code stays acceptable.
const OTPValidity = 5 * time.Minute

// OTPChallenge binds a TOTP secret to a (grant, email) pair.
type OTPChallenge struct {
	ID        string
	GrantID   string
	Email     string
	Secret    string
	Used      bool
	CreatedAt time.Time
}

// Valid reports whether the challenge can still be redeemed at now.
func (c *OTPChallenge) Valid(now time.Time) bool {
	return !c.Used && !now.After(c.CreatedAt.Add(OTPValidity))
}
