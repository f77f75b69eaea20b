package domain

import "time"

// InviteTTL is how long an invitation link stays usable.
const InviteTTL = 7 * 24 * time.Hour

// Invite is a single-use invitation to register an account. Only the SHA-256
// of the token is stored.
type Invite struct {
	ID         string
	Email      string
	Role       Role
	CustomerID string
	TokenHash  string
	ExpiresAt  time.Time
	UsedAt     *time.Time
	CreatedBy  string
	CreatedAt  time.Time
}

// Usable reports whether the invite can still be redeemed at now.
func (i Invite) Usable(now time.Time) bool {
	return i.UsedAt == nil && now.Before(i.ExpiresAt)
}
