package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // stored lower-cased, unique
	Name         string
	Role         Role
	PasswordHash string // argon2id PHC, or a legacy bcrypt hash
	CustomerID   string // set for KLANT accounts invited for a specific customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DefaultName derives a display name from the local part of an address.
func DefaultName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// FirstName is the first word of the display name (used on dashboard charts).
func (u User) FirstName() string {
	if f := strings.Fields(u.Name); len(f) > 0 {
		return f[0]
	}
	return u.Email
}
