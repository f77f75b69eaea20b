package domain

import "strings"

// Role is the single role a user account carries.
type Role string

const (
	RoleAdmin    Role = "BEHEERDER"  // manages users, invites and pipeline settings
	RoleEmployee Role = "MEDEWERKER" // day to day CRM work
	RoleCustomer Role = "KLANT"      // customer portal account
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleEmployee, RoleCustomer}

// StaffRoles may read and mutate CRM data.
var StaffRoles = []Role{RoleAdmin, RoleEmployee}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return r, true
	}
	return "", false
}

func (r Role) IsStaff() bool { return r == RoleAdmin || r == RoleEmployee }

func (r Role) String() string { return string(r) }

// RoleNames returns roles as plain strings, for middleware allow-lists.
func RoleNames(rs ...Role) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
