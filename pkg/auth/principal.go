// Package auth provides the authenticated caller identity (Principal) and
// the credential mechanisms that produce it: JWTs, API keys, and passwords.
package auth

// Role is the authorization level of a user within an organization.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleViewer    Role = "viewer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleViewer:
		return true
	}
	return false
}

// Principal is the authenticated caller identity threaded through every
// handler. Resource lookups are always scoped by OrgID.
type Principal struct {
	UserID string `json:"userId"`
	OrgID  string `json:"orgId"`
	Role   Role   `json:"role"`
}

// HasRole reports whether the principal's role is in the allowed set.
func (p Principal) HasRole(allowed ...Role) bool {
	for _, r := range allowed {
		if p.Role == r {
			return true
		}
	}
	return false
}
