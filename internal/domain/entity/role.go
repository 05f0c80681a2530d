// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleStandard indicates a regular user role.
	RoleStandard Role = "standard"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, falling back to RoleStandard
// for unknown values so a tampered claim never grants elevated access.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleStandard
	}

	return role
}
