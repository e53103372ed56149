// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account known to the identity provider.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Image     string // Avatar URL reported by the identity provider.
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles returns the roles granted to the user. Admins are also members.
func (u *User) Roles() Roles {
	if u.Role == RoleAdmin {
		return Roles{RoleMember, RoleAdmin}
	}

	return Roles{RoleMember}
}

// IsAdmin reports whether the user may review applications.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
