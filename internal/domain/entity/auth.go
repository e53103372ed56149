package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeGoogle identifies Google Sign-In credentials.
const ProviderTypeGoogle = "google"

// Authentication links an identity provider subject to a User.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // e.g. "google"
	ProviderUserID string // The provider's 'sub' claim.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the actor holds the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(RoleAdmin)
}
