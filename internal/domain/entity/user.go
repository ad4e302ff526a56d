// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Guests book farmhouses; owners list them; admins operate the marketplace.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as a login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // Bcrypt hash of the user's password; empty for push-only accounts.
	Role         Role      // The user's role: admin, owner, or user.
	IsActive     bool      // Whether the account is active; inactive users are excluded from active-only broadcasts.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
