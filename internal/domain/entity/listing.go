// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents a farmhouse offered on the marketplace.
// New listings start unapproved and become visible to guests once an admin
// flips Approved; the owner is notified of the transition.
type Listing struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the listing.
	OwnerID   uuid.UUID `json:"owner_id"`   // The owner who listed this farmhouse.
	Name      string    `json:"name"`       // The farmhouse display name.
	Location  string    `json:"location"`   // Human-readable location of the farmhouse.
	Approved  bool      `json:"approved"`   // Whether an admin has approved the listing.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
