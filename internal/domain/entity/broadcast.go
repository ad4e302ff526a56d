// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientSelector is the enumerated policy determining which users receive a broadcast.
type RecipientSelector string

const (
	// SelectorAllUsers targets every user record.
	SelectorAllUsers RecipientSelector = "all_users"
	// SelectorActiveUsersOnly targets users with is_active == true.
	SelectorActiveUsersOnly RecipientSelector = "active_users_only"
	// SelectorAllOwners targets users with the owner role.
	SelectorAllOwners RecipientSelector = "all_owners"
	// SelectorFarmhouseOwners is a synonym of SelectorAllOwners. Both literals are
	// kept because the admin UI sends both; they resolve to the same set.
	SelectorFarmhouseOwners RecipientSelector = "farmhouse_owners"
	// SelectorSpecificUser targets the single user named by RecipientID.
	SelectorSpecificUser RecipientSelector = "specific_user"
)

// IsValid checks if the RecipientSelector is a valid value.
func (s RecipientSelector) IsValid() bool {
	switch s {
	case SelectorAllUsers, SelectorActiveUsersOnly, SelectorAllOwners, SelectorFarmhouseOwners, SelectorSpecificUser:
		return true
	default:
		return false
	}
}

// Broadcast represents an admin-authored message targeting a recipient class.
// The record is immutable after creation except for the delivery-outcome fields,
// which the dispatcher writes exactly once.
type Broadcast struct {
	ID          uuid.UUID         `json:"id"`                     // The Global Unique Identifier (GUID) for the broadcast.
	Selector    RecipientSelector `json:"selector"`               // The recipient-resolution policy.
	RecipientID *uuid.UUID        `json:"recipient_id,omitempty"` // The target user when Selector is specific_user.
	Title       string            `json:"title"`                  // Push notification title.
	Body        string            `json:"body"`                   // Push notification body.
	CreatedBy   uuid.UUID         `json:"created_by"`             // The admin who authored the broadcast.

	// Delivery outcome, written once by the dispatcher.
	NotificationSent  *bool      `json:"notification_sent,omitempty"`  // nil until processed; true on attempted send, false on transport failure.
	SentAt            *time.Time `json:"sent_at,omitempty"`            // When the send attempt completed.
	SuccessCount      int        `json:"success_count"`                // Tokens the transport accepted.
	FailureCount      int        `json:"failure_count"`                // Tokens the transport rejected.
	NotificationError string     `json:"notification_error,omitempty"` // Transport or resolution error message, if any.
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`       // Idempotence claim marker; nil means not yet claimed.

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Processed reports whether the dispatcher has already claimed this broadcast.
func (b *Broadcast) Processed() bool {
	return b.ProcessedAt != nil
}

// DeliveryLog represents the outcome of a single push sent to a user device
// as part of a broadcast fan-out.
type DeliveryLog struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the log entry.
	BroadcastID  uuid.UUID `json:"broadcast_id"`  // The broadcast this log belongs to.
	UserID       uuid.UUID `json:"user_id"`       // The user who was targeted.
	DeviceID     uuid.UUID `json:"device_id"`     // The device that was targeted.
	Status       string    `json:"status"`        // The delivery status (sent, failed).
	ErrorMessage string    `json:"error_message"` // Error message if the delivery failed.
	SentAt       time.Time `json:"sent_at"`       // Timestamp of when the delivery was attempted.
}
