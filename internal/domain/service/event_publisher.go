package service

import (
	"context"
)

// EventType names the kind of record change carried by a ChangeEvent.
type EventType string

const (
	// EventBroadcastCreated fires when an admin authors a new broadcast.
	EventBroadcastCreated EventType = "broadcast.created"
	// EventBookingUpdated fires when a booking's status fields change.
	EventBookingUpdated EventType = "booking.updated"
	// EventListingUpdated fires when a listing's approval flag changes.
	EventListingUpdated EventType = "listing.updated"
)

// BookingSnapshot captures the status fields of a booking at one point in time.
// The dispatcher compares before/after snapshots to decide whether to notify.
type BookingSnapshot struct {
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
}

// BroadcastCreatedEvent carries a newly created broadcast's ID. The dispatcher
// re-reads the record so the payload stays minimal.
type BroadcastCreatedEvent struct {
	BroadcastID string `json:"broadcast_id"`
}

// BookingUpdatedEvent carries the before/after status snapshots of a booking update.
type BookingUpdatedEvent struct {
	BookingID string          `json:"booking_id"`
	UserID    string          `json:"user_id"`
	Before    BookingSnapshot `json:"before"`
	After     BookingSnapshot `json:"after"`
}

// ListingUpdatedEvent carries the before/after approval state of a listing update.
type ListingUpdatedEvent struct {
	ListingID      string `json:"listing_id"`
	OwnerID        string `json:"owner_id"`
	ListingName    string `json:"listing_name"`
	ApprovedBefore bool   `json:"approved_before"`
	ApprovedAfter  bool   `json:"approved_after"`
}

// ChangeEvent is the envelope published for every watched record change.
// Exactly one of the payload pointers is set, matching Type.
type ChangeEvent struct {
	RequestID string                 `json:"request_id,omitempty"` // For distributed tracing
	Type      EventType              `json:"type"`
	Broadcast *BroadcastCreatedEvent `json:"broadcast,omitempty"`
	Booking   *BookingUpdatedEvent   `json:"booking,omitempty"`
	Listing   *ListingUpdatedEvent   `json:"listing,omitempty"`
}

// Key returns the identifier of the record the event refers to, for logging
// and message attributes.
func (e *ChangeEvent) Key() string {
	switch {
	case e.Broadcast != nil:
		return e.Broadcast.BroadcastID
	case e.Booking != nil:
		return e.Booking.BookingID
	case e.Listing != nil:
		return e.Listing.ListingID
	default:
		return ""
	}
}

// EventPublisher defines the interface for publishing change events to a message queue.
type EventPublisher interface {
	// PublishChangeEvent publishes a change event for async dispatch.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
