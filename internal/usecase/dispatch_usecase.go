// Package usecase defines the application-layer contracts of the project.
package usecase

import (
	"context"

	"farmstay/internal/domain/service"
)

// DispatchUsecase converts a change event on a watched record into zero or more
// push deliveries. Each operation is an independent, stateless invocation; no
// state is shared between them.
type DispatchUsecase interface {
	// DispatchBroadcast fans a newly created broadcast out to its resolved
	// recipient set and writes the delivery outcome back onto the broadcast
	// record exactly once. A repeated delivery of the same event is a no-op.
	DispatchBroadcast(ctx context.Context, event *service.BroadcastCreatedEvent) error

	// DispatchBookingChange notifies a booking's guest of a booking-status or
	// payment-status transition. Updates that change neither field are ignored.
	// At most one push is sent per event; the booking-status message wins when
	// both fields changed.
	DispatchBookingChange(ctx context.Context, event *service.BookingUpdatedEvent) error

	// DispatchListingChange notifies a listing's owner of an approval
	// transition. Updates that leave the approval flag unchanged are ignored.
	DispatchListingChange(ctx context.Context, event *service.ListingUpdatedEvent) error
}
