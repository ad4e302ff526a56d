package usecase

import "context"

// PendingCounts is a snapshot of records awaiting admin review.
type PendingCounts struct {
	PendingBookings int64 `json:"pending_bookings"`
	PendingListings int64 `json:"pending_listings"`
}

// PendingUsecase exposes a live stream of pending-review counts. Each
// subscription has an explicit lifecycle tied to the consuming view: cancel the
// returned function (or the context) to release it.
type PendingUsecase interface {
	// Subscribe returns a channel emitting the current counts immediately and
	// then on every change. The channel closes after unsubscribe.
	Subscribe(ctx context.Context) (<-chan PendingCounts, func())
}
